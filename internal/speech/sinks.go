package speech

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-narrator/internal/storage"
)

// LogSink writes announcements to a logger at info level.
type LogSink struct {
	Logger *log.Logger
}

// Announce implements Sink.
func (s LogSink) Announce(text string, force bool) {
	s.AnnounceTagged(Utterance{Text: text, Force: force})
}

// AnnounceTagged implements TaggedSink.
func (s LogSink) AnnounceTagged(u Utterance) {
	if s.Logger == nil {
		return
	}
	kv := []any{"text", u.Text}
	if u.Force {
		kv = append(kv, "force", true)
	}
	if u.Source != "" {
		kv = append(kv, "source", u.Source)
	}
	if u.Kind != "" {
		kv = append(kv, "kind", u.Kind)
	}
	s.Logger.Info("announce", kv...)
}

// Saver persists announcements. *storage.Store implements it.
type Saver interface {
	SaveAnnouncement(a storage.Announcement) (int64, error)
}

// StoreSink records every announcement in the transcript store under one
// session id. Write failures are logged, never returned.
type StoreSink struct {
	saver     Saver
	sessionID string
	logger    *log.Logger
	now       func() time.Time
}

// NewSessionID returns a fresh transcript session id.
func NewSessionID() string {
	return uuid.NewString()
}

// NewStoreSink creates a sink writing to saver. An empty sessionID gets a new one.
func NewStoreSink(saver Saver, sessionID string, logger *log.Logger) *StoreSink {
	if sessionID == "" {
		sessionID = NewSessionID()
	}
	return &StoreSink{saver: saver, sessionID: sessionID, logger: logger, now: time.Now}
}

// SessionID returns the session the sink records under.
func (s *StoreSink) SessionID() string {
	return s.sessionID
}

// Announce implements Sink.
func (s *StoreSink) Announce(text string, force bool) {
	s.AnnounceTagged(Utterance{Text: text, Force: force})
}

// AnnounceTagged implements TaggedSink.
func (s *StoreSink) AnnounceTagged(u Utterance) {
	at := u.At
	if at.IsZero() {
		at = s.now()
	}
	source := u.Source
	if source == "" {
		source = "unknown"
	}
	_, err := s.saver.SaveAnnouncement(storage.Announcement{
		SessionID: s.sessionID,
		Source:    source,
		Kind:      u.Kind,
		Text:      u.Text,
		Forced:    u.Force,
		CreatedAt: at,
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("transcript write failed", "session", s.sessionID, "err", err)
	}
}
