// Package speech delivers announcements to text-to-speech style sinks.
// Sinks are fire-and-forget: they never report failure to the caller.
package speech

import (
	"sync"
	"time"
)

// Sink receives announcements. force asks the sink to speak even if the text
// equals the previous utterance.
type Sink interface {
	Announce(text string, force bool)
}

// Utterance is an announcement with its origin attached.
type Utterance struct {
	Text   string
	Force  bool
	Source string // producing engine: "menu", "build"
	Kind   string
	At     time.Time
}

// TaggedSink is implemented by sinks that record where an announcement came from.
type TaggedSink interface {
	Sink
	AnnounceTagged(u Utterance)
}

// Deliver sends u to s, keeping the tags when s understands them.
// Empty text is never delivered.
func Deliver(s Sink, u Utterance) {
	if s == nil || u.Text == "" {
		return
	}
	if ts, ok := s.(TaggedSink); ok {
		ts.AnnounceTagged(u)
		return
	}
	s.Announce(u.Text, u.Force)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(text string, force bool)

// Announce implements Sink.
func (f SinkFunc) Announce(text string, force bool) {
	f(text, force)
}

// Discard drops every announcement.
var Discard Sink = SinkFunc(func(string, bool) {})

// Deduper suppresses an utterance identical to the previous one unless it
// is forced.
type Deduper struct {
	mu   sync.Mutex
	next Sink
	last string
}

// NewDeduper wraps next.
func NewDeduper(next Sink) *Deduper {
	return &Deduper{next: next}
}

// Announce implements Sink.
func (d *Deduper) Announce(text string, force bool) {
	d.AnnounceTagged(Utterance{Text: text, Force: force})
}

// AnnounceTagged implements TaggedSink.
func (d *Deduper) AnnounceTagged(u Utterance) {
	d.mu.Lock()
	if !u.Force && u.Text == d.last {
		d.mu.Unlock()
		return
	}
	d.last = u.Text
	d.mu.Unlock()

	Deliver(d.next, u)
}

// Multi fans announcements out to several sinks in order.
type Multi []Sink

// Announce implements Sink.
func (m Multi) Announce(text string, force bool) {
	m.AnnounceTagged(Utterance{Text: text, Force: force})
}

// AnnounceTagged implements TaggedSink.
func (m Multi) AnnounceTagged(u Utterance) {
	for _, s := range m {
		Deliver(s, u)
	}
}

// Recorder keeps every announcement in memory.
type Recorder struct {
	mu         sync.Mutex
	utterances []Utterance
}

// Announce implements Sink.
func (r *Recorder) Announce(text string, force bool) {
	r.AnnounceTagged(Utterance{Text: text, Force: force})
}

// AnnounceTagged implements TaggedSink.
func (r *Recorder) AnnounceTagged(u Utterance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.utterances = append(r.utterances, u)
}

// Utterances returns a copy of everything recorded.
func (r *Recorder) Utterances() []Utterance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Utterance(nil), r.utterances...)
}

// Texts returns the recorded texts in order.
func (r *Recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	texts := make([]string, len(r.utterances))
	for i, u := range r.utterances {
		texts[i] = u.Text
	}
	return texts
}

// Last returns the most recent utterance.
func (r *Recorder) Last() (Utterance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.utterances) == 0 {
		return Utterance{}, false
	}
	return r.utterances[len(r.utterances)-1], true
}

// Reset clears the recording.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.utterances = nil
}
