package menu

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-narrator/internal/engine"
	"github.com/vovakirdan/tui-narrator/internal/logging"
	"github.com/vovakirdan/tui-narrator/internal/speech"
)

// Handler is one frame-stepped announcement source.
type Handler interface {
	ProcessFrame(ctx Context) []Event
	Reset()
}

// Pipeline runs handlers in registration order each frame and forwards
// their events to a speech sink. It is single-threaded like its handlers.
type Pipeline struct {
	handlers []Handler
	sink     speech.Sink
	source   string
}

// NewPipeline creates a pipeline delivering to sink.
func NewPipeline(sink speech.Sink, handlers ...Handler) *Pipeline {
	if sink == nil {
		sink = speech.Discard
	}
	return &Pipeline{handlers: handlers, sink: sink, source: "menu"}
}

// Add appends a handler.
func (p *Pipeline) Add(h Handler) {
	p.handlers = append(p.handlers, h)
}

// Step runs one frame and returns everything that was delivered.
func (p *Pipeline) Step(ctx Context) []Event {
	if ctx.Now.IsZero() {
		ctx.Now = time.Now()
	}
	var out []Event
	for _, h := range p.handlers {
		for _, ev := range h.ProcessFrame(ctx) {
			if ev.Text == "" {
				continue
			}
			speech.Deliver(p.sink, speech.Utterance{
				Text:   ev.Text,
				Force:  ev.Force,
				Source: p.source,
				Kind:   ev.Kind.String(),
				At:     ctx.Now,
			})
			out = append(out, ev)
		}
	}
	return out
}

// Reset resets every handler.
func (p *Pipeline) Reset() {
	for _, h := range p.handlers {
		h.Reset()
	}
}

// WorldCreationHandler narrates the world-name text input: typed
// characters, deletions, and whole-text replacement.
type WorldCreationHandler struct {
	reader engine.Reader
	logger *log.Logger

	inMode bool
	last   string
}

// NewWorldCreationHandler creates a handler reading the name input from r.
func NewWorldCreationHandler(r engine.Reader, logger *log.Logger) *WorldCreationHandler {
	logger = logging.OrDiscard(logger)
	return &WorldCreationHandler{reader: engine.Safe(r, nil), logger: logger}
}

// Reset forgets the tracked input.
func (h *WorldCreationHandler) Reset() {
	h.inMode = false
	h.last = ""
}

// ProcessFrame implements Handler. The first frame in the world creation
// screen only seeds the tracked text; the core narrator speaks the field.
func (h *WorldCreationHandler) ProcessFrame(ctx Context) []Event {
	if !ctx.Active || ctx.Mode != ModeWorldCreation {
		h.Reset()
		return nil
	}

	text, _ := engine.Text(h.reader, engine.KeyWorldNameInput)
	if !h.inMode {
		h.inMode, h.last = true, text
		return nil
	}
	if text == h.last {
		return nil
	}

	prev := h.last
	h.last = text
	msg := describeEdit(prev, text)
	if msg == "" {
		return nil
	}
	h.logger.Debug("world name edited", "from", prev, "to", text)
	return []Event{{Text: msg, Force: true, Kind: KindWorldCreation}}
}

func describeEdit(prev, cur string) string {
	switch {
	case strings.HasPrefix(cur, prev):
		return spellTyped(cur[len(prev):])
	case strings.HasPrefix(prev, cur):
		return "deleted " + spellTyped(prev[len(cur):])
	default:
		return cur
	}
}

func spellTyped(s string) string {
	if strings.TrimSpace(s) == "" && s != "" {
		if len(s) == 1 {
			return "space"
		}
		return "spaces"
	}
	return s
}
