package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewPrefixAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "narrator", log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("shown", "mode", "Title")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "narrator") || !strings.Contains(out, "mode=Title") {
		t.Errorf("output = %q, expected prefix and key/value", out)
	}
}

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) == nil {
		t.Error("OrDiscard(nil) = nil")
	}
	l := Discard()
	if OrDiscard(l) != l {
		t.Error("OrDiscard() replaced a non-nil logger")
	}
}
