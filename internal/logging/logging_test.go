package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, false)
	l.Debug("hidden", "k", 1)
	l.Info("shown", "file", "in.txt")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "file=in.txt") {
		t.Fatalf("info line missing: %q", out)
	}
}

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, true)
	l.Debug("details", "bits", 42)
	if !strings.Contains(buf.String(), "bits=42") {
		t.Fatalf("debug line missing: %q", buf.String())
	}
}
