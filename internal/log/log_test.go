package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Infof("drawn %d points", 500)
	Errorln("bad color")
	Debugln("hidden")

	out := buf.String()
	if !strings.Contains(out, PrefixInfo) || !strings.Contains(out, "drawn 500 points") {
		t.Fatalf("info missing: %q", out)
	}
	if !strings.Contains(out, "bad color") {
		t.Fatalf("error missing: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug printed while disabled: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("colors on a non-terminal writer: %q", out)
	}

	EnableDebug = true
	defer func() { EnableDebug = false }()
	Debugf("shown %s", "now")
	if !strings.Contains(buf.String(), "shown now") {
		t.Fatalf("debug missing: %q", buf.String())
	}
}
