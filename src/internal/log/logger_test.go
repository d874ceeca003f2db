package log

import (
	"bytes"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, f func()) string {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	f()
	return buf.String()
}

func TestLevels(t *testing.T) {
	out := captureOutput(t, func() {
		Infof("hello %s", "world")
		Warnf("careful")
		Errorf("broken: %d", 42)
	})

	for _, want := range []string{"[INF] hello world", "[WRN] careful", "[ERR] broken: 42"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("Expected no color codes when output is redirected")
	}
}

func TestDebugRequiresVerbose(t *testing.T) {
	originalVerbose := IsVerbose()
	defer SetVerbose(originalVerbose)

	SetVerbose(false)
	out := captureOutput(t, func() { Debugf("hidden") })
	if out != "" {
		t.Errorf("Expected no debug output when not verbose, got %q", out)
	}

	SetVerbose(true)
	out = captureOutput(t, func() { Debugf("shown") })
	if !strings.Contains(out, "[DBG] shown") {
		t.Errorf("Expected debug output in verbose mode, got %q", out)
	}
}

func TestDisableLogs(t *testing.T) {
	defer EnableLogs()

	out := captureOutput(t, func() {
		DisableLogs()
		Infof("silent")
		Errorf("silent too")
	})
	if out != "" {
		t.Errorf("Expected no output when logs are disabled, got %q", out)
	}
}
