package logger

import (
	"bytes"
	"testing"
)

// capture enables verbose output into a buffer for the test's duration.
func capture(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(prev)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	if IsVerbose() {
		t.Fatal("expected verbose to be false")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Fatal("expected verbose to be true after SetVerbose(true)")
	}
}

func TestPackageLevels(t *testing.T) {
	buf := capture(t, true)

	Debug("session %s opened", "abc")
	Info("synced %d", 2)
	Warn("backend down")

	want := "[DEBUG] session abc opened\n[INFO] synced 2\n[WARN] backend down\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

func TestQuietWhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("a")
	Info("b")
	Warn("c")
	Section("d")
	For("session").Warn("e")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Sync Retry")
	if got := buf.String(); got != "\n=== Sync Retry ===\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestComponentLogger(t *testing.T) {
	buf := capture(t, true)

	log := For("sync")
	log.Debug("%d pending", 3)
	log.Info("done")
	log.Warn("retry failed: %v", "timeout")

	want := "[DEBUG] sync: 3 pending\n[INFO] sync: done\n[WARN] sync: retry failed: timeout\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

func TestSetOutputReturnsPrevious(t *testing.T) {
	var a, b bytes.Buffer
	orig := SetOutput(&a)
	defer SetOutput(orig)

	if prev := SetOutput(&b); prev != &a {
		t.Error("expected previous writer to be returned")
	}
}
