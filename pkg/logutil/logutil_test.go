package logutil

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetLogger_FollowsSetOutput(t *testing.T) {
	logger := GetLogger("[foo] ")
	t.Cleanup(func() {
		SetOutput(io.Discard)
		SetLevel(slog.LevelInfo)
	})

	var buf bytes.Buffer
	SetOutput(&buf)
	logger.Info("hello", "n", 3)
	got := buf.String()
	for _, want := range []string{`scope="[foo] "`, "msg=hello", "n=3"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output %q does not contain %q", got, want)
		}
	}

	buf.Reset()
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record written at info level: %q", buf.String())
	}
	SetLevel(slog.LevelDebug)
	logger.Debug("shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("debug record not written at debug level: %q", buf.String())
	}
}

func TestSetOutputFile(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	fname := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(fname); err != nil {
		t.Fatal(err)
	}
	GetLogger("[bar] ").Warn("to file")
	SetOutput(io.Discard)

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "msg=\"to file\"") {
		t.Errorf("log file content %q does not contain the record", content)
	}

	if err := SetOutputFile(""); err != nil {
		t.Errorf("SetOutputFile(\"\") -> %v", err)
	}
}
