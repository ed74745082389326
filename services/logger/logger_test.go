package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, WarnLevel)

	l.Info("hidden %d", 1)
	l.Debug("hidden too")
	l.Warn("slow translation for %s", "th")
	l.Error("failed: %v", "boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info/debug leaked: %s", out)
	}
	if !strings.Contains(out, "slow translation for th") || !strings.Contains(out, "failed: boom") {
		t.Fatalf("missing records: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": DebugLevel, " WARN ": WarnLevel, "error": ErrorLevel, "": InfoLevel, "loud": InfoLevel}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOpenDailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	f, err := OpenDailyFile(dir, time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	NewLogger(f, InfoLevel).Info("booking %s created", "BK261017ABCDEF")

	data, err := os.ReadFile(filepath.Join(dir, "app-2026-10-17.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "BK261017ABCDEF") {
		t.Fatalf("file content = %q", data)
	}
}
