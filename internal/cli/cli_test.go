package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestConsoleNotify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "plain", message: "Hello, World!", want: "Hello, World!\n"},
		{name: "empty name", message: "Hello, !", want: "Hello, !\n"},
		{name: "multi-line", message: "Hello, A\nB!", want: "Hello, A\nB!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := NewConsole(&buf, false)
			if err := c.Notify(tt.message); err != nil {
				t.Fatalf("Notify() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Notify() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConsoleColored(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)
	c.color.EnableColor()

	if err := c.Notify("Hello, World!"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "Hello, World!") {
		t.Errorf("output %q does not contain message", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("output %q has no colour escape", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestConsoleWriteError(t *testing.T) {
	c := NewConsole(failingWriter{}, false)
	if err := c.Notify("Hello, World!"); err == nil {
		t.Fatal("expected error from failing writer")
	}
}

func TestPrintError(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	PrintError(&buf, errors.New("boom"))
	if !strings.Contains(buf.String(), "错误: boom") {
		t.Errorf("PrintError() wrote %q", buf.String())
	}
}

func TestReporterPrint(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	NewReporter(&buf, Summary{Notifier: "console", Delivered: 2, Bytes: 2048}).Print()

	out := buf.String()
	for _, want := range []string{"console", "已发送", "2.0 KiB"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{13, "13 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.bytes); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
