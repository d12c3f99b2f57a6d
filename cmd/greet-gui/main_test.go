package main

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ZacharyZcR/greet/internal/greeter"
	"github.com/ZacharyZcR/greet/internal/notify"
)

func TestGreetButton(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := a.NewWindow("greet")
	defer w.Close()

	rec := notify.NewRecorder()
	content := newContent(w, greeter.New(rec))
	w.SetContent(content)

	var entry *widget.Entry
	var button *widget.Button
	var status *widget.Label
	walk(content, func(o interface{}) {
		switch v := o.(type) {
		case *widget.Entry:
			entry = v
		case *widget.Button:
			button = v
		case *widget.Label:
			status = v
		}
	})
	if entry == nil || button == nil || status == nil {
		t.Fatal("form widgets not found")
	}

	entry.SetText("Gopher")
	test.Tap(button)
	test.Tap(button)

	got := rec.Messages()
	if len(got) != 2 || got[0] != "Hello, Gopher!" || got[1] != "Hello, Gopher!" {
		t.Errorf("messages = %q, want two \"Hello, Gopher!\"", got)
	}
	if status.Text != "已发送 2 条问候" {
		t.Errorf("status = %q", status.Text)
	}
}

func walk(o fyne.CanvasObject, fn func(interface{})) {
	fn(o)
	if c, ok := o.(*fyne.Container); ok {
		for _, child := range c.Objects {
			walk(child, fn)
		}
	}
}

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("title: Hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("log:\n  level: loud\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "defaults", path: ""},
		{name: "config file", path: good},
		{name: "missing file", path: filepath.Join(dir, "nope.yaml"), wantErr: true},
		{name: "invalid config", path: bad, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, logger, err := setup(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("setup() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("setup() error = %v", err)
			}
			if cfg == nil || logger == nil {
				t.Fatal("setup() returned nil config or logger")
			}
		})
	}
}
