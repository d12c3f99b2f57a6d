package notify

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// DefaultTitle is the dialog title used when none is configured.
const DefaultTitle = "Greeting"

// ErrNoWindow is returned when a Dialog has no parent window.
var ErrNoWindow = errors.New("dialog notifier: no parent window")

// Dialog shows each message in a modal information dialog, the desktop
// equivalent of a browser alert. Notify must be called on the fyne UI
// goroutine, e.g. from a widget callback.
type Dialog struct {
	window fyne.Window
	title  string
	show   func(title, message string, parent fyne.Window)
}

// NewDialog creates a notifier that pops dialogs over w.
func NewDialog(w fyne.Window, title string) *Dialog {
	if title == "" {
		title = DefaultTitle
	}
	return &Dialog{
		window: w,
		title:  title,
		show:   dialog.ShowInformation,
	}
}

// Notify shows message in a dialog.
func (d *Dialog) Notify(message string) error {
	if d.window == nil {
		return ErrNoWindow
	}
	d.show(d.title, message, d.window)
	return nil
}
