// Package cli provides command-line interface utilities.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console prints each message on its own line, highlighted in green.
type Console struct {
	out   io.Writer
	color *color.Color
}

// NewConsole creates a console notifier writing to out (stdout if nil).
func NewConsole(out io.Writer, colored bool) *Console {
	if out == nil {
		out = os.Stdout
	}
	c := color.New(color.FgGreen, color.Bold)
	if !colored {
		c.DisableColor()
	}
	return &Console{out: out, color: c}
}

// Notify writes message followed by a newline.
func (c *Console) Notify(message string) error {
	if _, err := c.color.Fprintln(c.out, message); err != nil {
		return fmt.Errorf("写入终端失败: %w", err)
	}
	return nil
}

// PrintError reports err on w in bold red.
func PrintError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprintf(w, "\n错误: %v\n\n", err)
}
