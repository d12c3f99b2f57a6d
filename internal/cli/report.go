package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Summary describes one CLI run.
type Summary struct {
	Notifier  string
	Delivered int
	Failed    int
	Bytes     int64
}

// Reporter formats and prints a run summary.
type Reporter struct {
	out     io.Writer
	summary Summary
}

// NewReporter creates a new reporter for the given summary.
func NewReporter(out io.Writer, s Summary) *Reporter {
	return &Reporter{out: out, summary: s}
}

// Print outputs the complete summary.
func (r *Reporter) Print() {
	r.printHeader()
	r.printBasicInfo()
}

func (r *Reporter) printHeader() {
	cyan := color.New(color.FgCyan, color.Bold)
	_, _ = cyan.Fprintln(r.out, "\n"+strings.Repeat("=", 40))
	_, _ = cyan.Fprintln(r.out, "  greet 运行摘要")
	_, _ = cyan.Fprintln(r.out, strings.Repeat("=", 40))
}

func (r *Reporter) printBasicInfo() {
	fmt.Fprintf(r.out, "  %-12s: %s\n", "通知方式", r.summary.Notifier)
	fmt.Fprintf(r.out, "  %-12s: %d\n", "已发送", r.summary.Delivered)

	fmt.Fprintf(r.out, "  %-12s: ", "失败")
	if r.summary.Failed > 0 {
		red := color.New(color.FgRed, color.Bold)
		_, _ = red.Fprintf(r.out, "%d", r.summary.Failed)
	} else {
		green := color.New(color.FgGreen)
		_, _ = green.Fprint(r.out, "0")
	}
	fmt.Fprintln(r.out)

	fmt.Fprintf(r.out, "  %-12s: %s\n", "消息大小", formatSize(r.summary.Bytes))
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
