// Package notify provides the host notifiers a Greeter can deliver through.
package notify

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/ZacharyZcR/greet/internal/cli"
	"github.com/ZacharyZcR/greet/internal/greeter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Notifier kinds understood by New.
const (
	KindConsole = "console"
	KindLog     = "log"
	KindRecord  = "record"
)

// ErrUnknownKind is returned by New for an unsupported notifier kind.
var ErrUnknownKind = errors.New("unknown notifier kind")

// Options carries the dependencies a notifier may need.
type Options struct {
	Out    io.Writer
	Color  bool
	Logger *zap.Logger
	// AlertLevel is the record level for KindLog. Zero means info.
	AlertLevel zapcore.Level
}

// Kinds lists the notifier kinds accepted by New.
func Kinds() []string {
	kinds := []string{KindConsole, KindLog, KindRecord}
	sort.Strings(kinds)
	return kinds
}

// IsKnown reports whether kind can be built by New.
func IsKnown(kind string) bool {
	for _, k := range Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// New builds the notifier named by kind.
func New(kind string, opts Options) (greeter.Notifier, error) {
	switch kind {
	case KindConsole:
		return cli.NewConsole(opts.Out, opts.Color), nil
	case KindLog:
		return NewLog(opts.Logger).WithLevel(opts.AlertLevel), nil
	case KindRecord:
		return NewRecorder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
