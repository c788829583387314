package exception

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// DefaultExitCode is the exit code Terminate uses unless configured
// otherwise. It matches the code of a Go program killed by an unrecovered
// panic.
const DefaultExitCode = 2

var (
	active     atomic.Pointer[object]
	terminator atomic.Pointer[Terminator]
)

// Terminator ends the process for Terminate. It reports the active exception
// and then exits.
type Terminator struct {
	reporter Reporter
	exit     func(code int)
	code     int
	out      io.Writer
	logger   zerolog.Logger
	color    ColorMode
}

// Option configures a Terminator.
type Option func(*Terminator)

// WithReporter replaces the default reporters with r.
func WithReporter(r Reporter) Option {
	return func(t *Terminator) {
		t.reporter = r
	}
}

// WithExit sets the function that ends the process. It defaults to os.Exit.
// If the function returns, Terminate calls os.Exit anyway.
func WithExit(exit func(code int)) Option {
	return func(t *Terminator) {
		t.exit = exit
	}
}

// WithExitCode sets the exit code. It defaults to DefaultExitCode.
func WithExitCode(code int) Option {
	return func(t *Terminator) {
		t.code = code
	}
}

// WithOutput sets where the default console report and reporter failures
// are written. It defaults to os.Stderr; a nil w keeps the default.
func WithOutput(w io.Writer) Option {
	return func(t *Terminator) {
		t.out = w
	}
}

// WithLogger adds a log event to the default reports.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Terminator) {
		t.logger = logger
	}
}

// WithColor forces the default console report to be coloured or plain.
// By default colour is used when the output is a terminal.
func WithColor(enabled bool) Option {
	return func(t *Terminator) {
		if enabled {
			t.color = ColorAlways
		} else {
			t.color = ColorNever
		}
	}
}

// NewTerminator creates a Terminator with the given options.
func NewTerminator(opts ...Option) *Terminator {
	t := &Terminator{
		exit:   os.Exit,
		code:   DefaultExitCode,
		out:    os.Stderr,
		logger: zerolog.Nop(),
		color:  ColorAuto,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.exit == nil {
		t.exit = os.Exit
	}
	if t.out == nil {
		t.out = os.Stderr
	}
	if t.reporter == nil {
		t.reporter = MultiReporter{
			ConsoleReporter{Out: t.out, Color: t.color},
			LogReporter{Logger: t.logger},
		}
	}

	return t
}

// SetTerminator installs t as the process-wide Terminator and returns the
// previous one. A nil t installs a default Terminator.
func SetTerminator(t *Terminator) *Terminator {
	if t == nil {
		t = NewTerminator()
	}
	for {
		previous := CurrentTerminator()
		if terminator.CompareAndSwap(previous, t) {
			return previous
		}
	}
}

// CurrentTerminator returns the process-wide Terminator.
func CurrentTerminator() *Terminator {
	if t := terminator.Load(); t != nil {
		return t
	}
	terminator.CompareAndSwap(nil, NewTerminator())
	return terminator.Load()
}

// Active returns the exception passed to the last Terminate call, or the
// empty handle if Terminate has not been called. Reporters use it to find
// the failure that is ending the process.
func Active() Exception {
	return Exception{obj: active.Load()}
}

// Terminate marks e as the active exception, reports it through the
// process-wide Terminator and ends the process. It never returns.
//
// An empty e is reported as termination without an active exception.
func Terminate(e Exception) {
	CurrentTerminator().Terminate(e)
}

// Terminate marks e as the active exception, reports it and ends the
// process. It never returns.
func (t *Terminator) Terminate(e Exception) {
	active.Store(e.obj)
	t.report(NewReport(e))

	t.exit(t.code)
	os.Exit(t.code)
}

func (t *Terminator) report(r *Report) {
	defer func() {
		if v := recover(); v != nil {
			fmt.Fprintf(t.out, "exception: reporter panicked while terminating: %v\n", v)
		}
	}()

	t.reporter.Report(r)
}
