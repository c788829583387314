package exception

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/reporter.go -pkg mocks . Reporter

// Reporter receives the report of the exception that is ending the process.
// Report is called once, after the exception has been marked active and
// before the process exits.
type Reporter interface {
	Report(r *Report)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(r *Report)

// Report calls f(r).
func (f ReporterFunc) Report(r *Report) {
	f(r)
}

// MultiReporter hands the report to each reporter in order.
type MultiReporter []Reporter

// Report calls Report on every reporter.
func (m MultiReporter) Report(r *Report) {
	for _, reporter := range m {
		if reporter != nil {
			reporter.Report(r)
		}
	}
}

// ColorMode controls colouring of console reports.
type ColorMode int

const (
	// ColorAuto colours output written to a terminal, unless color.NoColor
	// is set (NO_COLOR, TERM=dumb).
	ColorAuto ColorMode = iota
	// ColorAlways always colours output.
	ColorAlways
	// ColorNever never colours output.
	ColorNever
)

// ConsoleReporter writes the report's console rendering to Out.
type ConsoleReporter struct {
	// Out defaults to os.Stderr.
	Out   io.Writer
	Color ColorMode
}

// Report writes r.
func (c ConsoleReporter) Report(r *Report) {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}

	text := r.String()
	if red, ok := c.painter(out); ok {
		text = red.Sprint(text)
	}

	fmt.Fprint(out, text)
}

// painter returns the colour for the report, or false if out stays plain.
// In auto mode the returned colour follows color.NoColor.
func (c ConsoleReporter) painter(out io.Writer) (*color.Color, bool) {
	red := color.New(color.FgRed, color.Bold)

	switch c.Color {
	case ColorAlways:
		red.EnableColor()
		return red, true
	case ColorNever:
		return nil, false
	}

	f, ok := out.(*os.File)
	if !ok || color.NoColor {
		return nil, false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return nil, false
	}
	return red, true
}

// LogReporter writes the report as a single log event at fatal level. The
// event does not exit the process; the Terminator does that.
type LogReporter struct {
	Logger zerolog.Logger
}

// Report logs r.
func (l LogReporter) Report(r *Report) {
	event := l.Logger.WithLevel(zerolog.FatalLevel).Str("kind", r.Kind.String())
	if r.Empty {
		event.Msg(r.Headline())
		return
	}

	event.
		Str("id", r.ID).
		Str("type", r.Type).
		Str("what", r.Message).
		Time("captured_at", r.CapturedAt).
		Msg("terminate called after an unhandled exception")
}
