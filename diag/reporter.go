// FILE: lixenwraith/compileropts/diag/reporter.go
package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
)

// Reporter is the sink diagnostics are emitted to.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// ReportError is a shortcut for SevError diagnostics.
func ReportError(r Reporter, code Code, option, msg string) {
	report(r, Diagnostic{Severity: SevError, Code: code, Option: option, Message: msg})
}

// ReportWarning is a shortcut for SevWarning diagnostics.
func ReportWarning(r Reporter, code Code, option, msg string) {
	report(r, Diagnostic{Severity: SevWarning, Code: code, Option: option, Message: msg})
}

func report(r Reporter, d Diagnostic) {
	if r == nil {
		return
	}
	r.Report(d)
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// BagReporter writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// MultiReporter forwards every diagnostic to each of its reporters in order.
type MultiReporter []Reporter

func (m MultiReporter) Report(d Diagnostic) {
	for _, r := range m {
		report(r, d)
	}
}

type dedupKey struct {
	code   Code
	sev    Severity
	option string
	msg    string
}

// DedupReporter suppresses diagnostics with the same code, severity, option
// and message as one already forwarded.
type DedupReporter struct {
	mu   sync.Mutex
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that filters out duplicates while
// forwarding unique diagnostics to next.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(d Diagnostic) {
	if r == nil {
		return
	}
	key := dedupKey{code: d.Code, sev: d.Severity, option: d.Option, msg: d.Message}

	r.mu.Lock()
	if _, ok := r.seen[key]; ok {
		r.mu.Unlock()
		return
	}
	r.seen[key] = struct{}{}
	r.mu.Unlock()

	report(r.next, d)
}

// SlogReporter forwards diagnostics to a structured logger.
type SlogReporter struct {
	Logger *slog.Logger
}

func (r SlogReporter) Report(d Diagnostic) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []slog.Attr{slog.String("code", d.Code.String())}
	if d.Option != "" {
		attrs = append(attrs, slog.String("option", d.Option))
	}
	logger.LogAttrs(context.Background(), d.Severity.SlogLevel(), d.Message, attrs...)
}

// WriterReporter prints one line per diagnostic, in the form
// "error: <message> [OPT1002]".
type WriterReporter struct {
	mu      sync.Mutex
	out     io.Writer
	colored bool
	quiet   bool
}

// NewWriterReporter creates a reporter printing to out. When colored is set
// the severity label is highlighted; quiet hides everything below SevError.
func NewWriterReporter(out io.Writer, colored, quiet bool) *WriterReporter {
	return &WriterReporter{out: out, colored: colored, quiet: quiet}
}

func (r *WriterReporter) Report(d Diagnostic) {
	if r.quiet && d.Severity < SevError {
		return
	}
	label := r.label(d.Severity)

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%s: %s [%s]\n", label, d.Message, d.Code)
}

func (r *WriterReporter) label(s Severity) string {
	var name string
	var attr color.Attribute
	switch s {
	case SevError:
		name, attr = "error", color.FgRed
	case SevWarning:
		name, attr = "warning", color.FgYellow
	default:
		name, attr = "info", color.FgCyan
	}
	if !r.colored {
		return name
	}
	c := color.New(attr, color.Bold)
	c.EnableColor()
	return c.Sprint(name)
}
