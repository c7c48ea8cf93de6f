package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter prints diagnostics for the CLI. Color handling follows the
// --color auto|on|off convention.
type Reporter struct {
	Out   io.Writer
	Color bool
	Quiet bool
}

var severityColors = map[Severity]*color.Color{
	SevInfo:    color.New(color.FgCyan),
	SevWarning: color.New(color.FgYellow, color.Bold),
	SevError:   color.New(color.FgRed, color.Bold),
}

func (r *Reporter) label(sev Severity) string {
	label := sev.String()
	if r.Color {
		label = severityColors[sev].Sprint(label)
	}
	return label
}

// Report writes err to the reporter output. diag.Error values get their
// code printed alongside the severity label.
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}
	label := r.label(SevError)
	if code := CodeOf(err); code != UnknownCode {
		fmt.Fprintf(r.Out, "%s %s: %s\n", label, code, err.Error())
		return
	}
	fmt.Fprintf(r.Out, "%s: %s\n", label, err.Error())
}

// Warn writes a warning line. Warnings are not subject to Quiet: they flag
// conditions worth seeing even in scripted runs.
func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintf(r.Out, "%s: %s\n", r.label(SevWarning), fmt.Sprintf(format, args...))
}

// Info writes an informational line unless the reporter is quiet.
func (r *Reporter) Info(format string, args ...any) {
	if r.Quiet {
		return
	}
	marker := "*"
	if r.Color {
		marker = severityColors[SevInfo].Sprint(marker)
	}
	fmt.Fprintf(r.Out, "%s %s\n", marker, fmt.Sprintf(format, args...))
}
