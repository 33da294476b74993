// Package output formats terminal output for the extkit CLI.
package output

import (
	"fmt"
	"io"
	"os"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// Printer formats and writes CLI output.
type Printer struct {
	Writer io.Writer
	Color  bool
}

// NewPrinter creates a printer writing to stdout with color auto-detection.
func NewPrinter() *Printer {
	return &Printer{
		Writer: os.Stdout,
		Color:  UseColor(),
	}
}

// UnitRow is one line of the unit listing.
type UnitRow struct {
	Name     string
	Kind     string
	Ops      int
	Loaded   bool
	Manifest bool
}

// Units writes the unit listing table.
func (p *Printer) Units(rows []UnitRow) {
	fmt.Fprintf(p.Writer, "%-12s %-10s %4s  %-8s %s\n",
		p.colorize("UNIT", colorBold), "KIND", "OPS", "LOADED", "MANIFEST")

	for _, r := range rows {
		loaded := p.colorize("no", colorGray)
		if r.Loaded {
			loaded = p.colorize("yes", colorGreen)
		}
		manifest := "-"
		if r.Manifest {
			manifest = "yes"
		}
		fmt.Fprintf(p.Writer, "%-12s %-10s %4d  %-8s %s\n",
			p.colorize(r.Name, colorCyan), r.Kind, r.Ops, loaded, manifest)
	}
}

// Result writes the outcome of a unit call.
func (p *Printer) Result(unit, op, value string) {
	fmt.Fprintf(p.Writer, "%s%s%s = %s\n",
		p.colorize(unit, colorCyan), p.colorize(".", colorGray), op,
		p.colorize(value, colorBold))
}

// OpLine writes one operation of an inspect listing.
func (p *Printer) OpLine(name string, arity int, doc string) {
	fmt.Fprintf(p.Writer, "  %s/%d  %s\n",
		p.colorize(name, colorCyan), arity, p.colorize(doc, colorGray))
}

// Warnf writes a yellow warning line.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.Writer, "%s\n", p.colorize(fmt.Sprintf(format, args...), colorYellow))
}

// Errorf writes a red error line.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintf(p.Writer, "%s\n", p.colorize(fmt.Sprintf(format, args...), colorRed))
}

func (p *Printer) colorize(text, color string) string {
	if !p.Color {
		return text
	}
	return color + text + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal()
}
