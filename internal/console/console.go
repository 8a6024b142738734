// Package console prints the status lines shown to whoever runs the servers
package console

import (
	"fmt"
	"io"
	"strings"
)

type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Rule prints a horizontal rule of width characters.
func (p *Printer) Rule(width int) {
	fmt.Fprintln(p.w, strings.Repeat("=", width))
}

func (p *Printer) OK(format string, args ...any) {
	p.Line("✅ "+format, args...)
}

func (p *Printer) Fail(format string, args ...any) {
	p.Line("❌ "+format, args...)
}

func (p *Printer) Warn(format string, args ...any) {
	p.Line("⚠️ "+format, args...)
}

func (p *Printer) Hint(format string, args ...any) {
	p.Line("💡 "+format, args...)
}

func (p *Printer) Note(format string, args ...any) {
	p.Line("📝 "+format, args...)
}
