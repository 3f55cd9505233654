// Package colors wraps text in ANSI escape sequences for terminal output.
package colors

import (
	"fmt"
	"io"
)

// COLOR is an ANSI SGR sequence
type COLOR string

const (
	RESET       COLOR = "\033[0m"
	RED         COLOR = "\033[31m"
	YELLOW      COLOR = "\033[33m"
	BLUE        COLOR = "\033[34m"
	GREY        COLOR = "\033[90m"
	BOLD_RED    COLOR = "\033[1;31m"
	BOLD_YELLOW COLOR = "\033[1;33m"
)

// Painter writes colored text when enabled, plain text otherwise
type Painter struct {
	w       io.Writer
	enabled bool
}

func NewPainter(w io.Writer, enabled bool) *Painter {
	return &Painter{w: w, enabled: enabled}
}

func (p *Painter) Print(c COLOR, s string) {
	if p.enabled {
		fmt.Fprint(p.w, string(c)+s+string(RESET))
		return
	}
	fmt.Fprint(p.w, s)
}

func (p *Painter) Println(c COLOR, s string) {
	p.Print(c, s)
	fmt.Fprintln(p.w)
}

func (p *Painter) Printf(c COLOR, format string, args ...any) {
	p.Print(c, fmt.Sprintf(format, args...))
}

// Plain writes uncolored text
func (p *Painter) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}
