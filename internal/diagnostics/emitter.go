package diagnostics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"jander/colors"
)

const (
	STR_MULTIPLIER = "%*d | "

	// Sentinel is written after the last diagnostic of a run
	Sentinel = "Fim da compilacao"
)

// Format selects how diagnostics are rendered
type Format string

const (
	FormatPlain    Format = "plain"    // Linha <n>: <message>
	FormatDetailed Format = "detailed" // header, source excerpt and underline
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPlain, "":
		return FormatPlain, nil
	case FormatDetailed:
		return FormatDetailed, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want plain or detailed)", s)
	}
}

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		loaded, err := loadLines(filepath)
		if err != nil {
			return "", err
		}
		sc.files[filepath] = loaded
		lines = loaded
	}

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

func loadLines(filepath string) ([]string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// errWriter remembers the first write error so rendering code can ignore it
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, nil
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	out    *errWriter
	format Format
	color  bool
	cache  *SourceCache
}

func NewEmitter(w io.Writer, format Format) *Emitter {
	return &Emitter{
		out:    &errWriter{w: w},
		format: format,
		cache:  NewSourceCache(),
	}
}

// WithColor enables ANSI colors in the detailed format
func (e *Emitter) WithColor(enabled bool) *Emitter {
	e.color = enabled
	return e
}

// SetSourceLines pre-populates the source cache for a file
func (e *Emitter) SetSourceLines(filepath string, lines []string) {
	e.cache.files[filepath] = lines
}

// EmitAll writes every diagnostic followed by the sentinel line.
// An empty list writes nothing.
func (e *Emitter) EmitAll(diags []*Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}
	for _, diag := range diags {
		e.Emit(diag)
	}
	fmt.Fprintln(e.out, Sentinel)
	return e.out.err
}

// Emit renders a single diagnostic
func (e *Emitter) Emit(diag *Diagnostic) {
	if e.format == FormatDetailed {
		e.emitDetailed(diag)
		return
	}
	fmt.Fprintf(e.out, "Linha %d: %s\n", diag.Line(), diag.Message)
}

func (e *Emitter) emitDetailed(diag *Diagnostic) {
	p := colors.NewPainter(e.out, e.color)

	headerColor := colors.BOLD_RED
	if diag.Severity == Warning {
		headerColor = colors.BOLD_YELLOW
	}
	p.Print(headerColor, diag.Severity.String())
	if diag.Code != "" {
		p.Plain("[%s]", diag.Code)
	}
	p.Plain(": ")
	p.Println(headerColor, diag.Message)

	for _, label := range diag.Labels {
		e.printLabel(p, diag.FilePath, label, diag.Severity)
	}

	if diag.Help != "" {
		p.Print(colors.BLUE, "  = ajuda: ")
		p.Plain("%s\n", diag.Help)
	}
}

func (e *Emitter) printLabel(p *colors.Painter, filepath string, label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	end := label.Location.End
	if end == nil || end.Line != start.Line {
		end = start
	}

	p.Printf(colors.BLUE, "  --> %s:%d:%d\n", filepath, start.Line, start.Column)

	lineNumWidth := len(fmt.Sprintf("%d", start.Line))
	gutter := strings.Repeat(" ", lineNumWidth)

	sourceLine, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		return
	}

	p.Println(colors.GREY, gutter+" |")
	p.Printf(colors.GREY, STR_MULTIPLIER, lineNumWidth, start.Line)
	p.Plain("%s\n", sourceLine)

	length := end.Column - start.Column
	if length <= 0 {
		length = 1
	}

	underlineColor := colors.BLUE
	underlineChar := "-"
	if label.Style == Primary {
		underlineColor = colors.RED
		if severity == Warning {
			underlineColor = colors.YELLOW
		}
		underlineChar = "~"
		if length == 1 {
			underlineChar = "^"
		}
	}

	p.Print(colors.GREY, gutter+" | ")
	p.Plain("%s", strings.Repeat(" ", max(start.Column-1, 0)))
	p.Print(underlineColor, strings.Repeat(underlineChar, length))
	if label.Message != "" {
		p.Printf(underlineColor, " %s", label.Message)
	}
	p.Plain("\n")
}
