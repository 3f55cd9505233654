// Package analyzer runs semantic analysis over one parsed program.
//
// Every call to Analyze owns its symbol table, diagnostic bag and checker
// state, so runs never see each other's symbols or diagnostics and may
// execute concurrently.
package analyzer

import (
	"io"
	"log/slog"

	"jander/internal/diagnostics"
	"jander/internal/frontend/ast"
	"jander/internal/semantics"
	"jander/internal/semantics/checker"
	"jander/internal/semantics/collector"
	"jander/internal/semantics/resolver"
)

// Result is the outcome of one analysis run
type Result struct {
	FilePath    string
	Symbols     *semantics.SymbolTable
	Diagnostics *diagnostics.DiagnosticBag
}

// HasErrors reports whether any diagnostic was recorded
func (r *Result) HasErrors() bool {
	return r.Diagnostics.Len() > 0
}

// WriteTo writes one "Linha n: message" line per diagnostic and the closing
// sentinel. Nothing is written for a clean program.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := diagnostics.NewEmitter(cw, diagnostics.FormatPlain).EmitAll(r.Diagnostics.Diagnostics())
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type options struct {
	logger *slog.Logger
}

// Option configures an analysis run
type Option func(*options)

// WithLogger traces the analysis phases at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Analyze declares every global and body declaration, then checks the body.
func Analyze(prog *ast.Program, opts ...Option) *Result {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	file := prog.FullPath
	symbols := semantics.NewSymbolTable()
	bag := diagnostics.NewDiagnosticBag(file)

	decls := collector.New(file, symbols, bag, resolver.New(file, symbols, bag))

	o.logger.Debug("collecting declarations", "file", file, "global", len(prog.Decls))
	decls.CollectDecls(prog.Decls)

	if prog.Body != nil {
		decls.CollectDecls(prog.Body.Decls)
		o.logger.Debug("checking statements", "file", file, "symbols", symbols.Len(), "statements", len(prog.Body.Stmts))
		checker.New(file, symbols, bag).CheckStmts(prog.Body.Stmts)
	}

	o.logger.Debug("analysis complete", "file", file, "diagnostics", bag.Len())

	return &Result{
		FilePath:    file,
		Symbols:     symbols,
		Diagnostics: bag,
	}
}

// Run analyzes prog and writes its diagnostics to out. It reports whether
// any diagnostic was recorded.
func Run(prog *ast.Program, out io.Writer, opts ...Option) (bool, error) {
	result := Analyze(prog, opts...)
	if _, err := result.WriteTo(out); err != nil {
		return result.HasErrors(), err
	}
	return result.HasErrors(), nil
}
