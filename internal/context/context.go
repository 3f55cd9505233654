// Package context provides the shared compilation context for all phases.
//
// A CompilerContext holds one compilation session: its options, logger and
// the registry of source files. Each SourceFile carries its own tokens,
// syntax tree, symbol table and diagnostics, so files are independent and
// may be processed in parallel.
package context

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"jander/internal/config"
	"jander/internal/diagnostics"
	"jander/internal/frontend/ast"
	"jander/internal/frontend/lexer"
	"jander/internal/semantics"
)

// CompilationPhase tracks how far a file has progressed
type CompilationPhase int

const (
	PhaseInitial   CompilationPhase = iota // Not started
	PhaseLexing                            // Tokenizing
	PhaseParsing                           // Building the AST
	PhaseAnalyzing                         // Declarations and statements
	PhaseComplete                          // Analysis finished
	PhaseFailed                            // Stopped at a syntax error
)

func (p CompilationPhase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseLexing:
		return "lexing"
	case PhaseParsing:
		return "parsing"
	case PhaseAnalyzing:
		return "analyzing"
	case PhaseComplete:
		return "complete"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CompilerOptions holds compiler configuration.
// Passed to the context at creation time and remains immutable.
type CompilerOptions struct {
	Debug   bool               // Enable debug output during compilation
	Format  diagnostics.Format // How diagnostics are written
	Workers int                // Files processed in parallel
}

// OptionsFromConfig derives compiler options from a loaded configuration
func OptionsFromConfig(cfg *config.Config) *CompilerOptions {
	return &CompilerOptions{
		Debug:   cfg.Debug,
		Format:  cfg.Format(),
		Workers: cfg.Workers,
	}
}

// SourceFile represents one source file through all compilation phases.
type SourceFile struct {
	Path    string
	Content string

	Tokens      []lexer.Token
	AST         *ast.Program // nil when parsing failed
	Symbols     *semantics.SymbolTable
	Diagnostics *diagnostics.DiagnosticBag
	Phase       CompilationPhase
}

// Lines splits the content for source excerpts in detailed output
func (f *SourceFile) Lines() []string {
	return strings.Split(f.Content, "\n")
}

// HasErrors reports whether any diagnostic was recorded for the file
func (f *SourceFile) HasErrors() bool {
	return f.Diagnostics.Len() > 0
}

// EmitDiagnostics writes the file's diagnostics in the given format
func (f *SourceFile) EmitDiagnostics(w io.Writer, format diagnostics.Format) error {
	return f.Diagnostics.EmitAllToWriter(w, format, f.Lines())
}

// CompilerContext is the central hub for all compilation state.
type CompilerContext struct {
	Options *CompilerOptions
	Logger  *slog.Logger

	// Files maps path -> SourceFile, FileOrder keeps registration order
	Files     map[string]*SourceFile
	FileOrder []string

	mu sync.RWMutex
}

// New is the entry point for starting a new compilation session.
func New(options *CompilerOptions, logger *slog.Logger) *CompilerContext {
	if options == nil {
		options = &CompilerOptions{Format: diagnostics.FormatPlain, Workers: 1}
	}
	if logger == nil {
		logger = NewLogger(io.Discard, false)
	}

	return &CompilerContext{
		Options:   options,
		Logger:    logger,
		Files:     make(map[string]*SourceFile),
		FileOrder: make([]string, 0),
	}
}

// NewLogger creates the text logger used for phase tracing
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// AddFile registers a source file. Registering the same path twice returns
// the existing file.
func (ctx *CompilerContext) AddFile(path string, content string) *SourceFile {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if file, ok := ctx.Files[path]; ok {
		return file
	}

	file := &SourceFile{
		Path:        path,
		Content:     content,
		Diagnostics: diagnostics.NewDiagnosticBag(path),
		Phase:       PhaseInitial,
	}

	ctx.Files[path] = file
	ctx.FileOrder = append(ctx.FileOrder, path)

	return file
}

// GetFile retrieves a source file by path.
// Returns nil if the file hasn't been registered.
func (ctx *CompilerContext) GetFile(path string) *SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.Files[path]
}

// GetAllFiles returns all registered files in the order they were added.
func (ctx *CompilerContext) GetAllFiles() []*SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()

	files := make([]*SourceFile, 0, len(ctx.FileOrder))
	for _, path := range ctx.FileOrder {
		files = append(files, ctx.Files[path])
	}
	return files
}

// HasErrors returns true if any file recorded a diagnostic.
func (ctx *CompilerContext) HasErrors() bool {
	for _, file := range ctx.GetAllFiles() {
		if file.HasErrors() {
			return true
		}
	}
	return false
}
