// Package context - compilation pipeline
//
// Phase progression for each file:
//
//	Read -> Lexer -> Parser -> Analyzer (declarations, then statements)
//
// The first syntax or lexical error stops the file after parsing; semantic
// analysis only runs on a complete syntax tree. Go errors are returned only
// for I/O failures, everything about the program itself is a diagnostic.
package context

import (
	"fmt"
	"os"

	"jander/internal/frontend/lexer"
	"jander/internal/frontend/parser"
	"jander/internal/semantics/analyzer"
)

// Pipeline runs files through every phase in order
type Pipeline struct {
	Context *CompilerContext
}

// NewPipeline creates a pipeline over an existing context
func NewPipeline(ctx *CompilerContext) *Pipeline {
	return &Pipeline{
		Context: ctx,
	}
}

// Compile loads and processes the given files one after another.
func (p *Pipeline) Compile(paths ...string) error {
	for _, path := range paths {
		file, err := p.Context.LoadFile(path)
		if err != nil {
			return err
		}
		p.Context.ProcessFile(file)
	}
	return nil
}

// LoadFile reads a file from disk and registers it
func (ctx *CompilerContext) LoadFile(path string) (*SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	ctx.Logger.Debug("registered file", "path", path, "bytes", len(content))
	return ctx.AddFile(path, string(content)), nil
}

// ProcessFile runs every phase on a registered file
func (ctx *CompilerContext) ProcessFile(file *SourceFile) {
	ctx.LexFile(file)
	if ctx.ParseFile(file) {
		ctx.AnalyzeFile(file)
	}
}

// LexFile tokenizes a single source file.
// Lexical errors stay in the token stream as ERROR tokens for the parser.
func (ctx *CompilerContext) LexFile(file *SourceFile) {
	file.Phase = PhaseLexing

	tokenizer := lexer.New(file.Path, file.Content)
	file.Tokens = tokenizer.Tokenize()

	ctx.Logger.Debug("tokenized", "path", file.Path, "tokens", len(file.Tokens), "lexical_errors", len(tokenizer.Errors))
}

// ParseFile builds the AST and reports whether parsing succeeded
func (ctx *CompilerContext) ParseFile(file *SourceFile) bool {
	file.Phase = PhaseParsing

	program, err := parser.Parse(file.Tokens, file.Path, file.Diagnostics)
	if err != nil {
		file.Phase = PhaseFailed
		ctx.Logger.Debug("parse stopped", "path", file.Path, "error", err)
		return false
	}

	file.AST = program
	ctx.Logger.Debug("parsed", "path", file.Path, "global_decls", len(program.Decls))
	return true
}

// AnalyzeFile runs semantic analysis on a parsed file
func (ctx *CompilerContext) AnalyzeFile(file *SourceFile) {
	if file.AST == nil {
		return
	}
	file.Phase = PhaseAnalyzing

	result := analyzer.Analyze(file.AST, analyzer.WithLogger(ctx.Logger))
	file.Symbols = result.Symbols
	file.Diagnostics.Merge(result.Diagnostics)

	file.Phase = PhaseComplete
}
