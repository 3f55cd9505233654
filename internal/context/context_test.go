package context

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"jander/internal/diagnostics"
)

const (
	mainAlgFile     = "main.alg"
	cleanContent    = "declare x: inteiro\nalgoritmo\n  leia(x)\nfim_algoritmo"
	semanticContent = "declare x: inteiro\nalgoritmo\n  x <- 3.5\n  z <- 1\nfim_algoritmo"
	syntaxContent   = "algoritmo\n  x <- )\nfim_algoritmo"
	lexicalContent  = "algoritmo\n  x <- 1 $\nfim_algoritmo"
	noErrorExpected = "Expected no error, got: %v"
)

// Helper function to create a temporary test file
func createTestFile(dir, name, content string) (string, error) {
	filePath := filepath.Join(dir, name)
	err := os.WriteFile(filePath, []byte(content), 0644)
	return filePath, err
}

func compile(t *testing.T, content string) *SourceFile {
	t.Helper()

	mainFile, err := createTestFile(t.TempDir(), mainAlgFile, content)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	ctx := New(nil, nil)
	if err := NewPipeline(ctx).Compile(mainFile); err != nil {
		t.Fatalf(noErrorExpected, err)
	}

	file := ctx.GetFile(mainFile)
	if file == nil {
		t.Fatalf("Expected file %s in context", mainFile)
	}
	return file
}

// TestCompileCleanFile runs every phase on a program without diagnostics
func TestCompileCleanFile(t *testing.T) {
	file := compile(t, cleanContent)

	if file.Phase != PhaseComplete {
		t.Errorf("Expected phase %s, got %s", PhaseComplete, file.Phase)
	}
	if file.HasErrors() {
		t.Errorf("Expected no diagnostics, got %d", file.Diagnostics.Len())
	}
	if file.AST == nil || file.Symbols == nil {
		t.Fatalf("Expected AST and symbols to be set")
	}
	if !file.Symbols.Contains("x") {
		t.Errorf("Expected x in the symbol table")
	}
	if len(file.Tokens) == 0 {
		t.Errorf("Expected tokens to be recorded")
	}
}

// TestCompileSemanticErrors keeps analysis diagnostics on the file
func TestCompileSemanticErrors(t *testing.T) {
	file := compile(t, semanticContent)

	if file.Phase != PhaseComplete {
		t.Errorf("Expected phase %s, got %s", PhaseComplete, file.Phase)
	}

	var buf bytes.Buffer
	if err := file.EmitDiagnostics(&buf, diagnostics.FormatPlain); err != nil {
		t.Fatalf(noErrorExpected, err)
	}

	expected := "Linha 3: atribuicao nao compativel para x\n" +
		"Linha 4: identificador z nao declarado\n" +
		"Fim da compilacao\n"
	if buf.String() != expected {
		t.Errorf("Expected output:\n%s\ngot:\n%s", expected, buf.String())
	}
}

// TestCompileSyntaxErrorSkipsAnalysis stops after the parser fails
func TestCompileSyntaxErrorSkipsAnalysis(t *testing.T) {
	file := compile(t, syntaxContent)

	if file.Phase != PhaseFailed {
		t.Errorf("Expected phase %s, got %s", PhaseFailed, file.Phase)
	}
	if file.AST != nil || file.Symbols != nil {
		t.Errorf("Expected no AST or symbols after a syntax error")
	}

	diags := file.Diagnostics.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Message != "erro sintatico proximo a )" {
		t.Errorf("Unexpected message %q", diags[0].Message)
	}
}

// TestCompileLexicalError reports the lexer message through the parser
func TestCompileLexicalError(t *testing.T) {
	file := compile(t, lexicalContent)

	diags := file.Diagnostics.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Message != "$ - simbolo nao identificado" || diags[0].Line() != 2 {
		t.Errorf("Unexpected diagnostic: line %d %q", diags[0].Line(), diags[0].Message)
	}
}

// TestCompileFileNotFound tests error handling for a missing file
func TestCompileFileNotFound(t *testing.T) {
	ctx := New(nil, nil)

	err := NewPipeline(ctx).Compile(filepath.Join(t.TempDir(), "missing.alg"))
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Unexpected error: %v", err)
	}
	if len(ctx.Files) != 0 {
		t.Errorf("Expected no files registered, got %d", len(ctx.Files))
	}
}

// TestCompileMultipleFilesKeepsOrder checks registration order and isolation
func TestCompileMultipleFilesKeepsOrder(t *testing.T) {
	tmpDir := t.TempDir()

	var paths []string
	for i, content := range []string{semanticContent, cleanContent, syntaxContent} {
		path, err := createTestFile(tmpDir, fmt.Sprintf("f%d.alg", i), content)
		if err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		paths = append(paths, path)
	}

	ctx := New(&CompilerOptions{Format: diagnostics.FormatPlain, Workers: 2}, nil)
	if err := NewPipeline(ctx).Compile(paths...); err != nil {
		t.Fatalf(noErrorExpected, err)
	}

	files := ctx.GetAllFiles()
	if len(files) != 3 {
		t.Fatalf("Expected 3 files, got %d", len(files))
	}
	for i, file := range files {
		if file.Path != paths[i] {
			t.Errorf("Expected file %d to be %s, got %s", i, paths[i], file.Path)
		}
	}

	if files[1].HasErrors() {
		t.Errorf("Expected clean file to stay clean")
	}
	if !ctx.HasErrors() {
		t.Errorf("Expected context to report errors")
	}
}

// TestAddFileTwiceReturnsExisting tests duplicate registration
func TestAddFileTwiceReturnsExisting(t *testing.T) {
	ctx := New(nil, nil)

	first := ctx.AddFile(mainAlgFile, cleanContent)
	second := ctx.AddFile(mainAlgFile, "outro")

	if first != second {
		t.Errorf("Expected the same file to be returned")
	}
	if second.Content != cleanContent {
		t.Errorf("Expected original content to be kept")
	}
	if len(ctx.FileOrder) != 1 {
		t.Errorf("Expected 1 registered file, got %d", len(ctx.FileOrder))
	}
	if ctx.GetFile("other.alg") != nil {
		t.Errorf("Expected nil for an unregistered path")
	}
}

// TestDebugLogging checks that phases are traced when debug is on
func TestDebugLogging(t *testing.T) {
	var logs bytes.Buffer
	ctx := New(&CompilerOptions{Debug: true, Workers: 1}, NewLogger(&logs, true))

	file := ctx.AddFile(mainAlgFile, cleanContent)
	ctx.ProcessFile(file)

	for _, msg := range []string{"tokenized", "parsed", "analysis complete"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("Expected log to contain %q, got:\n%s", msg, logs.String())
		}
	}
}

// TestProcessFilesConcurrently tests that files can be processed in parallel
func TestProcessFilesConcurrently(t *testing.T) {
	ctx := New(nil, nil)

	files := make([]*SourceFile, 8)
	for i := range files {
		files[i] = ctx.AddFile(fmt.Sprintf("p%d.alg", i), semanticContent)
	}

	var wg sync.WaitGroup
	for _, file := range files {
		wg.Add(1)
		go func(f *SourceFile) {
			defer wg.Done()
			ctx.ProcessFile(f)
		}(file)
	}
	wg.Wait()

	for _, file := range files {
		if file.Diagnostics.Len() != 2 {
			t.Errorf("Expected 2 diagnostics in %s, got %d", file.Path, file.Diagnostics.Len())
		}
	}
}

// TestPhaseNames covers the phase strings used in logs
func TestPhaseNames(t *testing.T) {
	if PhaseAnalyzing.String() != "analyzing" || PhaseFailed.String() != "failed" {
		t.Errorf("Unexpected phase names")
	}
}

// BenchmarkProcessFile benchmarks a full run over a small program
func BenchmarkProcessFile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ctx := New(nil, nil)
		ctx.ProcessFile(ctx.AddFile(mainAlgFile, semanticContent))
	}
}
