package diagnostics

import (
	"io"
	"sync"
)

// DiagnosticBag collects diagnostics in the order they are reported.
// Every reported diagnostic is kept, repeated ones included.
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	filepath    string
	mu          sync.Mutex
	errorCount  int
	warnCount   int
}

// NewDiagnosticBag creates a new diagnostic bag for a file
func NewDiagnosticBag(filepath string) *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
		filepath:    filepath,
	}
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	// If this is the first diagnostic with a filepath, use it as the bag's filepath
	if db.filepath == "" && diag.FilePath != "" {
		db.filepath = diag.FilePath
	}

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// Merge appends every diagnostic of other, keeping its order
func (db *DiagnosticBag) Merge(other *DiagnosticBag) {
	for _, diag := range other.Diagnostics() {
		db.Add(diag)
	}
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Len returns the number of recorded diagnostics
func (db *DiagnosticBag) Len() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.diagnostics)
}

// Diagnostics returns a snapshot of all diagnostics
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]*Diagnostic, len(db.diagnostics))
	copy(out, db.diagnostics)
	return out
}

// FilePath returns the file the bag reports for
func (db *DiagnosticBag) FilePath() string {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.filepath
}

// EmitAllToWriter writes all diagnostics to w in the given format.
// Nothing is written when the bag is empty.
func (db *DiagnosticBag) EmitAllToWriter(w io.Writer, format Format, sourceLines []string) error {
	emitter := NewEmitter(w, format)
	if sourceLines != nil {
		emitter.SetSourceLines(db.FilePath(), sourceLines)
	}
	return emitter.EmitAll(db.Diagnostics())
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
	db.warnCount = 0
}
