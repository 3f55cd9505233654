package semantics

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"jander/internal/frontend/ast"
)

// ErrSymbolNotFound is returned when looking up a name that was never declared
var ErrSymbolNotFound = errors.New("symbol not found")

// SymbolKind represents the kind of symbol
type SymbolKind int

const (
	SymbolVar SymbolKind = iota
	SymbolConst
)

// String returns a string representation of the SymbolKind
func (k SymbolKind) String() string {
	switch k {
	case SymbolVar:
		return "variavel"
	case SymbolConst:
		return "constante"
	default:
		return "desconhecido"
	}
}

// Symbol is a declared name together with its resolved type
type Symbol struct {
	Name string
	Kind SymbolKind
	Type Type
	Decl ast.Node // Back-reference to the declaring identifier
}

// NewSymbol creates a new symbol with the given properties
func NewSymbol(name string, kind SymbolKind, typ Type, decl ast.Node) *Symbol {
	return &Symbol{
		Name: name,
		Kind: kind,
		Type: typ,
		Decl: decl,
	}
}

// SymbolTable is the single flat namespace of one analysis run. Names are
// case-sensitive. Entries are never removed.
type SymbolTable struct {
	symbols map[string]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
	}
}

// Declare inserts sym under name. Callers check Contains first; a second
// declaration of the same name overwrites the first.
func (st *SymbolTable) Declare(name string, sym *Symbol) {
	st.symbols[name] = sym
}

func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.symbols[name]
	return ok
}

// Lookup returns the symbol declared under name
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// TypeOf returns the declared type of name, or ErrSymbolNotFound
func (st *SymbolTable) TypeOf(name string) (Type, error) {
	sym, ok := st.symbols[name]
	if !ok {
		return TypeInvalid, fmt.Errorf("type of %q: %w", name, ErrSymbolNotFound)
	}
	return sym.Type, nil
}

func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// Names returns the declared names in sorted order
func (st *SymbolTable) Names() []string {
	names := maps.Keys(st.symbols)
	slices.Sort(names)
	return names
}

// Symbols returns the declared symbols sorted by name
func (st *SymbolTable) Symbols() []*Symbol {
	names := st.Names()
	out := make([]*Symbol, 0, len(names))
	for _, name := range names {
		out = append(out, st.symbols[name])
	}
	return out
}
