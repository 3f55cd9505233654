package semantics

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"
)

func TestSymbolTableDeclareAndLookup(t *testing.T) {
	st := NewSymbolTable()
	be.Equal(t, st.Len(), 0)
	be.True(t, !st.Contains("x"))

	st.Declare("x", NewSymbol("x", SymbolVar, TypeInteger, nil))
	st.Declare("PI", NewSymbol("PI", SymbolConst, TypeReal, nil))

	be.True(t, st.Contains("x"))
	be.True(t, !st.Contains("X"))
	be.Equal(t, st.Len(), 2)

	typ, err := st.TypeOf("PI")
	be.Err(t, err, nil)
	be.Equal(t, typ, TypeReal)

	sym, ok := st.Lookup("PI")
	be.True(t, ok)
	be.Equal(t, sym.Kind, SymbolConst)
	be.Equal(t, sym.Kind.String(), "constante")
}

func TestSymbolTableTypeOfMissing(t *testing.T) {
	st := NewSymbolTable()

	typ, err := st.TypeOf("z")
	be.True(t, errors.Is(err, ErrSymbolNotFound))
	be.Equal(t, typ, TypeInvalid)

	sym, ok := st.Lookup("z")
	be.True(t, !ok)
	be.True(t, sym == nil)
}

func TestSymbolTableSortedDump(t *testing.T) {
	st := NewSymbolTable()
	for _, name := range []string{"zeta", "alfa", "Beta", "meio"} {
		st.Declare(name, NewSymbol(name, SymbolVar, TypeLiteral, nil))
	}

	be.Equal(t, st.Names(), []string{"Beta", "alfa", "meio", "zeta"})

	symbols := st.Symbols()
	be.Equal(t, len(symbols), 4)
	be.Equal(t, symbols[0].Name, "Beta")
	be.Equal(t, symbols[3].Name, "zeta")
}
