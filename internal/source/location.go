package source

import "fmt"

// Position is a point in a source file. Line and Column are 1-based, Index is
// the 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Index  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location spans from Start to End (End is exclusive).
type Location struct {
	Start *Position
	End   *Position
}

// NewLocation creates a location from copies of the given positions
func NewLocation(start, end *Position) *Location {
	loc := &Location{}
	if start != nil {
		s := *start
		loc.Start = &s
	}
	if end != nil {
		e := *end
		loc.End = &e
	}
	return loc
}

// At creates a zero-width location at line:column.
func At(line, column int) *Location {
	p := Position{Line: line, Column: column}
	return NewLocation(&p, &p)
}

// Line returns the starting line, or 0 when the location is unknown.
func (l *Location) Line() int {
	if l == nil || l.Start == nil {
		return 0
	}
	return l.Start.Line
}
