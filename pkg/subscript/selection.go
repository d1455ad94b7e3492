// Package subscript turns raw index values into canonical selections.
//
// A raw index is whatever the caller evaluated between the brackets of x[i]
// or x[[i]]: a vector of numbers, logicals or strings, the null singleton, or
// nothing at all. Normalize classifies it once against one axis of the
// container and produces a Selection, which readers and writers consume
// without looking at the raw index again.
package subscript

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"src.vsub.dev/pkg/vec"
)

// Mode distinguishes the two bracket forms.
type Mode uint8

const (
	// Subset is x[i]: tolerant, returns padded or partial results.
	Subset Mode = iota
	// Subscript is x[[i]]: requires exactly one resolvable position.
	Subscript
)

func (m Mode) String() string {
	if m == Subscript {
		return "[["
	}
	return "["
}

// Op distinguishes reads from assignments.
type Op uint8

const (
	Read Op = iota
	Write
)

func (op Op) String() string {
	if op == Write {
		return "write"
	}
	return "read"
}

// Pos is a canonical 1-based position. NA stands for a position that does
// not resolve.
type Pos int

// NA is the position that does not resolve.
const NA Pos = -1

// IsNA reports whether p is NA.
func (p Pos) IsNA() bool { return p == NA }

// Index returns the 0-based offset of p. It must not be called on NA.
func (p Pos) Index() int { return int(p) - 1 }

func (p Pos) String() string {
	if p == NA {
		return "NA"
	}
	return fmt.Sprint(int(p))
}

// Class is the shape of a normalized index, computed once by Normalize so
// that readers and writers can dispatch on a single value.
type Class uint8

const (
	// Everything is the class of All.
	Everything Class = iota
	// Nothing is the class of Empty.
	Nothing
	PositiveInBounds
	PositiveOutOfBounds
	AllNegative
	AllZero
	ContainsNA
	LogicalMask
	CharacterKeys
	// MatrixRows is the class of a matrix subscript, one element per row.
	MatrixRows
)

var classNames = [...]string{
	Everything:          "everything",
	Nothing:             "nothing",
	PositiveInBounds:    "positive-in-bounds",
	PositiveOutOfBounds: "positive-out-of-bounds",
	AllNegative:         "all-negative",
	AllZero:             "all-zero",
	ContainsNA:          "contains-na",
	LogicalMask:         "logical-mask",
	CharacterKeys:       "character-keys",
	MatrixRows:          "matrix-rows",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Selection is the canonical result of normalizing the index of one axis.
// It is one of All, Empty, Positions, Complement or NamedPositions.
type Selection interface {
	// Class returns the shape the selection was normalized from.
	Class() Class
	// Expand lists the addressed positions against an axis of the given
	// extent, in selection order.
	Expand(extent int) []Pos
	isSelection()
}

// All selects every position of the axis. It results from a missing index.
type All struct{}

// Empty selects nothing. It results from the null index.
type Empty struct{}

// Positions selects the listed positions, in order. Positions are positive
// or NA; a position beyond the axis extent requests growth on a write.
type Positions struct {
	Pos []Pos
	// Shape is the class the positions were normalized from.
	Shape Class
}

// Complement selects every position of the axis except the excluded ones,
// in increasing order. It results from an all-negative index.
type Complement struct {
	Excluded *roaring.Bitmap
}

// NamedPositions is Positions that came from character keys. Keys[i] is the
// key that produced Pos[i]; a writer stores it as the name of that position.
type NamedPositions struct {
	Pos  []Pos
	Keys []vec.Str
}

func (All) Class() Class            { return Everything }
func (Empty) Class() Class          { return Nothing }
func (s Positions) Class() Class    { return s.Shape }
func (Complement) Class() Class     { return AllNegative }
func (NamedPositions) Class() Class { return CharacterKeys }

func (All) isSelection()            {}
func (Empty) isSelection()          {}
func (Positions) isSelection()      {}
func (Complement) isSelection()     {}
func (NamedPositions) isSelection() {}

func (Empty) Expand(int) []Pos            { return nil }
func (s Positions) Expand(int) []Pos      { return s.Pos }
func (s NamedPositions) Expand(int) []Pos { return s.Pos }

func (All) Expand(extent int) []Pos {
	out := make([]Pos, extent)
	for i := range out {
		out[i] = Pos(i + 1)
	}
	return out
}

func (s Complement) Expand(extent int) []Pos {
	out := make([]Pos, 0, extent)
	for i := 1; i <= extent; i++ {
		if !s.Excluded.Contains(uint32(i)) {
			out = append(out, Pos(i))
		}
	}
	return out
}

// Excludes returns how many positions of an axis of the given extent the
// complement removes.
func (s Complement) Excludes(extent int) int {
	if extent <= 0 {
		return 0
	}
	return int(s.Excluded.Rank(uint32(extent)))
}

// Count returns the number of positions sel addresses on an axis of the
// given extent.
func Count(sel Selection, extent int) int {
	switch s := sel.(type) {
	case All:
		return extent
	case Empty:
		return 0
	case Positions:
		return len(s.Pos)
	case NamedPositions:
		return len(s.Pos)
	case Complement:
		return extent - s.Excludes(extent)
	}
	panic(fmt.Sprintf("subscript: unknown selection %T", sel))
}

// MaxPos returns the largest non-NA position in ps, or 0 if there is none.
func MaxPos(ps []Pos) int {
	max := 0
	for _, p := range ps {
		if int(p) > max {
			max = int(p)
		}
	}
	return max
}

// HasNA reports whether any of ps is NA.
func HasNA(ps []Pos) bool {
	for _, p := range ps {
		if p.IsNA() {
			return true
		}
	}
	return false
}
