// Package vec implements the container values of a dynamically-typed vector
// language: atomic vectors of six element kinds, generic lists, the null
// singleton and opaque function values.
//
// A *Vector is a tagged union: its Kind determines which element slice it
// holds. Vectors optionally carry flat names, dimensions and per-axis
// dimension names.
package vec

import "fmt"

// Value is anything the engine can see as a container, an index or a
// replacement.
type Value interface {
	Kind() Kind
	Len() int
}

type null struct{}

func (null) Kind() Kind       { return NullKind }
func (null) Len() int         { return 0 }
func (null) String() string   { return "NULL" }
func (null) GoString() string { return "vec.Null" }

// Null is the null singleton.
var Null Value = null{}

// IsNull reports whether v is the null singleton.
func IsNull(v Value) bool { return v == Null }

// Func is an opaque function value. The engine never calls it; it can only
// be stored in list slots.
type Func struct {
	Name string
}

func (*Func) Kind() Kind { return Closure }
func (*Func) Len() int   { return 1 }

func (f *Func) String() string { return "function " + f.Name }

// DimNames holds the optional names of each axis of a multi-dimensional
// container.
type DimNames struct {
	// Axes has one entry per axis; a nil entry means the axis has no names.
	Axes [][]Str
	// Labels optionally names the axes themselves.
	Labels []Str
}

// Copy returns a deep copy of dn.
func (dn *DimNames) Copy() *DimNames {
	if dn == nil {
		return nil
	}
	out := &DimNames{Axes: make([][]Str, len(dn.Axes))}
	for i, axis := range dn.Axes {
		if axis != nil {
			out.Axes[i] = append([]Str(nil), axis...)
		}
	}
	if dn.Labels != nil {
		out.Labels = append([]Str(nil), dn.Labels...)
	}
	return out
}

// Vector is a container of one element kind. Exactly one element slice,
// selected by the kind, is in use:
//
//	Logical  []Lgl
//	Integer  []int32
//	Double   []float64
//	Complex  []complex128
//	String   []Str
//	Raw      []byte
//	List     []Value
type Vector struct {
	kind     Kind
	data     any
	names    []Str
	dim      []int
	dimnames *DimNames
	shared   bool
}

func (v *Vector) Kind() Kind { return v.kind }

func (v *Vector) Len() int {
	switch d := v.data.(type) {
	case []Lgl:
		return len(d)
	case []int32:
		return len(d)
	case []float64:
		return len(d)
	case []complex128:
		return len(d)
	case []Str:
		return len(d)
	case []byte:
		return len(d)
	case []Value:
		return len(d)
	}
	return 0
}

// Lgls returns the elements of a Logical vector. It panics for other kinds.
func (v *Vector) Lgls() []Lgl { return v.data.([]Lgl) }

// Ints returns the elements of an Integer vector.
func (v *Vector) Ints() []int32 { return v.data.([]int32) }

// Dbls returns the elements of a Double vector.
func (v *Vector) Dbls() []float64 { return v.data.([]float64) }

// Cplxs returns the elements of a Complex vector.
func (v *Vector) Cplxs() []complex128 { return v.data.([]complex128) }

// Strs returns the elements of a String vector.
func (v *Vector) Strs() []Str { return v.data.([]Str) }

// Raws returns the elements of a Raw vector.
func (v *Vector) Raws() []byte { return v.data.([]byte) }

// Elems returns the elements of a List.
func (v *Vector) Elems() []Value { return v.data.([]Value) }

// Data returns the element slice, whatever its type.
func (v *Vector) Data() any { return v.data }

// Names returns the flat names, or nil.
func (v *Vector) Names() []Str { return v.names }

// Dim returns the dimensions, or nil for a flat vector.
func (v *Vector) Dim() []int { return v.dim }

// DimNames returns the dimension names, or nil.
func (v *Vector) DimNames() *DimNames { return v.dimnames }

// Rank returns the number of axes: len(Dim()), or 1 for a flat vector.
func (v *Vector) Rank() int {
	if v.dim == nil {
		return 1
	}
	return len(v.dim)
}

// Shared reports whether more than one binding may observe a mutation of v.
func (v *Vector) Shared() bool { return v.shared }

// MarkShared records that v is reachable from more than one binding. It is
// called by the binding layer, never by the engine.
func (v *Vector) MarkShared() *Vector {
	v.shared = true
	return v
}

// SetNames replaces the flat names. The slice is used without copying; its
// length must equal Len() unless it is nil.
func (v *Vector) SetNames(names []Str) {
	if names != nil && len(names) != v.Len() {
		panic(fmt.Sprintf("vec: %d names for %d elements", len(names), v.Len()))
	}
	v.names = names
}

// SetDim replaces the dimensions and clears the dimension names. The product
// of dim must equal Len() unless dim is nil.
func (v *Vector) SetDim(dim []int) {
	if dim != nil {
		n := 1
		for _, d := range dim {
			n *= d
		}
		if n != v.Len() {
			panic(fmt.Sprintf("vec: dims %v for %d elements", dim, v.Len()))
		}
	}
	v.dim = dim
	v.dimnames = nil
}

// SetDimNames replaces the dimension names. It panics if v has no dimensions
// or the axis count disagrees.
func (v *Vector) SetDimNames(dn *DimNames) {
	if dn != nil {
		if len(dn.Axes) != len(v.dim) {
			panic(fmt.Sprintf("vec: dimnames for %d axes on rank %d", len(dn.Axes), len(v.dim)))
		}
		for i, axis := range dn.Axes {
			if axis != nil && len(axis) != v.dim[i] {
				panic(fmt.Sprintf("vec: %d dimnames for extent %d", len(axis), v.dim[i]))
			}
		}
	}
	v.dimnames = dn
}

// WithNames sets the names and returns v. It is meant for literal
// construction.
func (v *Vector) WithNames(names ...string) *Vector {
	v.SetNames(StrsOf(names...))
	return v
}

// WithDim sets the dimensions and returns v.
func (v *Vector) WithDim(dim ...int) *Vector {
	v.SetDim(dim)
	return v
}

// WithDimNames sets per-axis names and returns v. Pass nil for an axis
// without names.
func (v *Vector) WithDimNames(axes ...[]string) *Vector {
	dn := &DimNames{Axes: make([][]Str, len(axes))}
	for i, axis := range axes {
		if axis != nil {
			dn.Axes[i] = StrsOf(axis...)
		}
	}
	v.SetDimNames(dn)
	return v
}

// Copy returns an unshared deep copy of v's storage and attributes. List
// elements are shared with v; they are values in their own right.
func (v *Vector) Copy() *Vector {
	out := &Vector{kind: v.kind, data: copyData(v.data)}
	out.copyAttrsFrom(v)
	return out
}

func (v *Vector) copyAttrsFrom(src *Vector) {
	if src.names != nil {
		v.names = append([]Str(nil), src.names...)
	}
	if src.dim != nil {
		v.dim = append([]int(nil), src.dim...)
	}
	v.dimnames = src.dimnames.Copy()
}

func copyData(data any) any {
	switch d := data.(type) {
	case []Lgl:
		return append([]Lgl(nil), d...)
	case []int32:
		return append([]int32(nil), d...)
	case []float64:
		return append([]float64(nil), d...)
	case []complex128:
		return append([]complex128(nil), d...)
	case []Str:
		return append([]Str(nil), d...)
	case []byte:
		return append([]byte(nil), d...)
	case []Value:
		return append([]Value(nil), d...)
	}
	panic(fmt.Sprintf("vec: bad storage %T", data))
}

// At returns element i (0-based) as a Value: a length-one vector of the same
// kind for atomic vectors, the element itself for lists.
func (v *Vector) At(i int) Value {
	switch d := v.data.(type) {
	case []Lgl:
		return Lgls(d[i])
	case []int32:
		return Ints(d[i])
	case []float64:
		return Dbls(d[i])
	case []complex128:
		return Cplxs(d[i])
	case []Str:
		return StrsNA(d[i])
	case []byte:
		return Raws(d[i])
	case []Value:
		return d[i]
	}
	panic(fmt.Sprintf("vec: bad storage %T", v.data))
}

// IsNAAt reports whether element i is NA. Raw elements are never NA; a list
// element is NA when it is a length-one atomic NA.
func (v *Vector) IsNAAt(i int) bool {
	switch d := v.data.(type) {
	case []Lgl:
		return d[i] == NALgl
	case []int32:
		return d[i] == NAInt
	case []float64:
		return IsNAReal(d[i])
	case []complex128:
		return IsNAComplex(d[i])
	case []Str:
		return d[i].NA
	case []Value:
		e, ok := d[i].(*Vector)
		return ok && e.kind != List && e.Len() == 1 && e.IsNAAt(0)
	}
	return false
}
