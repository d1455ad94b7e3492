package vec

import "fmt"

// Lgls makes a Logical vector.
func Lgls(vs ...Lgl) *Vector { return &Vector{kind: Logical, data: nonNil(vs)} }

// Ints makes an Integer vector.
func Ints(vs ...int32) *Vector { return &Vector{kind: Integer, data: nonNil(vs)} }

// Dbls makes a Double vector.
func Dbls(vs ...float64) *Vector { return &Vector{kind: Double, data: nonNil(vs)} }

// Cplxs makes a Complex vector.
func Cplxs(vs ...complex128) *Vector { return &Vector{kind: Complex, data: nonNil(vs)} }

// Strs makes a String vector without NA elements.
func Strs(vs ...string) *Vector { return &Vector{kind: String, data: StrsOf(vs...)} }

// StrsNA makes a String vector from character elements, which may be NA.
func StrsNA(vs ...Str) *Vector { return &Vector{kind: String, data: nonNil(vs)} }

// Raws makes a Raw vector.
func Raws(vs ...byte) *Vector { return &Vector{kind: Raw, data: nonNil(vs)} }

// NewList makes a List. Nil elements are stored as Null.
func NewList(vs ...Value) *Vector {
	elems := make([]Value, len(vs))
	for i, e := range vs {
		if e == nil {
			e = Null
		}
		elems[i] = e
	}
	return &Vector{kind: List, data: elems}
}

func nonNil[T any](vs []T) []T {
	if vs == nil {
		return []T{}
	}
	return vs
}

// MaxLen is the largest length a vector may grow to, the largest position
// an integer index can address.
const MaxLen = 1<<31 - 1

// Make returns a vector of kind k and length n, filled with the kind's NA
// sentinel (zero for Raw, Null for List).
func Make(k Kind, n int) *Vector {
	v := &Vector{kind: k}
	switch k {
	case Logical:
		v.data = fill(n, NALgl)
	case Integer:
		v.data = fill(n, NAInt)
	case Double:
		v.data = fill(n, NAReal)
	case Complex:
		v.data = fill(n, NAComplex)
	case String:
		v.data = fill(n, NAStr)
	case Raw:
		v.data = make([]byte, n)
	case List:
		v.data = fill(n, Null)
	default:
		panic(fmt.Sprintf("vec: cannot make %s vector", k))
	}
	return v
}

// Empty returns a zero-length vector of kind k.
func Empty(k Kind) *Vector { return Make(k, 0) }

func fill[T any](n int, x T) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = x
	}
	return s
}

// FromData wraps an element slice into a vector of the matching kind. The
// slice is used without copying.
func FromData(data any) *Vector {
	switch data.(type) {
	case []Lgl:
		return &Vector{kind: Logical, data: data}
	case []int32:
		return &Vector{kind: Integer, data: data}
	case []float64:
		return &Vector{kind: Double, data: data}
	case []complex128:
		return &Vector{kind: Complex, data: data}
	case []Str:
		return &Vector{kind: String, data: data}
	case []byte:
		return &Vector{kind: Raw, data: data}
	case []Value:
		return &Vector{kind: List, data: data}
	}
	panic(fmt.Sprintf("vec: bad storage %T", data))
}

// NA returns the NA sentinel of an element kind as a Go value of the
// kind's element type.
func NA(k Kind) any {
	switch k {
	case Logical:
		return NALgl
	case Integer:
		return NAInt
	case Double:
		return NAReal
	case Complex:
		return NAComplex
	case String:
		return NAStr
	case Raw:
		return byte(0)
	case List:
		return Null
	}
	panic(fmt.Sprintf("vec: no NA for %s", k))
}

// Extend returns an unshared vector of length n holding v's elements
// followed by NA sentinels. The result carries no attributes. It panics if n
// is less than Len().
func (v *Vector) Extend(n int) *Vector {
	if n < v.Len() {
		panic(fmt.Sprintf("vec: extending %d elements to %d", v.Len(), n))
	}
	out := Make(v.kind, n)
	switch d := out.data.(type) {
	case []Lgl:
		copy(d, v.Lgls())
	case []int32:
		copy(d, v.Ints())
	case []float64:
		copy(d, v.Dbls())
	case []complex128:
		copy(d, v.Cplxs())
	case []Str:
		copy(d, v.Strs())
	case []byte:
		copy(d, v.Raws())
	case []Value:
		copy(d, v.Elems())
	}
	return out
}
