package vec

import "math"

// Identical reports whether a and b have the same kind, elements and
// attributes. NA equals NA of the same kind, and the double NA is not
// identical to other NaNs. The shared flag is not compared.
func Identical(a, b Value) bool {
	switch a := a.(type) {
	case *Vector:
		b, ok := b.(*Vector)
		return ok && identicalVectors(a, b)
	case *Func:
		b, ok := b.(*Func)
		return ok && a.Name == b.Name
	case nil:
		return b == nil
	}
	return a == b
}

func identicalVectors(a, b *Vector) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind || a.Len() != b.Len() {
		return false
	}
	if !identicalStrs(a.names, b.names) || !identicalInts(a.dim, b.dim) ||
		!identicalDimNames(a.dimnames, b.dimnames) {
		return false
	}
	switch ad := a.data.(type) {
	case []Lgl:
		return identicalSlices(ad, b.Lgls())
	case []int32:
		return identicalSlices(ad, b.Ints())
	case []float64:
		bd := b.Dbls()
		for i := range ad {
			if !identicalDbl(ad[i], bd[i]) {
				return false
			}
		}
		return true
	case []complex128:
		bd := b.Cplxs()
		for i := range ad {
			if !identicalDbl(real(ad[i]), real(bd[i])) || !identicalDbl(imag(ad[i]), imag(bd[i])) {
				return false
			}
		}
		return true
	case []Str:
		return identicalStrs(ad, b.Strs())
	case []byte:
		return identicalSlices(ad, b.Raws())
	case []Value:
		bd := b.Elems()
		for i := range ad {
			if !Identical(ad[i], bd[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func identicalDbl(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y) && IsNAReal(x) == IsNAReal(y)
	}
	return x == y
}

func identicalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func identicalInts(a, b []int) bool {
	return (a == nil) == (b == nil) && identicalSlices(a, b)
}

func identicalStrs(a, b []Str) bool {
	return (a == nil) == (b == nil) && identicalSlices(a, b)
}

func identicalDimNames(a, b *DimNames) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Axes) != len(b.Axes) || !identicalStrs(a.Labels, b.Labels) {
		return false
	}
	for i := range a.Axes {
		if !identicalStrs(a.Axes[i], b.Axes[i]) {
			return false
		}
	}
	return true
}
