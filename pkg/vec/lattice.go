package vec

import (
	"src.vsub.dev/pkg/errs"
)

// Resolve returns the element kind a container of kind container must have
// after a value of kind value is written into it.
//
// The atomic kinds are totally ordered, Logical < Integer < Double < Complex
// < String, and the wider of the two wins. List absorbs everything: a List
// container stays a List, and a List value turns an atomic container into
// one. Raw only pairs with Raw. A null container takes the value's kind and
// a null value leaves the container's kind alone. Function values are never
// valid replacements.
func Resolve(container, value Kind) (Kind, error) {
	switch {
	case value == Closure:
		return 0, errs.SubassignTypeFix(value.String(), container.String())
	case container == NullKind:
		return value, nil
	case value == NullKind:
		return container, nil
	case container == List:
		return List, nil
	case container == Raw || value == Raw:
		if container == value {
			return Raw, nil
		}
		return 0, errs.SubassignTypeFix(value.String(), container.String())
	case value == List:
		return List, nil
	case value > container:
		return value, nil
	}
	return container, nil
}

// CanWiden reports whether elements of kind from can be reinterpreted
// losslessly as kind to.
func CanWiden(from, to Kind) bool {
	return int(from) < NumKinds && int(to) < NumKinds && casts[from][to] != nil
}

// Widen returns a container of kind to holding v's elements reinterpreted in
// that kind, with v's names, dimensions and dimension names. NA elements
// stay NA. The result is always freshly allocated and unshared, except that
// v itself is returned when it already has kind to.
func Widen(v *Vector, to Kind) (*Vector, error) {
	if v.kind == to {
		return v, nil
	}
	data, err := castData(v, to)
	if err != nil {
		return nil, err
	}
	out := &Vector{kind: to, data: data}
	out.copyAttrsFrom(v)
	return out, nil
}

// WidenValue reinterprets an incoming replacement value as kind to. Unlike
// Widen it keeps no attributes, since only the elements of a replacement
// matter. A function value can only be widened to List, where it becomes
// the single element.
func WidenValue(v Value, to Kind) (*Vector, error) {
	switch v := v.(type) {
	case *Vector:
		if v.kind == to {
			return &Vector{kind: to, data: v.data}, nil
		}
		data, err := castData(v, to)
		if err != nil {
			return nil, err
		}
		return &Vector{kind: to, data: data}, nil
	case *Func:
		if to == List {
			return NewList(v), nil
		}
	default:
		if IsNull(v) {
			return Empty(to), nil
		}
	}
	return nil, errs.SubassignTypeFix(v.Kind().String(), to.String())
}

func castData(v *Vector, to Kind) (any, error) {
	if int(to) >= NumKinds || casts[v.kind][to] == nil {
		return nil, errs.SubassignTypeFix(v.kind.String(), to.String())
	}
	return casts[v.kind][to](v), nil
}

// casts[from][to] reinterprets the elements of a vector of kind from in kind
// to. Entries are nil for pairs that are not widenings.
var casts = [NumKinds][NumKinds]func(*Vector) any{
	Logical: {
		Logical: func(v *Vector) any { return copyData(v.data) },
		Integer: func(v *Vector) any { return mapElems(v.Lgls(), lglToInt) },
		Double:  func(v *Vector) any { return mapElems(v.Lgls(), lglToDbl) },
		Complex: func(v *Vector) any { return mapElems(v.Lgls(), lglToCplx) },
		String:  func(v *Vector) any { return mapElems(v.Lgls(), lglToStr) },
		List:    boxElems,
	},
	Integer: {
		Integer: func(v *Vector) any { return copyData(v.data) },
		Double:  func(v *Vector) any { return mapElems(v.Ints(), intToDbl) },
		Complex: func(v *Vector) any { return mapElems(v.Ints(), intToCplx) },
		String:  func(v *Vector) any { return mapElems(v.Ints(), intToStr) },
		List:    boxElems,
	},
	Double: {
		Double:  func(v *Vector) any { return copyData(v.data) },
		Complex: func(v *Vector) any { return mapElems(v.Dbls(), dblToCplx) },
		String:  func(v *Vector) any { return mapElems(v.Dbls(), dblToStr) },
		List:    boxElems,
	},
	Complex: {
		Complex: func(v *Vector) any { return copyData(v.data) },
		String:  func(v *Vector) any { return mapElems(v.Cplxs(), cplxToStr) },
		List:    boxElems,
	},
	String: {
		String: func(v *Vector) any { return copyData(v.data) },
		List:   boxElems,
	},
	Raw: {
		Raw:  func(v *Vector) any { return copyData(v.data) },
		List: boxElems,
	},
	List: {
		List: func(v *Vector) any { return copyData(v.data) },
	},
}

func mapElems[S, T any](src []S, f func(S) T) []T {
	out := make([]T, len(src))
	for i, x := range src {
		out[i] = f(x)
	}
	return out
}

// boxElems turns every element into a length-one vector of its own kind.
func boxElems(v *Vector) any {
	out := make([]Value, v.Len())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

func lglToInt(l Lgl) int32 {
	if l == NALgl {
		return NAInt
	}
	return int32(l)
}

func lglToDbl(l Lgl) float64 {
	if l == NALgl {
		return NAReal
	}
	return float64(l)
}

func lglToCplx(l Lgl) complex128 {
	if l == NALgl {
		return NAComplex
	}
	return complex(float64(l), 0)
}

func lglToStr(l Lgl) Str {
	if l == NALgl {
		return NAStr
	}
	return S(FormatLgl(l))
}

func intToDbl(i int32) float64 {
	if i == NAInt {
		return NAReal
	}
	return float64(i)
}

func intToCplx(i int32) complex128 {
	if i == NAInt {
		return NAComplex
	}
	return complex(float64(i), 0)
}

func intToStr(i int32) Str {
	if i == NAInt {
		return NAStr
	}
	return S(FormatInt(i))
}

func dblToCplx(f float64) complex128 {
	if IsNAReal(f) {
		return NAComplex
	}
	return complex(f, 0)
}

func dblToStr(f float64) Str {
	if IsNAReal(f) {
		return NAStr
	}
	return S(FormatDouble(f))
}

func cplxToStr(c complex128) Str {
	if IsNAComplex(c) {
		return NAStr
	}
	return S(FormatComplex(c))
}
