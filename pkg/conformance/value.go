package conformance

import (
	"fmt"
	"math"
	"strconv"

	"src.vsub.dev/pkg/vec"
)

// SpecError is returned for a scenario that does not describe a valid
// value.
type SpecError struct {
	Reason string
}

func (e SpecError) Error() string { return "bad scenario: " + e.Reason }

func specErrorf(format string, args ...any) SpecError {
	return SpecError{fmt.Sprintf(format, args...)}
}

// Value builds the value s describes. A nil ValueSpec is the null
// singleton.
func (s *ValueSpec) Value() (vec.Value, error) {
	if s == nil {
		return vec.Null, nil
	}
	switch s.Type {
	case "null", "NULL":
		return vec.Null, nil
	case "function", "closure":
		return &vec.Func{Name: s.Name}, nil
	}
	v, err := s.vector()
	if err != nil {
		return nil, err
	}
	if err := s.setAttrs(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *ValueSpec) vector() (*vec.Vector, error) {
	switch s.Type {
	case "logical":
		return convert(s.Data, vec.Lgls, toLgl)
	case "integer":
		return convert(s.Data, vec.Ints, toInt)
	case "double":
		return convert(s.Data, vec.Dbls, toDbl)
	case "complex":
		return convert(s.Data, vec.Cplxs, toCplx)
	case "character":
		return convert(s.Data, vec.StrsNA, toStr)
	case "raw":
		return convert(s.Data, vec.Raws, toRaw)
	case "list":
		elems := make([]vec.Value, len(s.Elems))
		for i, e := range s.Elems {
			v, err := e.Value()
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return vec.NewList(elems...), nil
	}
	return nil, specErrorf("unknown type %q", s.Type)
}

func convert[T any](data []any, build func(...T) *vec.Vector, conv func(any) (T, bool)) (*vec.Vector, error) {
	out := make([]T, len(data))
	for i, x := range data {
		y, ok := conv(x)
		if !ok {
			return nil, specErrorf("bad element %v (%T)", x, x)
		}
		out[i] = y
	}
	return build(out...), nil
}

func toLgl(x any) (vec.Lgl, bool) {
	switch x := x.(type) {
	case nil:
		return vec.NALgl, true
	case bool:
		return vec.Bool(x), true
	}
	return 0, false
}

func toInt(x any) (int32, bool) {
	switch x := x.(type) {
	case nil:
		return vec.NAInt, true
	case int:
		if x > math.MaxInt32 || x <= math.MinInt32 {
			return 0, false
		}
		return int32(x), true
	}
	return 0, false
}

func toDbl(x any) (float64, bool) {
	switch x := x.(type) {
	case nil:
		return vec.NAReal, true
	case int:
		return float64(x), true
	case float64:
		return x, true
	case string:
		switch x {
		case "NaN":
			return math.NaN(), true
		case "Inf":
			return math.Inf(1), true
		case "-Inf":
			return math.Inf(-1), true
		}
	}
	return 0, false
}

func toCplx(x any) (complex128, bool) {
	switch x := x.(type) {
	case nil:
		return vec.NAComplex, true
	case int:
		return complex(float64(x), 0), true
	case float64:
		return complex(x, 0), true
	case string:
		c, err := strconv.ParseComplex(x, 128)
		return c, err == nil
	}
	return 0, false
}

func toStr(x any) (vec.Str, bool) {
	switch x := x.(type) {
	case nil:
		return vec.NAStr, true
	case string:
		return vec.S(x), true
	case int, float64, bool:
		return vec.S(fmt.Sprint(x)), true
	}
	return vec.Str{}, false
}

func toRaw(x any) (byte, bool) {
	if x, ok := x.(int); ok && x >= 0 && x <= 255 {
		return byte(x), true
	}
	return 0, false
}

func toStrs(data []any) ([]vec.Str, error) {
	if data == nil {
		return nil, nil
	}
	out := make([]vec.Str, len(data))
	for i, x := range data {
		s, ok := toStr(x)
		if !ok {
			return nil, specErrorf("bad name %v (%T)", x, x)
		}
		out[i] = s
	}
	return out, nil
}

// setAttrs applies the names, dim and dimnames of s to v, checking their
// lengths instead of letting the setters panic.
func (s *ValueSpec) setAttrs(v *vec.Vector) error {
	names, err := toStrs(s.Names)
	if err != nil {
		return err
	}
	if names != nil {
		if len(names) != v.Len() {
			return specErrorf("%d names for %d elements", len(names), v.Len())
		}
		v.SetNames(names)
	}
	if s.Dim == nil {
		if s.DimNames != nil {
			return specErrorf("dimnames without dim")
		}
		return nil
	}
	n := 1
	for _, d := range s.Dim {
		if d < 0 {
			return specErrorf("negative extent in dim %v", s.Dim)
		}
		n *= d
	}
	if n != v.Len() {
		return specErrorf("dim %v for %d elements", s.Dim, v.Len())
	}
	v.SetDim(s.Dim)
	if s.DimNames == nil {
		return nil
	}
	if len(s.DimNames) != len(s.Dim) {
		return specErrorf("%d dimnames for rank %d", len(s.DimNames), len(s.Dim))
	}
	dn := &vec.DimNames{Axes: make([][]vec.Str, len(s.Dim))}
	for k, axis := range s.DimNames {
		if dn.Axes[k], err = toStrs(axis); err != nil {
			return err
		}
		if dn.Axes[k] != nil && len(dn.Axes[k]) != s.Dim[k] {
			return specErrorf("%d dimnames for extent %d", len(axis), s.Dim[k])
		}
	}
	if s.Labels != nil {
		if len(s.Labels) != len(s.Dim) {
			return specErrorf("%d labels for rank %d", len(s.Labels), len(s.Dim))
		}
		if dn.Labels, err = toStrs(s.Labels); err != nil {
			return err
		}
	}
	v.SetDimNames(dn)
	return nil
}
