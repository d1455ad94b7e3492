package access

import (
	"fmt"

	"src.vsub.dev/pkg/errs"
	"src.vsub.dev/pkg/subscript"
	"src.vsub.dev/pkg/vec"
)

// container unwraps the value being indexed. It returns nil for the null
// singleton.
func container(c vec.Value) (*vec.Vector, error) {
	if v, ok := c.(*vec.Vector); ok {
		return v, nil
	}
	if c == nil || vec.IsNull(c) {
		return nil, nil
	}
	return nil, errs.NotSubsettable(c.Kind().String())
}

// expandAll expands one selection per axis.
func expandAll(dim []int, sels []subscript.Selection) [][]subscript.Pos {
	ps := make([][]subscript.Pos, len(sels))
	for k, sel := range sels {
		ps[k] = sel.Expand(dim[k])
	}
	return ps
}

// linearPositions flattens per-axis positions of an array with dimensions
// dim into flat positions, in column-major order: the first axis varies
// fastest. A combination involving an NA position is NA.
func linearPositions(dim []int, ps [][]subscript.Pos) []subscript.Pos {
	n := 1
	for _, p := range ps {
		n *= len(p)
	}
	out := make([]subscript.Pos, 0, n)
	if n == 0 {
		return out
	}
	ctr := make([]int, len(ps))
	for {
		linear, stride, na := 0, 1, false
		for k, c := range ctr {
			p := ps[k][c]
			if p.IsNA() {
				na = true
			} else {
				linear += p.Index() * stride
			}
			stride *= dim[k]
		}
		if na {
			out = append(out, subscript.NA)
		} else {
			out = append(out, subscript.Pos(linear+1))
		}
		k := 0
		for ; k < len(ctr); k++ {
			ctr[k]++
			if ctr[k] < len(ps[k]) {
				break
			}
			ctr[k] = 0
		}
		if k == len(ctr) {
			return out
		}
	}
}

// gather builds the elements of v at positions ps. When valid is false, NA
// and out-of-range positions give the kind's NA sentinel; when it is true the
// caller guarantees that every position is in range.
func gather(v *vec.Vector, ps []subscript.Pos, valid bool) any {
	switch d := v.Data().(type) {
	case []vec.Lgl:
		return pick(d, ps, vec.NALgl, valid)
	case []int32:
		return pick(d, ps, vec.NAInt, valid)
	case []float64:
		return pick(d, ps, vec.NAReal, valid)
	case []complex128:
		return pick(d, ps, vec.NAComplex, valid)
	case []vec.Str:
		return pick(d, ps, vec.NAStr, valid)
	case []byte:
		return pick(d, ps, 0, valid)
	case []vec.Value:
		return pick(d, ps, vec.Null, valid)
	}
	panic(fmt.Sprintf("access: bad storage %T", v.Data()))
}

func pick[T any](src []T, ps []subscript.Pos, na T, valid bool) []T {
	out := make([]T, len(ps))
	if valid {
		for i, p := range ps {
			out[i] = src[p.Index()]
		}
		return out
	}
	for i, p := range ps {
		if p.IsNA() || int(p) > len(src) {
			out[i] = na
		} else {
			out[i] = src[p.Index()]
		}
	}
	return out
}

// scatter stores the elements of src at positions ps of dst, recycling src.
// Both vectors have the same kind and every position is in range.
func scatter(dst, src *vec.Vector, ps []subscript.Pos) {
	switch d := dst.Data().(type) {
	case []vec.Lgl:
		put(d, src.Lgls(), ps)
	case []int32:
		put(d, src.Ints(), ps)
	case []float64:
		put(d, src.Dbls(), ps)
	case []complex128:
		put(d, src.Cplxs(), ps)
	case []vec.Str:
		put(d, src.Strs(), ps)
	case []byte:
		put(d, src.Raws(), ps)
	case []vec.Value:
		put(d, src.Elems(), ps)
	default:
		panic(fmt.Sprintf("access: bad storage %T", dst.Data()))
	}
}

func put[T any](dst, src []T, ps []subscript.Pos) {
	for i, p := range ps {
		dst[p.Index()] = src[i%len(src)]
	}
}
