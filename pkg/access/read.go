package access

import (
	"src.vsub.dev/pkg/errs"
	"src.vsub.dev/pkg/subscript"
	"src.vsub.dev/pkg/vec"
)

// ReadOptions tune reads.
type ReadOptions struct {
	// KeepDims keeps every axis of a multi-axis Subset read in the result's
	// dimensions, even when only one position of it was selected.
	KeepDims bool
	// Partial lets Extract and ReadRecursive match a Subscript key against
	// a unique prefix of a name when no name matches exactly.
	Partial bool
}

// Read returns the part of c addressed by one selection per axis. A single
// selection addresses c as a flat vector.
//
// Under Subset the result is a container of the same kind; positions that do
// not resolve read as NA (null for lists). Under Subscript exactly one
// position must resolve, and the element itself is returned: a list element
// as is, an atomic element as a vector of length one without names.
//
// Reading anything from the null singleton gives the null singleton.
func Read(c vec.Value, sels []subscript.Selection, mode subscript.Mode) (vec.Value, error) {
	return ReadOpts(c, sels, mode, ReadOptions{})
}

// ReadOpts is like Read, with options.
func ReadOpts(c vec.Value, sels []subscript.Selection, mode subscript.Mode, opts ReadOptions) (vec.Value, error) {
	v, err := container(c)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return vec.Null, nil
	}
	switch {
	case len(sels) == 1:
		if mode == subscript.Subscript {
			return readElement(v, sels[0].Expand(v.Len()))
		}
		return readFlat(v, sels[0]), nil
	case len(sels) != v.Rank():
		return nil, errs.IncorrectDimensions(v.Rank(), len(sels))
	}

	ps := expandAll(v.Dim(), sels)
	if mode == subscript.Subscript {
		for _, p := range ps {
			if err := checkOne(p); err != nil {
				return nil, err
			}
			if p[0].IsNA() {
				return nil, errs.ErrSubscriptOOB
			}
		}
		return readElement(v, linearPositions(v.Dim(), ps))
	}
	return readMulti(v, ps, opts), nil
}

func checkOne(ps []subscript.Pos) error {
	switch {
	case len(ps) == 0:
		return errs.ErrSelectLessThanOne
	case len(ps) > 1:
		return errs.ErrSelectMoreThanOne
	}
	return nil
}

// readElement implements the Subscript read of one flat position.
func readElement(v *vec.Vector, ps []subscript.Pos) (vec.Value, error) {
	if err := checkOne(ps); err != nil {
		return nil, err
	}
	p := ps[0]
	switch {
	case p.IsNA():
		if v.Kind() == vec.List {
			return vec.Null, nil
		}
		return nil, errs.ErrSubscriptOOB
	case p.Index() >= v.Len():
		return nil, errs.ErrSubscriptOOB
	}
	return v.At(p.Index()), nil
}

// readFlat implements the Subset read of a single selection.
func readFlat(v *vec.Vector, sel subscript.Selection) *vec.Vector {
	var valid bool
	switch sel.Class() {
	case subscript.Everything:
		return v.Copy()
	case subscript.PositiveInBounds, subscript.AllNegative, subscript.AllZero, subscript.Nothing:
		valid = true
	}
	ps := sel.Expand(v.Len())
	out := vec.FromData(gather(v, ps, valid))
	out.SetNames(subsetNames(v.Names(), ps))
	return out
}

// readMulti implements the Subset read of one selection per axis.
func readMulti(v *vec.Vector, ps [][]subscript.Pos, opts ReadOptions) *vec.Vector {
	lin := linearPositions(v.Dim(), ps)
	out := vec.FromData(gather(v, lin, false))

	var keep []int
	for k, p := range ps {
		if opts.KeepDims || len(p) != 1 || p[0].IsNA() {
			keep = append(keep, k)
		}
	}
	if len(keep) <= 1 && !opts.KeepDims {
		out.SetNames(dimNamesToNames(v.DimNames(), ps, len(lin)))
		return out
	}
	dim := make([]int, len(keep))
	for i, k := range keep {
		dim[i] = len(ps[k])
	}
	out.SetDim(dim)
	out.SetDimNames(subsetDimNames(v.DimNames(), ps, keep))
	return out
}

// ReadRecursive applies Subscript reads level by level, one per element of
// index, the way x[[c(i, j)]] reads x[[i]][[j]]. Every level but the last
// must be a list.
func ReadRecursive(c vec.Value, index *vec.Vector, opts ReadOptions) (vec.Value, error) {
	n := index.Len()
	if n == 0 {
		return nil, errs.ErrSelectLessThanOne
	}
	cur := c
	for i := 0; i < n; i++ {
		v, err := container(cur)
		switch {
		case err != nil:
			return nil, err
		case v == nil:
			if i == 0 {
				return vec.Null, nil
			}
			return nil, errs.ErrSubscriptOOB
		case v.Kind() == vec.List || i == n-1:
		case i == 0:
			return nil, errs.ErrSelectMoreThanOne
		default:
			return nil, errs.RecursiveIndexFailed(i + 1)
		}
		ctx := subscript.Context{
			Mode: subscript.Subscript, Op: subscript.Read, Extent: v.Len(),
			Names: v.Names(), List: v.Kind() == vec.List, Partial: opts.Partial,
		}
		sel, err := subscript.Normalize(index.At(i), ctx)
		if err != nil {
			return nil, err
		}
		cur, err = readElement(v, sel.Expand(v.Len()))
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
