package subscript

import (
	"src.vsub.dev/pkg/errs"
	"src.vsub.dev/pkg/vec"
)

// Options are the per-access settings of NormalizeAll.
type Options struct {
	Mode    Mode
	Op      Op
	Partial bool
}

// NormalizeAll normalizes the raw indices of one access to container c,
// one per axis. A single index addresses c as a flat vector, unless it is
// a numeric matrix with one column per axis of c, in which case each row
// picks one element. Otherwise there must be exactly one index per axis.
func NormalizeAll(c vec.Value, raws []vec.Value, opts Options) ([]Selection, error) {
	if len(raws) == 0 {
		raws = []vec.Value{nil}
	}
	vc, _ := c.(*vec.Vector)
	rank := 1
	if vc != nil {
		rank = vc.Rank()
	}
	isList := vc != nil && vc.Kind() == vec.List

	if len(raws) == 1 {
		raw := raws[0]
		if rank > 1 && opts.Mode == Subset {
			if m, ok := raw.(*vec.Vector); ok && isMatrixIndex(m, rank) {
				sel, err := matrixPositions(m, vc.Dim())
				if err != nil {
					return nil, err
				}
				return []Selection{sel}, nil
			}
		}
		ctx := Context{
			Mode: opts.Mode, Op: opts.Op, Extent: c.Len(),
			List: isList, Partial: opts.Partial,
		}
		if vc != nil {
			ctx.Names = vc.Names()
		}
		sel, err := Normalize(raw, ctx)
		if err != nil {
			return nil, err
		}
		return []Selection{sel}, nil
	}

	if len(raws) != rank {
		if opts.Op == Write {
			return nil, errs.IncorrectSubscripts(rank, len(raws))
		}
		return nil, errs.IncorrectDimensions(rank, len(raws))
	}
	dim, dimnames := vc.Dim(), vc.DimNames()
	sels := make([]Selection, rank)
	for k, raw := range raws {
		ctx := Context{
			Mode: opts.Mode, Op: opts.Op, Extent: dim[k],
			Multi: true, List: isList, Partial: opts.Partial,
		}
		if dimnames != nil {
			ctx.Names = dimnames.Axes[k]
		}
		sel, err := Normalize(raw, ctx)
		if err != nil {
			return nil, err
		}
		sels[k] = sel
	}
	return sels, nil
}

func isMatrixIndex(m *vec.Vector, rank int) bool {
	k := m.Kind()
	return (k == vec.Integer || k == vec.Double) && m.Rank() == 2 && m.Dim()[1] == rank
}

// matrixPositions converts a matrix subscript into flat positions of an
// array with dimensions dim. Rows containing a zero are skipped and rows
// containing an NA select NA.
func matrixPositions(m *vec.Vector, dim []int) (Selection, error) {
	rows := m.Dim()[0]
	idx := numericIndex(m)
	out := make([]Pos, 0, rows)
	for i := 0; i < rows; i++ {
		linear, stride := 0, 1
		na, zero := false, false
		for k, extent := range dim {
			x := idx[i+k*rows]
			switch {
			case x == naIndex:
				na = true
			case x < 0:
				return nil, errs.ErrNegativeInMatrix
			case x == 0:
				zero = true
			case x > int64(extent):
				return nil, errs.ErrSubscriptOOB
			default:
				linear += int(x-1) * stride
			}
			stride *= extent
		}
		switch {
		case zero:
		case na:
			out = append(out, NA)
		default:
			out = append(out, Pos(linear+1))
		}
	}
	logger.Debug("matrix subscript", "rows", rows, "selected", len(out))
	return Positions{out, MatrixRows}, nil
}
