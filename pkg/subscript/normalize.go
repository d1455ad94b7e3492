package subscript

import (
	"math"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"src.vsub.dev/pkg/errs"
	"src.vsub.dev/pkg/logutil"
	"src.vsub.dev/pkg/vec"
)

var logger = logutil.GetLogger("[subscript] ")

// Context describes the axis an index is normalized against.
type Context struct {
	Mode Mode
	Op   Op
	// Extent is the length of the axis.
	Extent int
	// Names are the names of the axis positions: the flat names for a
	// single-axis access, that axis's dimnames for a multi-axis one. Nil if
	// the axis is unnamed.
	Names []vec.Str
	// Multi is set when the axis is one of several of a multi-axis access.
	// Out-of-range positions, unknown keys and overlong masks are then
	// errors, since only flat containers can grow.
	Multi bool
	// List is set when the container is a list. A Subscript read of a list
	// tolerates an NA position or an unknown key, and the reader turns it
	// into the null singleton.
	List bool
	// Partial enables unique-prefix matching of a key under a Subscript
	// read when there is no exact match.
	Partial bool
}

// naIndex marks an NA entry of a numeric index.
const naIndex = math.MinInt64

// Largest magnitude kept from a double index; anything larger is out of
// range for every container anyway.
const maxIndex = 1 << 53

// Normalize converts the raw index of one axis into a Selection. A nil raw
// index means the index was missing, as in x[] or the empty slot of m[1, ].
func Normalize(raw vec.Value, ctx Context) (Selection, error) {
	if raw == nil {
		if ctx.Mode == Subscript {
			return nil, errs.ErrMissingSubscript
		}
		return All{}, nil
	}
	if vec.IsNull(raw) {
		if ctx.Mode == Subscript {
			return nil, errs.ErrSelectLessThanOne
		}
		return Empty{}, nil
	}
	v, ok := raw.(*vec.Vector)
	if !ok {
		return nil, errs.InvalidSubscriptType(raw.Kind().String())
	}
	switch v.Kind() {
	case vec.Logical:
		if ctx.Mode == Subscript {
			return normalizeSingle(logicalIndex(v.Lgls()), ctx)
		}
		return normalizeMask(v.Lgls(), ctx)
	case vec.Integer, vec.Double:
		if ctx.Mode == Subscript {
			return normalizeSingle(numericIndex(v), ctx)
		}
		return normalizeNumeric(numericIndex(v), ctx)
	case vec.String:
		if ctx.Mode == Subscript {
			return normalizeKey(v.Strs(), ctx)
		}
		return normalizeKeys(v.Strs(), ctx)
	}
	return nil, errs.InvalidSubscriptType(v.Kind().String())
}

// numericIndex truncates an Integer or Double index toward zero. NA, NaN and
// infinite entries become naIndex.
func numericIndex(v *vec.Vector) []int64 {
	switch v.Kind() {
	case vec.Integer:
		ints := v.Ints()
		out := make([]int64, len(ints))
		for i, x := range ints {
			if x == vec.NAInt {
				out[i] = naIndex
			} else {
				out[i] = int64(x)
			}
		}
		return out
	case vec.Double:
		dbls := v.Dbls()
		out := make([]int64, len(dbls))
		for i, x := range dbls {
			switch {
			case math.IsNaN(x) || math.IsInf(x, 0):
				out[i] = naIndex
			case x >= maxIndex:
				out[i] = maxIndex
			case x <= -maxIndex:
				out[i] = -maxIndex
			default:
				out[i] = int64(x)
			}
		}
		return out
	}
	panic("subscript: numeric index of kind " + v.Kind().String())
}

// logicalIndex reads a logical index as numbers, the way x[[TRUE]] does.
func logicalIndex(lgls []vec.Lgl) []int64 {
	out := make([]int64, len(lgls))
	for i, l := range lgls {
		if l == vec.NALgl {
			out[i] = naIndex
		} else {
			out[i] = int64(l)
		}
	}
	return out
}

func normalizeNumeric(idx []int64, ctx Context) (Selection, error) {
	var pos, neg, na, zero int
	for _, x := range idx {
		switch {
		case x == naIndex:
			na++
		case x > 0:
			pos++
		case x < 0:
			neg++
		default:
			zero++
		}
	}
	if neg > 0 {
		switch {
		case pos > 0:
			return nil, errs.ErrMixedSigns
		case na > 0:
			return nil, errs.ErrNAWithNegative
		}
		excluded := roaring.New()
		for _, x := range idx {
			if -x <= int64(ctx.Extent) && x != 0 {
				excluded.Add(uint32(-x))
			}
		}
		return Complement{excluded}, nil
	}

	out := make([]Pos, 0, len(idx)-zero)
	oob := false
	for _, x := range idx {
		switch {
		case x == naIndex:
			out = append(out, NA)
		case x == 0:
		case x > int64(ctx.Extent):
			if ctx.Multi {
				return nil, errs.ErrSubscriptOOB
			}
			oob = true
			if ctx.Op == Read {
				out = append(out, NA)
			} else {
				out = append(out, Pos(x))
			}
		default:
			out = append(out, Pos(x))
		}
	}
	shape := PositiveInBounds
	switch {
	case zero > 0 && zero == len(idx):
		shape = AllZero
	case na > 0:
		shape = ContainsNA
	case oob:
		shape = PositiveOutOfBounds
	}
	return Positions{out, shape}, nil
}

func normalizeMask(mask []vec.Lgl, ctx Context) (Selection, error) {
	n := len(mask)
	if n > ctx.Extent && ctx.Multi {
		return nil, errs.ErrLogicalTooLong
	}
	total := max(n, ctx.Extent)
	out := []Pos{}
	if n == 0 {
		return Positions{out, LogicalMask}, nil
	}
	for i := 0; i < total; i++ {
		switch mask[i%n] {
		case vec.True:
			if i >= ctx.Extent && ctx.Op == Read {
				out = append(out, NA)
			} else {
				out = append(out, Pos(i+1))
			}
		case vec.NALgl:
			out = append(out, NA)
		}
	}
	return Positions{out, LogicalMask}, nil
}

// normalizeSingle applies the Subscript rules to a numeric index.
func normalizeSingle(idx []int64, ctx Context) (Selection, error) {
	switch {
	case len(idx) == 0:
		return nil, errs.ErrSelectLessThanOne
	case len(idx) > 1:
		return nil, errs.ErrSelectMoreThanOne
	}
	x := idx[0]
	switch {
	case x == naIndex:
		if ctx.Op == Write || (ctx.List && !ctx.Multi) {
			return Positions{[]Pos{NA}, ContainsNA}, nil
		}
		return nil, errs.ErrSubscriptOOB
	case x == 0:
		if ctx.Op == Write {
			return Positions{[]Pos{}, AllZero}, nil
		}
		return nil, errs.ErrSelectLessThanOne
	case x < 0:
		remaining := ctx.Extent
		if -x <= int64(ctx.Extent) {
			remaining--
		}
		if remaining != 1 {
			return nil, errs.ErrInvalidNegSubscript
		}
		// One position is left: the other of two, or the only one.
		p := Pos(1)
		if x == -1 && ctx.Extent == 2 {
			p = 2
		}
		return Positions{[]Pos{p}, AllNegative}, nil
	case x > int64(ctx.Extent):
		if ctx.Op == Read || ctx.Multi {
			return nil, errs.ErrSubscriptOOB
		}
		return Positions{[]Pos{Pos(x)}, PositiveOutOfBounds}, nil
	}
	return Positions{[]Pos{Pos(x)}, PositiveInBounds}, nil
}

// normalizeKey applies the Subscript rules to a character index.
func normalizeKey(keys []vec.Str, ctx Context) (Selection, error) {
	switch {
	case len(keys) == 0:
		return nil, errs.ErrSelectLessThanOne
	case len(keys) > 1:
		return nil, errs.ErrSelectMoreThanOne
	}
	key := keys[0]
	p := lookup(ctx.Names, key)
	if p == NA && ctx.Partial && ctx.Op == Read {
		p = lookupPrefix(ctx.Names, key)
	}
	if p == NA {
		switch {
		case ctx.Multi:
			return nil, errs.ErrSubscriptOOB
		case ctx.Op == Write:
			p = Pos(ctx.Extent + 1)
		case !ctx.List:
			return nil, errs.ErrSubscriptOOB
		}
	}
	return NamedPositions{[]Pos{p}, keys}, nil
}

// normalizeKeys applies the Subset rules to a character index. Unknown keys
// read as NA; on a write they are given fresh positions after the end of
// the axis, one per distinct key.
func normalizeKeys(keys []vec.Str, ctx Context) (Selection, error) {
	index := nameIndex(ctx.Names)
	out := make([]Pos, len(keys))
	var fresh map[string]Pos
	next := Pos(ctx.Extent + 1)
	for i, key := range keys {
		if p, ok := index[key]; ok && key.S != "" && !key.NA {
			out[i] = p
			continue
		}
		switch {
		case ctx.Multi:
			return nil, errs.ErrSubscriptOOB
		case ctx.Op == Read:
			out[i] = NA
		case key.NA || key.S == "":
			// Never matches, not even itself.
			out[i] = next
			next++
		default:
			if fresh == nil {
				fresh = make(map[string]Pos)
			}
			if p, ok := fresh[key.S]; ok {
				out[i] = p
			} else {
				fresh[key.S] = next
				out[i] = next
				next++
			}
		}
	}
	if next > Pos(ctx.Extent+1) {
		logger.Debug("keys allocate positions", "extent", ctx.Extent, "new", int(next)-ctx.Extent-1)
	}
	return NamedPositions{out, keys}, nil
}

// nameIndex maps each usable name to its first position.
func nameIndex(names []vec.Str) map[vec.Str]Pos {
	index := make(map[vec.Str]Pos, len(names))
	for i, name := range names {
		if name.NA || name.S == "" {
			continue
		}
		if _, ok := index[name]; !ok {
			index[name] = Pos(i + 1)
		}
	}
	return index
}

// lookup returns the first position whose name equals key, or NA. NA and
// empty keys match nothing.
func lookup(names []vec.Str, key vec.Str) Pos {
	if key.NA || key.S == "" {
		return NA
	}
	for i, name := range names {
		if name == key {
			return Pos(i + 1)
		}
	}
	return NA
}

// lookupPrefix returns the position of the only name that key is a prefix
// of, or NA if there is no such name or more than one.
func lookupPrefix(names []vec.Str, key vec.Str) Pos {
	if key.NA || key.S == "" {
		return NA
	}
	found := NA
	for i, name := range names {
		if name.NA || !strings.HasPrefix(name.S, key.S) {
			continue
		}
		if found != NA {
			return NA
		}
		found = Pos(i + 1)
	}
	return found
}
