package access

import (
	"github.com/RoaringBitmap/roaring/v2"
	"src.vsub.dev/pkg/errs"
	"src.vsub.dev/pkg/subscript"
	"src.vsub.dev/pkg/vec"
)

// Delete is the replacement value that removes the addressed slots of a
// list, as in x[i] <- NULL.
var Delete = vec.Null

// Write returns c with the part addressed by one selection per axis replaced
// by value, or removed if value is Delete.
//
// The container is promoted to the common kind of itself and value, grown
// with NA when a flat write addresses positions past its end, and copied
// first if it is shared; otherwise it is updated in place and returned.
// Values are recycled over the addressed positions. When their counts are
// not multiples of each other, a flat write completes and also returns an
// errs.Warning, while a multi-axis write fails.
func Write(c vec.Value, sels []subscript.Selection, mode subscript.Mode, value vec.Value) (vec.Value, error) {
	v, err := container(c)
	if err != nil {
		return nil, err
	}
	if value == nil {
		value = Delete
	}
	if v == nil {
		if vec.IsNull(value) {
			return vec.Null, nil
		}
		v = vec.Empty(startKind(value, mode))
	}
	switch {
	case len(sels) == 0 || (len(sels) > 1 && len(sels) != v.Rank()):
		return nil, errs.IncorrectSubscripts(v.Rank(), len(sels))
	case vec.IsNull(value):
		return remove(v, sels)
	case mode == subscript.Subscript && v.Kind() == vec.List:
		return writeSlot(v, sels, value)
	case mode == subscript.Subscript && value.Kind() == vec.List:
		// x[[i]] <- list(...) turns an atomic x into a list and stores the
		// list itself in slot i.
		if _, err := vec.Resolve(v.Kind(), vec.List); err != nil {
			return nil, kindError(mode, vec.List, v.Kind())
		}
		return writeSlot(v, sels, value)
	}
	return assign(v, sels, mode, value)
}

// startKind picks the kind of the empty vector that a write into the null
// singleton starts from.
func startKind(value vec.Value, mode subscript.Mode) vec.Kind {
	if val, ok := value.(*vec.Vector); ok {
		if mode == subscript.Subset || (val.Len() == 1 && val.Kind() != vec.List) {
			return val.Kind()
		}
	}
	return vec.List
}

// addressed returns the flat positions addressed by sels. Positions of a
// multi-axis write must lie within the dimensions.
func addressed(v *vec.Vector, sels []subscript.Selection) ([]subscript.Pos, error) {
	if len(sels) == 1 {
		return sels[0].Expand(v.Len()), nil
	}
	ps := expandAll(v.Dim(), sels)
	for k, p := range ps {
		if subscript.MaxPos(p) > v.Dim()[k] {
			return nil, errs.ErrSubscriptOOB
		}
	}
	return linearPositions(v.Dim(), ps), nil
}

// remove deletes the addressed slots of a list. Only flat deletions are
// possible; positions past the end are ignored.
func remove(v *vec.Vector, sels []subscript.Selection) (vec.Value, error) {
	ps, err := addressed(v, sels)
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return v, nil
	}
	if v.Kind() != vec.List || len(sels) > 1 {
		return nil, errs.ErrReplacementZero
	}

	n := v.Len()
	doomed := roaring.New()
	for _, p := range ps {
		if !p.IsNA() && int(p) <= n {
			doomed.Add(uint32(p))
		}
	}
	if doomed.IsEmpty() {
		return v, nil
	}
	keep := func(i int) bool { return !doomed.Contains(uint32(i + 1)) }
	elems := make([]vec.Value, 0, n-int(doomed.GetCardinality()))
	for i, e := range v.Elems() {
		if keep(i) {
			elems = append(elems, e)
		}
	}
	out := vec.NewList(elems...)
	out.SetNames(compactNames(v.Names(), keep))
	logger.Debug("deleted list slots", "deleted", doomed.GetCardinality(), "len", n)
	return out, nil
}

// writeSlot stores value itself in one slot of a list, as x[[i]] <- value
// does.
func writeSlot(v *vec.Vector, sels []subscript.Selection, value vec.Value) (vec.Value, error) {
	ps, err := addressed(v, sels)
	if err != nil {
		return nil, err
	}
	switch {
	case len(ps) == 0:
		return v, nil
	case len(ps) > 1:
		return nil, errs.ErrSelectMoreThanOne
	case ps[0].IsNA():
		// One value into one unknown position: nothing to do.
		return v, nil
	}
	n := v.Len()
	out, err := prepare(v, vec.List, max(n, int(ps[0])))
	if err != nil {
		return nil, err
	}
	if out.Len() > n {
		out.SetNames(growNames(v.Names(), out.Len()))
	}
	out.Elems()[ps[0].Index()] = value
	mergeNames(out, sels)
	return out, nil
}

// assign implements writes that store elements of value: every write into
// an atomic container, and Subset writes into a list.
func assign(v *vec.Vector, sels []subscript.Selection, mode subscript.Mode, value vec.Value) (vec.Value, error) {
	val, ok := value.(*vec.Vector)
	if !ok {
		return nil, kindError(mode, value.Kind(), v.Kind())
	}
	kind, err := vec.Resolve(v.Kind(), val.Kind())
	if err != nil {
		return nil, kindError(mode, val.Kind(), v.Kind())
	}
	ps, err := addressed(v, sels)
	if err != nil {
		return nil, err
	}
	multi := len(sels) > 1
	n, m, k := v.Len(), len(ps), val.Len()

	if mode == subscript.Subscript {
		switch {
		case k == 0:
			return nil, errs.ErrReplacementZero
		case k > 1:
			return nil, errs.ErrMoreSupplied
		case m > 1:
			return nil, errs.ErrSelectMoreThanOne
		case m == 0:
			return v, nil
		}
	}
	if k == 0 {
		if m == 0 {
			return v, nil
		}
		return nil, errs.ErrReplacementZero
	}
	if subscript.HasNA(ps) {
		if k == 1 && m == 1 {
			return v, nil
		}
		return nil, errs.ErrNAAssignment
	}
	var warn error
	if m%k != 0 {
		if multi {
			return nil, errs.ErrNotMultipleFatal
		}
		warn = errs.WarnNotMultiple
	}

	if val == v {
		val = val.Copy()
	}
	src, err := vec.WidenValue(val, kind)
	if err != nil {
		return nil, kindError(mode, val.Kind(), v.Kind())
	}
	newLen := n
	if !multi {
		newLen = max(n, subscript.MaxPos(ps))
	}
	out, err := prepare(v, kind, newLen)
	if err != nil {
		return nil, err
	}
	if newLen > n {
		out.SetNames(growNames(v.Names(), newLen))
	}
	scatter(out, src, ps)
	if !multi {
		mergeNames(out, sels)
	}
	if warn != nil {
		logger.Debug("recycled replacement", "positions", m, "values", k)
	}
	return out, warn
}

// prepare returns the vector to mutate: v promoted to kind and grown to n
// elements, or a private copy of v when it is shared. Growing drops the
// dimensions; names are the caller's business. n may not exceed vec.MaxLen.
func prepare(v *vec.Vector, kind vec.Kind, n int) (*vec.Vector, error) {
	if n > vec.MaxLen {
		return nil, errs.ErrVectorTooLarge
	}
	out := v
	if kind != v.Kind() {
		w, err := vec.Widen(v, kind)
		if err != nil {
			return nil, err
		}
		logger.Debug("promoted container", "from", v.Kind().String(), "to", kind.String())
		out = w
	}
	switch {
	case n > out.Len():
		logger.Debug("grew container", "from", out.Len(), "to", n)
		out = out.Extend(n)
	case out == v && v.Shared():
		logger.Debug("copied shared container", "kind", v.Kind().String(), "len", v.Len())
		out = v.Copy()
	}
	return out, nil
}

// mergeNames records the keys of a flat character-keyed write as names.
func mergeNames(out *vec.Vector, sels []subscript.Selection) {
	if np, ok := sels[0].(subscript.NamedPositions); ok && len(sels) == 1 {
		out.SetNames(mergeKeys(out.Names(), out.Len(), np.Pos, np.Keys))
	}
}

func kindError(mode subscript.Mode, from, to vec.Kind) error {
	if mode == subscript.Subscript {
		return errs.Subscript2Types(from.String(), to.String())
	}
	return errs.SubassignTypeFix(from.String(), to.String())
}
