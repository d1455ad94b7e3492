package access

import (
	"src.vsub.dev/pkg/subscript"
	"src.vsub.dev/pkg/vec"
)

// subsetNames picks names by position. NA and out-of-range positions get
// the NA name. A container without names yields no names.
func subsetNames(names []vec.Str, ps []subscript.Pos) []vec.Str {
	if names == nil {
		return nil
	}
	out := make([]vec.Str, len(ps))
	for i, p := range ps {
		if p.IsNA() || int(p) > len(names) {
			out[i] = vec.NAStr
		} else {
			out[i] = names[p.Index()]
		}
	}
	return out
}

// growNames pads names to length n with empty names.
func growNames(names []vec.Str, n int) []vec.Str {
	if names == nil {
		return nil
	}
	out := make([]vec.Str, n)
	copy(out, names)
	return out
}

// mergeKeys stores keys[i] as the name of position ps[i] in a container of
// length n, creating empty names first if there are none. NA positions are
// skipped.
func mergeKeys(names []vec.Str, n int, ps []subscript.Pos, keys []vec.Str) []vec.Str {
	if names == nil {
		names = make([]vec.Str, n)
	}
	for i, p := range ps {
		if !p.IsNA() {
			names[p.Index()] = keys[i]
		}
	}
	return names
}

// axisNames returns the dimnames of axis k, or nil.
func axisNames(dn *vec.DimNames, k int) []vec.Str {
	if dn == nil {
		return nil
	}
	return dn.Axes[k]
}

// subsetDimNames recomputes the dimnames of the axes that survive a
// multi-axis read. It returns nil when no surviving axis is named and there
// are no axis labels.
func subsetDimNames(dn *vec.DimNames, ps [][]subscript.Pos, keep []int) *vec.DimNames {
	if dn == nil {
		return nil
	}
	out := &vec.DimNames{Axes: make([][]vec.Str, len(keep))}
	named := false
	for i, k := range keep {
		out.Axes[i] = subsetNames(dn.Axes[k], ps[k])
		named = named || out.Axes[i] != nil
	}
	if dn.Labels != nil {
		out.Labels = make([]vec.Str, len(keep))
		for i, k := range keep {
			out.Labels[i] = dn.Labels[k]
		}
		named = true
	}
	if !named {
		return nil
	}
	return out
}

// dimNamesToNames gives a read that collapsed to a flat result the names of
// the one named axis whose selection is as long as the result. If no axis
// or more than one axis qualifies, there are no names.
func dimNamesToNames(dn *vec.DimNames, ps [][]subscript.Pos, n int) []vec.Str {
	if dn == nil {
		return nil
	}
	from := -1
	for k, axis := range dn.Axes {
		if axis == nil || len(ps[k]) != n {
			continue
		}
		if from != -1 {
			return nil
		}
		from = k
	}
	if from == -1 {
		return nil
	}
	return subsetNames(dn.Axes[from], ps[from])
}

// compactNames drops the names of deleted slots.
func compactNames(names []vec.Str, keep func(i int) bool) []vec.Str {
	if names == nil {
		return nil
	}
	out := make([]vec.Str, 0, len(names))
	for i, name := range names {
		if keep(i) {
			out = append(out, name)
		}
	}
	return out
}
