// Package display renders containers the way the host language prints them
// at its prompt: vectors with [i] prefixes or a row of names, lists as
// tagged elements, matrices and higher arrays as tables.
package display

import (
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"src.vsub.dev/pkg/sys"
	"src.vsub.dev/pkg/vec"
)

// DefaultWidth is the line width used when Options.Width is zero.
const DefaultWidth = 80

// Options control rendering.
type Options struct {
	// Width is the width vectors wrap at.
	Width int
	// Style is the name of the table style arrays are drawn in. Unknown
	// names fall back to "light".
	Style string
}

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

// AutoOptions returns options suited to writing to file: the terminal's
// width and a colored style when it is a terminal, plain defaults otherwise.
func AutoOptions(file *os.File) Options {
	if sys.IsATTY(file) {
		return Options{Width: sys.Width(file, DefaultWidth), Style: "bright"}
	}
	return Options{Width: DefaultWidth, Style: "light"}
}

// Format renders v.
func Format(v vec.Value, opts Options) string {
	var sb strings.Builder
	writeValue(&sb, v, "", opts)
	return sb.String()
}

// Fprint writes the rendering of v to w.
func Fprint(w io.Writer, v vec.Value, opts Options) error {
	_, err := io.WriteString(w, Format(v, opts))
	return err
}

func writeValue(sb *strings.Builder, v vec.Value, tag string, opts Options) {
	switch v := v.(type) {
	case *vec.Vector:
		switch {
		case v.Kind() == vec.List && v.Rank() < 2:
			writeList(sb, v, tag, opts)
		case v.Rank() >= 2:
			writeArray(sb, v, opts)
		case v.Rank() == 1 && v.DimNames() != nil:
			flat := vec.FromData(v.Data())
			flat.SetNames(v.DimNames().Axes[0])
			writeVector(sb, flat, opts)
		default:
			writeVector(sb, v, opts)
		}
	case *vec.Func:
		sb.WriteString(v.String())
		sb.WriteByte('\n')
	default:
		sb.WriteString("NULL\n")
	}
}

// elem formats element i of an atomic vector for printing. Strings are
// quoted unless NA.
func elem(v *vec.Vector, i int) string {
	if v.Kind() == vec.String {
		s := v.Strs()[i]
		if s.NA {
			return "NA"
		}
		return strconv.Quote(s.S)
	}
	return v.ElemString(i)
}

func writeVector(sb *strings.Builder, v *vec.Vector, opts Options) {
	n := v.Len()
	if n == 0 {
		if v.Names() != nil {
			sb.WriteString("named ")
		}
		sb.WriteString(v.Kind().String())
		sb.WriteString("(0)\n")
		return
	}
	cells := make([]string, n)
	w := 0
	for i := range cells {
		cells[i] = elem(v, i)
		w = max(w, runewidth.StringWidth(cells[i]))
	}
	if names := v.Names(); names != nil {
		labels := make([]string, n)
		for i, name := range names {
			labels[i] = nameLabel(name)
			w = max(w, runewidth.StringWidth(labels[i]))
		}
		perLine := max(1, (opts.width()+1)/(w+1))
		for start := 0; start < n; start += perLine {
			end := min(n, start+perLine)
			writeRow(sb, "", labels[start:end], w)
			writeRow(sb, "", cells[start:end], w)
		}
		return
	}
	pw := len(strconv.Itoa(n)) + 2
	perLine := max(1, (opts.width()-pw)/(w+1))
	for start := 0; start < n; start += perLine {
		end := min(n, start+perLine)
		prefix := "[" + strconv.Itoa(start+1) + "]"
		writeRow(sb, padLeft(prefix, pw)+" ", cells[start:end], w)
	}
}

func nameLabel(name vec.Str) string {
	if name.NA {
		return "<NA>"
	}
	return name.S
}

func writeRow(sb *strings.Builder, prefix string, cells []string, w int) {
	sb.WriteString(prefix)
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(padLeft(c, w))
	}
	sb.WriteByte('\n')
}

func padLeft(s string, w int) string {
	sw := runewidth.StringWidth(s)
	if sw >= w {
		return s
	}
	return strings.Repeat(" ", w-sw) + s
}

func writeList(sb *strings.Builder, v *vec.Vector, tag string, opts Options) {
	if v.Len() == 0 {
		if v.Names() != nil {
			sb.WriteString("named ")
		}
		sb.WriteString("list()\n")
		return
	}
	names := v.Names()
	for i, e := range v.Elems() {
		t := tag + "[[" + strconv.Itoa(i+1) + "]]"
		if names != nil && !names[i].NA && names[i].S != "" {
			t = tag + "$" + names[i].S
		}
		sb.WriteString(t)
		sb.WriteByte('\n')
		writeValue(sb, e, t, opts)
		sb.WriteByte('\n')
	}
}

// StyleNames returns the names of the table styles, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidStyle reports whether name is a known table style.
func ValidStyle(name string) bool {
	_, ok := styles[strings.ToLower(name)]
	return ok
}
