package display

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"src.vsub.dev/pkg/vec"
)

var styles = map[string]table.Style{
	"light":   table.StyleLight,
	"double":  table.StyleDouble,
	"bold":    table.StyleBold,
	"rounded": table.StyleRounded,
	"simple":  table.StyleDefault,
	"bright":  table.StyleColoredBright,
	"dark":    table.StyleColoredDark,
	"plain":   plainStyle(),
}

// plainStyle draws no lines at all, close to how the host language prints
// matrices.
func plainStyle() table.Style {
	s := table.StyleDefault
	s.Name = "plain"
	s.Options.DrawBorder = false
	s.Options.SeparateColumns = false
	s.Options.SeparateHeader = false
	s.Options.SeparateRows = false
	return s
}

func tableStyle(name string) table.Style {
	s, ok := styles[strings.ToLower(name)]
	if !ok {
		s = table.StyleLight
	}
	// Dimension names are data; keep their case.
	s.Format.Header = text.FormatDefault
	return s
}

// writeArray renders a container of rank 2 or more as one table per
// matrix slice of its first two axes.
func writeArray(sb *strings.Builder, v *vec.Vector, opts Options) {
	dim := v.Dim()
	if v.Len() == 0 {
		what := "array"
		if len(dim) == 2 {
			what = "matrix"
		}
		extents := make([]string, len(dim))
		for i, d := range dim {
			extents[i] = strconv.Itoa(d)
		}
		sb.WriteString("<" + strings.Join(extents, " x ") + " " + what + ">\n")
		return
	}
	size := dim[0] * dim[1]
	for s := 0; s < v.Len()/size; s++ {
		if len(dim) > 2 {
			sb.WriteString(", , " + sliceLabel(v, s) + "\n\n")
		}
		sb.WriteString(renderSlice(v, s*size, opts))
		sb.WriteByte('\n')
		if len(dim) > 2 {
			sb.WriteByte('\n')
		}
	}
}

// sliceLabel names matrix slice s by its positions along the axes after
// the second.
func sliceLabel(v *vec.Vector, s int) string {
	dim, dn := v.Dim(), v.DimNames()
	parts := make([]string, 0, len(dim)-2)
	for k := 2; k < len(dim); k++ {
		i := s % dim[k]
		s /= dim[k]
		parts = append(parts, axisLabel(dn, k, i, strconv.Itoa(i+1)))
	}
	return strings.Join(parts, ", ")
}

func renderSlice(v *vec.Vector, off int, opts Options) string {
	nr, nc := v.Dim()[0], v.Dim()[1]
	dn := v.DimNames()

	t := table.NewWriter()
	t.SetStyle(tableStyle(opts.Style))
	corner := ""
	if dn != nil && dn.Labels != nil {
		corner = nameLabel(dn.Labels[0])
		t.SetTitle("%s", nameLabel(dn.Labels[1]))
	}
	header := table.Row{corner}
	for j := 0; j < nc; j++ {
		header = append(header, axisLabel(dn, 1, j, "[,"+strconv.Itoa(j+1)+"]"))
	}
	t.AppendHeader(header)
	for i := 0; i < nr; i++ {
		row := table.Row{axisLabel(dn, 0, i, "["+strconv.Itoa(i+1)+",]")}
		for j := 0; j < nc; j++ {
			row = append(row, cell(v, off+i+j*nr))
		}
		t.AppendRow(row)
	}
	configs := make([]table.ColumnConfig, nc)
	for j := range configs {
		configs[j] = table.ColumnConfig{Number: j + 2, Align: text.AlignRight, AlignHeader: text.AlignRight}
	}
	t.SetColumnConfigs(configs)
	return t.Render()
}

func axisLabel(dn *vec.DimNames, k, i int, def string) string {
	if dn == nil || dn.Axes[k] == nil {
		return def
	}
	return nameLabel(dn.Axes[k][i])
}

// cell formats one element of an array. List elements are summarized.
func cell(v *vec.Vector, i int) string {
	if v.Kind() != vec.List {
		return elem(v, i)
	}
	switch e := v.Elems()[i].(type) {
	case *vec.Vector:
		if e.Len() == 1 && e.Kind() != vec.List {
			return elem(e, 0)
		}
		return e.Kind().String() + "," + strconv.Itoa(e.Len())
	case *vec.Func:
		return "function"
	}
	return "NULL"
}
