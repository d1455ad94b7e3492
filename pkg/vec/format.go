package vec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatLgl formats a logical element. NA formats as "NA".
func FormatLgl(l Lgl) string {
	switch l {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	}
	return "NA"
}

// FormatInt formats an integer element.
func FormatInt(i int32) string {
	if i == NAInt {
		return "NA"
	}
	return strconv.FormatInt(int64(i), 10)
}

// FormatDouble formats a double with at most 15 significant digits, choosing
// fixed or scientific notation by whichever is narrower (fixed on ties).
func FormatDouble(f float64) string {
	switch {
	case IsNAReal(f):
		return "NA"
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case f == 0:
		return "0"
	}
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	// d.dddddddddddddde±XX
	e15 := strconv.FormatFloat(f, 'e', 14, 64)
	mant, expPart, _ := strings.Cut(e15, "e")
	exp, _ := strconv.Atoi(expPart)
	digits := strings.TrimRight(strings.Replace(mant, ".", "", 1), "0")
	if digits == "" {
		digits = "0"
	}
	nd := len(digits)

	var fixed string
	switch {
	case exp < 0:
		fixed = "0." + strings.Repeat("0", -exp-1) + digits
	case nd <= exp+1:
		fixed = digits + strings.Repeat("0", exp+1-nd)
	default:
		fixed = digits[:exp+1] + "." + digits[exp+1:]
	}

	sci := digits[:1]
	if nd > 1 {
		sci += "." + digits[1:]
	}
	expSign := "+"
	if exp < 0 {
		expSign = "-"
		exp = -exp
	}
	expDigits := strconv.Itoa(exp)
	if len(expDigits) < 2 {
		expDigits = "0" + expDigits
	}
	sci += "e" + expSign + expDigits

	if len(fixed) <= len(sci) {
		return sign + fixed
	}
	return sign + sci
}

// FormatComplex formats a complex element as re+imi.
func FormatComplex(c complex128) string {
	if IsNAComplex(c) {
		return "NA"
	}
	re, im := real(c), imag(c)
	if im < 0 || (im == 0 && math.Signbit(im)) {
		return FormatDouble(re) + "-" + FormatDouble(-im) + "i"
	}
	return FormatDouble(re) + "+" + FormatDouble(im) + "i"
}

// FormatRaw formats a raw element as two hex digits.
func FormatRaw(b byte) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0xf]})
}

// ElemString formats element i of an atomic vector. It returns "NA" for NA
// elements and the kind name for list elements.
func (v *Vector) ElemString(i int) string {
	switch d := v.data.(type) {
	case []Lgl:
		return FormatLgl(d[i])
	case []int32:
		return FormatInt(d[i])
	case []float64:
		return FormatDouble(d[i])
	case []complex128:
		return FormatComplex(d[i])
	case []Str:
		return d[i].String()
	case []byte:
		return FormatRaw(d[i])
	case []Value:
		return d[i].Kind().String()
	}
	return "?"
}

// String returns a compact one-line rendering such as
// integer[a=1 b=2 NA] or list[double[1] NULL], meant for diagnostics.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(v.kind.String())
	if v.dim != nil {
		for i, d := range v.dim {
			if i == 0 {
				b.WriteByte('<')
			} else {
				b.WriteByte('x')
			}
			b.WriteString(strconv.Itoa(d))
		}
		b.WriteByte('>')
	}
	b.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if v.names != nil {
			b.WriteString(v.names[i].String())
			b.WriteByte('=')
		}
		if v.kind == List {
			fmt.Fprint(&b, v.Elems()[i])
		} else {
			b.WriteString(v.ElemString(i))
		}
	}
	b.WriteByte(']')
	return b.String()
}
