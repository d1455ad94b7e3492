package vec

import "math"

// Lgl is a logical element: False, True or NALgl.
type Lgl int8

// Logical element values.
const (
	False Lgl = 0
	True  Lgl = 1
	NALgl Lgl = -1
)

// Bool converts a Go bool to a Lgl.
func Bool(b bool) Lgl {
	if b {
		return True
	}
	return False
}

// NAInt is the integer NA sentinel. It lies outside the range of valid
// integer elements.
const NAInt int32 = math.MinInt32

// naRealBits is the bit pattern of the double NA: a quiet NaN whose low word
// carries the payload 1954.
const naRealBits = 0x7FF00000000007A2

// NAReal is the double NA sentinel. It is a NaN, but not every NaN is NA.
var NAReal = math.Float64frombits(naRealBits)

// NAComplex is the complex NA sentinel.
var NAComplex = complex(NAReal, NAReal)

// IsNAReal reports whether f is the double NA (as opposed to any other NaN).
func IsNAReal(f float64) bool {
	return math.IsNaN(f) && uint32(math.Float64bits(f)) == 1954
}

// IsNAComplex reports whether either part of c is NA.
func IsNAComplex(c complex128) bool {
	return IsNAReal(real(c)) || IsNAReal(imag(c))
}

// Str is a character element. The zero value is the empty string; NAStr is
// the character NA, which is distinct from the string "NA".
type Str struct {
	S  string
	NA bool
}

// NAStr is the character NA.
var NAStr = Str{NA: true}

// S makes a non-NA character element.
func S(s string) Str { return Str{S: s} }

// String returns s.S, or "NA" for the NA element.
func (s Str) String() string {
	if s.NA {
		return "NA"
	}
	return s.S
}

// StrsOf converts Go strings to character elements.
func StrsOf(ss ...string) []Str {
	out := make([]Str, len(ss))
	for i, s := range ss {
		out[i] = Str{S: s}
	}
	return out
}
