package vec

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.vsub.dev/pkg/errs"
	"src.vsub.dev/pkg/tt"
)

var identical = cmp.Comparer(Identical)

func TestNASentinels(t *testing.T) {
	tt.Test(t, tt.Fn("IsNAReal", IsNAReal), tt.Table{
		tt.Args(NAReal).Rets(true),
		tt.Args(math.NaN()).Rets(false),
		tt.Args(1.0).Rets(false),
		tt.Args(math.Inf(1)).Rets(false),
	})
	tt.Test(t, tt.Fn("IsNAComplex", IsNAComplex), tt.Table{
		tt.Args(NAComplex).Rets(true),
		tt.Args(complex(NAReal, 0)).Rets(true),
		tt.Args(complex(math.NaN(), 0)).Rets(false),
		tt.Args(complex(1, 2)).Rets(false),
	})
	if NAStr == S("NA") {
		t.Errorf("NAStr equals the string \"NA\"")
	}
}

func TestResolve(t *testing.T) {
	tt.Test(t, tt.Fn("Resolve", Resolve), tt.Table{
		tt.Args(Integer, String).Rets(String, nil),
		tt.Args(String, Integer).Rets(String, nil),
		tt.Args(Logical, Logical).Rets(Logical, nil),
		tt.Args(Logical, Double).Rets(Double, nil),
		tt.Args(Double, Complex).Rets(Complex, nil),
		tt.Args(Integer, List).Rets(List, nil),
		tt.Args(List, Double).Rets(List, nil),
		tt.Args(List, Raw).Rets(List, nil),
		tt.Args(Raw, Raw).Rets(Raw, nil),
		tt.Args(NullKind, Double).Rets(Double, nil),
		tt.Args(Integer, NullKind).Rets(Integer, nil),

		tt.Args(Raw, List).Rets(Kind(0), errs.SubassignTypeFix("list", "raw")),
		tt.Args(Raw, Integer).Rets(Kind(0), errs.SubassignTypeFix("integer", "raw")),
		tt.Args(String, Raw).Rets(Kind(0), errs.SubassignTypeFix("raw", "character")),
		tt.Args(List, Closure).Rets(Kind(0), errs.SubassignTypeFix("closure", "list")),
		tt.Args(Integer, Closure).Rets(Kind(0), errs.SubassignTypeFix("closure", "integer")),
	})
}

func TestCanWiden(t *testing.T) {
	for from := Logical; from <= List; from++ {
		for to := Logical; to <= List; to++ {
			want := from == to ||
				(from <= String && to <= String && from < to) ||
				(from <= Raw && to == List)
			if got := CanWiden(from, to); got != want {
				t.Errorf("CanWiden(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
	if CanWiden(Integer, Closure) {
		t.Errorf("CanWiden(integer, closure) = true")
	}
}

func TestWiden(t *testing.T) {
	tt.Test(t, tt.Fn("Widen", Widen).Opts(identical), tt.Table{
		tt.Args(Lgls(True, NALgl, False), Integer).Rets(Ints(1, NAInt, 0), nil),
		tt.Args(Lgls(True, NALgl), String).Rets(StrsNA(S("TRUE"), NAStr), nil),
		tt.Args(Ints(1, 2, NAInt), Double).Rets(Dbls(1, 2, NAReal), nil),
		tt.Args(Ints(1, 2, 3), String).Rets(Strs("1", "2", "3"), nil),
		tt.Args(Dbls(0.5, NAReal), Complex).Rets(Cplxs(0.5, NAComplex), nil),
		tt.Args(Dbls(1e5, 1.5), String).Rets(Strs("1e+05", "1.5"), nil),
		tt.Args(Cplxs(1+2i), String).Rets(Strs("1+2i"), nil),
		tt.Args(Ints(1, 2), List).Rets(NewList(Ints(1), Ints(2)), nil),
		// Attributes survive.
		tt.Args(Ints(1, 2).WithNames("a", "b"), Double).
			Rets(Dbls(1, 2).WithNames("a", "b"), nil),
		tt.Args(Ints(1, 2, 3, 4).WithDim(2, 2).WithDimNames([]string{"r1", "r2"}, nil), Double).
			Rets(Dbls(1, 2, 3, 4).WithDim(2, 2).WithDimNames([]string{"r1", "r2"}, nil), nil),

		tt.Args(Raws(1), Integer).Rets((*Vector)(nil), errs.SubassignTypeFix("raw", "integer")),
		tt.Args(Strs("x"), Integer).Rets((*Vector)(nil), errs.SubassignTypeFix("character", "integer")),
		tt.Args(NewList(), Integer).Rets((*Vector)(nil), errs.SubassignTypeFix("list", "integer")),
	})
}

func TestWiden_AllocatesUnsharedCopy(t *testing.T) {
	src := Ints(1, 2).MarkShared()
	out, err := Widen(src, Double)
	if err != nil {
		t.Fatal(err)
	}
	if out.Shared() {
		t.Errorf("widened vector is shared")
	}
	out.Dbls()[0] = 10
	if src.Ints()[0] != 1 {
		t.Errorf("widening aliased the source")
	}
	if same, _ := Widen(src, Integer); same != src {
		t.Errorf("Widen to the same kind did not return the source")
	}
}

func TestWidenValue(t *testing.T) {
	f := &Func{Name: "f"}
	tt.Test(t, tt.Fn("WidenValue", WidenValue).Opts(identical), tt.Table{
		tt.Args(Ints(1).WithNames("a"), Double).Rets(Dbls(1), nil),
		tt.Args(Ints(1).WithNames("a"), Integer).Rets(Ints(1), nil),
		tt.Args(f, List).Rets(NewList(f), nil),
		tt.Args(Raws(7), List).Rets(NewList(Raws(7)), nil),
		tt.Args(Null, Integer).Rets(Ints(), nil),
		tt.Args(f, Integer).Rets((*Vector)(nil), errs.SubassignTypeFix("closure", "integer")),
		tt.Args(Raws(1), String).Rets((*Vector)(nil), errs.SubassignTypeFix("raw", "character")),
	})
}

func TestFormatDouble(t *testing.T) {
	tt.Test(t, tt.Fn("FormatDouble", FormatDouble), tt.Table{
		tt.Args(0.0).Rets("0"),
		tt.Args(1.0).Rets("1"),
		tt.Args(-2.5).Rets("-2.5"),
		tt.Args(0.1).Rets("0.1"),
		tt.Args(100000.0).Rets("1e+05"),
		tt.Args(123456.0).Rets("123456"),
		tt.Args(0.0001).Rets("1e-04"),
		tt.Args(0.00012).Rets("0.00012"),
		tt.Args(1.0 / 3).Rets("0.333333333333333"),
		tt.Args(1e15).Rets("1e+15"),
		tt.Args(123456789.0).Rets("123456789"),
		tt.Args(1.5e-300).Rets("1.5e-300"),
		tt.Args(math.Inf(1)).Rets("Inf"),
		tt.Args(math.Inf(-1)).Rets("-Inf"),
		tt.Args(math.NaN()).Rets("NaN"),
		tt.Args(NAReal).Rets("NA"),
	})
	tt.Test(t, tt.Fn("FormatComplex", FormatComplex), tt.Table{
		tt.Args(complex(1, 2)).Rets("1+2i"),
		tt.Args(complex(1, -2)).Rets("1-2i"),
		tt.Args(complex(0, 0)).Rets("0+0i"),
		tt.Args(NAComplex).Rets("NA"),
	})
	tt.Test(t, tt.Fn("FormatRaw", FormatRaw), tt.Table{
		tt.Args(byte(0)).Rets("00"),
		tt.Args(byte(255)).Rets("ff"),
	})
}

func TestIdentical(t *testing.T) {
	tt.Test(t, tt.Fn("Identical", Identical), tt.Table{
		tt.Args(Ints(1, 2), Ints(1, 2)).Rets(true),
		tt.Args(Ints(1, 2), Ints(1, 3)).Rets(false),
		tt.Args(Ints(1), Dbls(1)).Rets(false),
		tt.Args(Dbls(NAReal), Dbls(NAReal)).Rets(true),
		tt.Args(Dbls(NAReal), Dbls(math.NaN())).Rets(false),
		tt.Args(Dbls(math.NaN()), Dbls(math.NaN())).Rets(true),
		tt.Args(StrsNA(NAStr), Strs("NA")).Rets(false),
		tt.Args(Ints(1).WithNames("a"), Ints(1)).Rets(false),
		tt.Args(Ints(1).WithNames("a"), Ints(1).WithNames("a")).Rets(true),
		tt.Args(Ints(1, 2).WithDim(1, 2), Ints(1, 2).WithDim(2, 1)).Rets(false),
		tt.Args(NewList(Ints(1), Null), NewList(Ints(1), Null)).Rets(true),
		tt.Args(NewList(Ints(1)), NewList(Dbls(1))).Rets(false),
		tt.Args(Null, Null).Rets(true),
		tt.Args(Null, Ints()).Rets(false),
		tt.Args(&Func{"f"}, &Func{"f"}).Rets(true),
		tt.Args(Ints(1).MarkShared(), Ints(1)).Rets(true),
	})
}

func TestVectorAttributes(t *testing.T) {
	m := Ints(1, 2, 3, 4, 5, 6).WithDim(2, 3).WithDimNames([]string{"a", "b"}, nil)
	if m.Rank() != 2 {
		t.Errorf("Rank() = %d, want 2", m.Rank())
	}
	c := m.Copy()
	c.DimNames().Axes[0][0] = S("z")
	c.Ints()[0] = 9
	if m.DimNames().Axes[0][0] != S("a") || m.Ints()[0] != 1 {
		t.Errorf("Copy shares storage with the original")
	}
	m.SetDim([]int{3, 2})
	if m.DimNames() != nil {
		t.Errorf("SetDim kept stale dimnames")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("SetNames with a bad length did not panic")
		}
	}()
	Ints(1, 2).SetNames(StrsOf("a"))
}

func TestMake(t *testing.T) {
	tt.Test(t, tt.Fn("Make", Make).Opts(identical), tt.Table{
		tt.Args(Logical, 2).Rets(Lgls(NALgl, NALgl)),
		tt.Args(Double, 1).Rets(Dbls(NAReal)),
		tt.Args(String, 1).Rets(StrsNA(NAStr)),
		tt.Args(Raw, 2).Rets(Raws(0, 0)),
		tt.Args(List, 1).Rets(NewList(Null)),
	})
}

func TestString(t *testing.T) {
	tt.Test(t, tt.Fn("String", (*Vector).String), tt.Table{
		tt.Args(Ints(1, NAInt).WithNames("a", "b")).Rets("integer[a=1 b=NA]"),
		tt.Args(Lgls(True).WithDim(1, 1)).Rets("logical<1x1>[TRUE]"),
		tt.Args(NewList(Dbls(1.5), Null)).Rets("list[double[1.5] NULL]"),
	})
}
