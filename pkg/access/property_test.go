package access

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"src.vsub.dev/pkg/errs"
	"src.vsub.dev/pkg/subscript"
	"src.vsub.dev/pkg/vec"
)

// randomContainer makes a container of length n whose elements depend on
// the seed, optionally with names.
func randomContainer(r *rand.Rand, n int) *vec.Vector {
	var v *vec.Vector
	switch r.Intn(6) {
	case 0:
		lgls := make([]vec.Lgl, n)
		for i := range lgls {
			lgls[i] = vec.Lgl(r.Intn(3) - 1)
		}
		v = vec.Lgls(lgls...)
	case 1:
		ints := make([]int32, n)
		for i := range ints {
			ints[i] = int32(r.Intn(100))
		}
		v = vec.Ints(ints...)
	case 2:
		dbls := make([]float64, n)
		for i := range dbls {
			dbls[i] = r.Float64()
		}
		v = vec.Dbls(dbls...)
	case 3:
		strs := make([]string, n)
		for i := range strs {
			strs[i] = fmt.Sprint(r.Intn(10))
		}
		v = vec.Strs(strs...)
	case 4:
		raws := make([]byte, n)
		r.Read(raws)
		v = vec.Raws(raws...)
	default:
		elems := make([]vec.Value, n)
		for i := range elems {
			elems[i] = vec.Ints(int32(i))
		}
		v = vec.NewList(elems...)
	}
	if r.Intn(2) == 0 {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("n%d", i)
		}
		v.WithNames(names...)
	}
	return v
}

// randomPositions draws k in-range 1-based positions for a container of
// length n, possibly repeating.
func randomPositions(r *rand.Rand, n, k int) []int32 {
	ps := make([]int32, k)
	for i := range ps {
		ps[i] = int32(r.Intn(n) + 1)
	}
	return ps
}

func TestProperty_ReadPicksPositions(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		n := r.Intn(8) + 1
		c := randomContainer(r, n)
		ps := randomPositions(r, n, r.Intn(10))
		got, err := Extract(c, []vec.Value{vec.Ints(ps...)}, subset, ReadOptions{})
		if err != nil {
			t.Fatalf("%v[%v] -> error %v", c, ps, err)
		}
		gotv := got.(*vec.Vector)
		if gotv.Len() != len(ps) || gotv.Kind() != c.Kind() {
			t.Fatalf("%v[%v] -> %v", c, ps, got)
		}
		for i, p := range ps {
			if !vec.Identical(gotv.At(i), c.At(int(p)-1)) {
				t.Errorf("%v[%v] element %d is %v, want %v", c, ps, i, gotv.At(i), c.At(int(p)-1))
			}
		}
	}
}

func TestProperty_WriteBackWhatWasRead(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for iter := 0; iter < 200; iter++ {
		n := r.Intn(8) + 1
		c := randomContainer(r, n)
		idx := vec.Ints(randomPositions(r, n, r.Intn(10)+1)...)
		part, err := Extract(c, []vec.Value{idx}, subset, ReadOptions{})
		if err != nil {
			t.Fatal(err)
		}
		want := c.Copy()
		got, err := Replace(c, []vec.Value{idx}, subset, part)
		if err != nil {
			t.Fatalf("writing %v back to %v[%v] -> %v", part, want, idx, err)
		}
		if !vec.Identical(got, want) {
			t.Errorf("writing %v back to %v[%v] -> %v", part, want, idx, got)
		}
	}
}

func TestProperty_MixedSignsAlwaysFail(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 100; iter++ {
		n := r.Intn(8) + 1
		c := randomContainer(r, n)
		idx := vec.Ints(int32(r.Intn(n)+1), -int32(r.Intn(n)+1))
		_, readErr := Extract(c, []vec.Value{idx}, subset, ReadOptions{})
		_, writeErr := Replace(c, []vec.Value{idx}, subset, vec.Null)
		var indexErr errs.IndexError
		if !errors.As(readErr, &indexErr) || !errors.As(writeErr, &indexErr) {
			t.Errorf("%v[%v]: read error %v, write error %v", c, idx, readErr, writeErr)
		}
	}
}

func TestProperty_GrowthPadsWithNA(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for iter := 0; iter < 100; iter++ {
		n := r.Intn(5)
		c := vec.Make(vec.Double, n)
		p := n + 1 + r.Intn(5)
		got, err := Replace(c, []vec.Value{vec.Ints(int32(p))}, subset, vec.Dbls(1))
		if err != nil {
			t.Fatal(err)
		}
		gotv := got.(*vec.Vector)
		if gotv.Len() != p {
			t.Fatalf("length %d after writing position %d", gotv.Len(), p)
		}
		for i := n; i < p-1; i++ {
			if !gotv.IsNAAt(i) {
				t.Errorf("gap element %d is %v", i, gotv.At(i))
			}
		}
	}
}

func TestProperty_SelectionCountMatchesRead(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for iter := 0; iter < 200; iter++ {
		n := r.Intn(8) + 1
		c := randomContainer(r, n)
		var raw vec.Value
		switch r.Intn(3) {
		case 0:
			raw = vec.Ints(-int32(r.Intn(n) + 1))
		case 1:
			mask := make([]vec.Lgl, r.Intn(n)+1)
			for i := range mask {
				mask[i] = vec.Bool(r.Intn(2) == 0)
			}
			raw = vec.Lgls(mask...)
		default:
			raw = vec.Ints(randomPositions(r, n, r.Intn(4))...)
		}
		sels, err := subscript.NormalizeAll(c, []vec.Value{raw},
			subscript.Options{Mode: subset, Op: subscript.Read})
		if err != nil {
			t.Fatal(err)
		}
		got, err := Read(c, sels, subset)
		if err != nil {
			t.Fatal(err)
		}
		if want := subscript.Count(sels[0], n); got.Len() != want {
			t.Errorf("%v[%v] has %d elements, selection counts %d", c, raw, got.Len(), want)
		}
	}
}
