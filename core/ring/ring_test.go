package ring

import (
	"errors"
	"reflect"
	"testing"
)

func mustFromSlice[T any](t *testing.T, s []T) *Ring[T] {
	t.Helper()
	r, err := FromSlice(s)
	if err != nil {
		t.Fatalf("FromSlice(%v): %v", s, err)
	}
	return r
}

func TestRing_RejectsZeroLength(t *testing.T) {
	if _, err := New[int](0); !errors.Is(err, ErrZeroLength) {
		t.Errorf("New(0) err = %v, want ErrZeroLength", err)
	}
	if _, err := NewFilled(-3, "x"); !errors.Is(err, ErrZeroLength) {
		t.Errorf("NewFilled(-3) err = %v, want ErrZeroLength", err)
	}
	if _, err := NewWith(0, func(i int) int { return i }); !errors.Is(err, ErrZeroLength) {
		t.Errorf("NewWith(0) err = %v, want ErrZeroLength", err)
	}
	if _, err := FromSlice([]int{}); !errors.Is(err, ErrZeroLength) {
		t.Errorf("FromSlice(empty) err = %v, want ErrZeroLength", err)
	}

	r := mustFromSlice(t, []int{1, 2})
	if err := r.Resize(0); !errors.Is(err, ErrZeroLength) {
		t.Errorf("Resize(0) err = %v, want ErrZeroLength", err)
	}
	if r.Len() != 2 {
		t.Errorf("failed Resize changed Len to %d", r.Len())
	}
}

func TestRing_Constructors(t *testing.T) {
	zero, _ := New[int](3)
	if got := zero.AsSlice(); !reflect.DeepEqual(got, []int{0, 0, 0}) {
		t.Errorf("New = %v", got)
	}

	filled, _ := NewFilled(2, "frame")
	if got := filled.AsSlice(); !reflect.DeepEqual(got, []string{"frame", "frame"}) {
		t.Errorf("NewFilled = %v", got)
	}

	gen, _ := NewWith(4, func(i int) int { return i * i })
	if got := gen.AsSlice(); !reflect.DeepEqual(got, []int{0, 1, 4, 9}) {
		t.Errorf("NewWith = %v", got)
	}

	src := []int{7, 8}
	copied := mustFromSlice(t, src)
	src[0] = 100
	if copied.First() != 7 {
		t.Errorf("FromSlice shares storage with its argument")
	}
}

func TestRing_RotationIdentity(t *testing.T) {
	for k := 1; k <= 7; k++ {
		r, _ := NewWith(k, func(i int) int { return i })
		for start := 0; start < k; start++ {
			r.ResetCursor()
			for i := 0; i < start; i++ {
				r.MoveNext()
			}
			before := r.Cursor()
			for i := 0; i < k; i++ {
				r.MoveNext()
			}
			if r.Cursor() != before {
				t.Fatalf("len %d: cursor %d after %d moves, want %d", k, r.Cursor(), k, before)
			}
		}
	}
}

func TestRing_PreviousAndNext(t *testing.T) {
	r := mustFromSlice(t, []int{10, 20, 30, 40})
	for step := 0; step < 9; step++ {
		c := r.Cursor()
		if got, want := r.Previous(), r.Get(c+r.Len()-1); got != want {
			t.Fatalf("cursor %d: Previous = %d, want %d", c, got, want)
		}
		if got, want := r.Next(), r.Get(c+1); got != want {
			t.Fatalf("cursor %d: Next = %d, want %d", c, got, want)
		}
		if r.Cursor() != c {
			t.Fatalf("Previous/Next moved the cursor")
		}
		r.MoveNext()
	}
}

func TestRing_MovePrevious(t *testing.T) {
	r := mustFromSlice(t, []string{"a", "b", "c"})
	r.MovePrevious()
	if r.Cursor() != 2 || r.Current() != "c" {
		t.Fatalf("MovePrevious from 0: cursor %d current %q", r.Cursor(), r.Current())
	}
	r.MovePrevious()
	r.MovePrevious()
	if r.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", r.Cursor())
	}
	r.MoveNext()
	r.MovePrevious()
	if r.Cursor() != 0 {
		t.Fatalf("MoveNext+MovePrevious cursor = %d, want 0", r.Cursor())
	}
}

func TestRing_SingleElement(t *testing.T) {
	r, _ := NewFilled(1, 5)
	r.MoveNext()
	r.MovePrevious()
	if r.Current() != 5 || r.Previous() != 5 || r.Next() != 5 || r.Cursor() != 0 {
		t.Fatalf("single element ring misbehaves: cursor %d", r.Cursor())
	}
}

func TestRing_AbsoluteIndexWraps(t *testing.T) {
	r := mustFromSlice(t, []int{1, 2, 3})
	r.MoveNext()

	cases := map[int]int{0: 1, 1: 2, 2: 3, 3: 1, 7: 2, -1: 3, -4: 3}
	for i, want := range cases {
		if got := r.Get(i); got != want {
			t.Errorf("Get(%d) = %d, want %d", i, got, want)
		}
	}

	r.Set(5, 30)
	*r.GetPtr(-3) = 10
	if got := r.AsSlice(); !reflect.DeepEqual(got, []int{10, 2, 30}) {
		t.Errorf("after Set/GetPtr = %v", got)
	}
}

func TestRing_PointerAccessors(t *testing.T) {
	r := mustFromSlice(t, []int{0, 0, 0})
	r.MoveNext()

	*r.CurrentPtr() = 1
	*r.PreviousPtr() = 2
	*r.NextPtr() = 3

	if got := r.AsSlice(); !reflect.DeepEqual(got, []int{2, 1, 3}) {
		t.Errorf("pointer writes = %v, want [2 1 3]", got)
	}
}

func TestRing_ResizePreservation(t *testing.T) {
	shrink := mustFromSlice(t, []int{10, 20, 30, 40})
	if err := shrink.Resize(2); err != nil {
		t.Fatal(err)
	}
	if got := shrink.AsSlice(); !reflect.DeepEqual(got, []int{10, 20}) {
		t.Errorf("shrink = %v, want [10 20]", got)
	}

	grow := mustFromSlice(t, []int{10, 20, 30, 40})
	if err := grow.ResizeFilled(6, -1); err != nil {
		t.Fatal(err)
	}
	if got := grow.AsSlice(); !reflect.DeepEqual(got, []int{10, 20, 30, 40, -1, -1}) {
		t.Errorf("ResizeFilled = %v", got)
	}

	gen := mustFromSlice(t, []int{10, 20, 30, 40})
	if err := gen.ResizeWith(6, func(i int) int { return i * 100 }); err != nil {
		t.Fatal(err)
	}
	if got := gen.AsSlice(); !reflect.DeepEqual(got, []int{10, 20, 30, 40, 400, 500}) {
		t.Errorf("ResizeWith = %v", got)
	}

	zero := mustFromSlice(t, []int{10, 20, 30, 40})
	if err := zero.Resize(6); err != nil {
		t.Fatal(err)
	}
	if got := zero.AsSlice(); !reflect.DeepEqual(got, []int{10, 20, 30, 40, 0, 0}) {
		t.Errorf("Resize = %v", got)
	}
}

func TestRing_ResizeClampsCursor(t *testing.T) {
	r := mustFromSlice(t, []int{1, 2, 3, 4, 5})
	for i := 0; i < 4; i++ {
		r.MoveNext()
	}

	if err := r.Resize(3); err != nil {
		t.Fatal(err)
	}
	if r.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", r.Cursor())
	}

	r.MovePrevious()
	if err := r.Resize(8); err != nil {
		t.Fatal(err)
	}
	if r.Cursor() != 1 {
		t.Fatalf("growing moved cursor to %d", r.Cursor())
	}
}

func TestRing_IterationAndClone(t *testing.T) {
	r := mustFromSlice(t, []string{"x", "y", "z"})
	r.MoveNext()

	var got []string
	for i, v := range r.All() {
		if r.Get(i) != v {
			t.Fatalf("All yielded %q at %d", v, i)
		}
		got = append(got, v)
	}
	if !reflect.DeepEqual(got, []string{"x", "y", "z"}) {
		t.Errorf("All = %v", got)
	}

	c := r.Clone()
	c.Set(0, "changed")
	if r.First() != "x" || c.Cursor() != 1 {
		t.Errorf("Clone shares storage or lost cursor")
	}
}
