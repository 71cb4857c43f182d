package grid

import (
	"testing"
)

func TestBits_WordCount(t *testing.T) {
	b := NewBits[uint8](RuntimeDims{3, 3, 3})
	if b.BitsPerWord() != 8 {
		t.Fatalf("BitsPerWord = %d, want 8", b.BitsPerWord())
	}
	if b.WordCount() != 4 {
		t.Fatalf("WordCount = %d, want 4", b.WordCount())
	}

	cases := []struct {
		dims Dims
		want int
	}{
		{RuntimeDims{4, 4, 4}, 1},
		{RuntimeDims{8, 8, 1}, 1},
		{RuntimeDims{8, 8, 2}, 2},
		{RuntimeDims{1, 1, 65}, 2},
		{RuntimeDims{0, 0, 0}, 0},
	}
	for _, c := range cases {
		if got := NewBits[uint64](c.dims).WordCount(); got != c.want {
			t.Errorf("uint64 WordCount(%v) = %d, want %d", c.dims, got, c.want)
		}
	}
	if got := NewBits[uint16](ConstDims[E32, E32, E32]{}).WordCount(); got != 2048 {
		t.Errorf("uint16 WordCount(32^3) = %d, want 2048", got)
	}
}

func TestBits_SetGet(t *testing.T) {
	b := NewBits[uint8](RuntimeDims{3, 3, 3})
	b.Set(2, 2, 2, true)
	b.Set(1, 0, 1, true)

	if !b.Get(2, 2, 2) || !b.Get(1, 0, 1) {
		t.Fatal("set bits read back false")
	}
	// 2+2*3+2*9 = 26 -> word 3, bit 2
	if b.Words()[3] != 1<<2 {
		t.Fatalf("word 3 = %08b, want 00000100", b.Words()[3])
	}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				want := (x == 2 && y == 2 && z == 2) || (x == 1 && y == 0 && z == 1)
				if b.Get(x, y, z) != want {
					t.Fatalf("Get(%d,%d,%d) = %v, want %v", x, y, z, !want, want)
				}
			}
		}
	}

	b.Set(2, 2, 2, false)
	if b.Get(2, 2, 2) || b.Count() != 1 {
		t.Fatalf("clear failed: Get=%v Count=%d", b.Get(2, 2, 2), b.Count())
	}
}

func TestBits_Fill(t *testing.T) {
	b := NewBitsFilled[uint32](RuntimeDims{5, 5, 5}, true)
	if b.Count() != 125 {
		t.Fatalf("Count after fill(true) = %d, want 125", b.Count())
	}
	b.Fill(false)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			for z := 0; z < 5; z++ {
				if b.Get(x, y, z) {
					t.Fatalf("cell %d,%d,%d still true after fill(false)", x, y, z)
				}
			}
		}
	}
	if b.Count() != 0 {
		t.Fatalf("Count after fill(false) = %d", b.Count())
	}
}

func TestBits_WordWidths(t *testing.T) {
	b8 := NewBits[uint8](ConstDims[E4, E4, E4]{})
	b64 := NewBits[uint64](ConstDims[E4, E4, E4]{})
	bu := NewBits[uint](ConstDims[E4, E4, E4]{})
	for _, c := range []Coord{{0, 0, 0}, {3, 1, 2}, {3, 3, 3}, {1, 2, 0}} {
		b8.Set(c.X, c.Y, c.Z, true)
		b64.Set(c.X, c.Y, c.Z, true)
		bu.Set(c.X, c.Y, c.Z, true)
	}
	if b8.WordCount() != 8 || b64.WordCount() != 1 {
		t.Fatalf("WordCount = %d / %d", b8.WordCount(), b64.WordCount())
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				if b8.Get(x, y, z) != b64.Get(x, y, z) || b8.Get(x, y, z) != bu.Get(x, y, z) {
					t.Fatalf("word widths disagree at %d,%d,%d", x, y, z)
				}
			}
		}
	}
	if b64.Words()[0] != 1|1<<(3+4+32)|1<<63|1<<(1+8) {
		t.Fatalf("uint64 word = %064b", b64.Words()[0])
	}
}

func TestBits_Unchecked(t *testing.T) {
	b := NewBits[uint16](RuntimeDims{4, 4, 4})
	b.SetUnchecked(3, 3, 3, true)
	if !b.GetUnchecked(3, 3, 3) || !b.Get(3, 3, 3) {
		t.Fatal("unchecked write not visible")
	}
	if b.Index(3, 3, 3) != 63 {
		t.Fatalf("Index(3,3,3) = %d, want 63", b.Index(3, 3, 3))
	}
}

func TestBits_CountIgnoresPadding(t *testing.T) {
	b := NewBits[uint8](RuntimeDims{3, 3, 3})
	b.Fill(true)
	// 27 cells in 32 bits; the 5 padding bits are set but not counted.
	if b.Words()[3] != 0xff {
		t.Fatalf("last word = %08b", b.Words()[3])
	}
	if b.Count() != 27 {
		t.Fatalf("Count = %d, want 27", b.Count())
	}
}

func BenchmarkBits_Set(b *testing.B) {
	g := NewBits[uint64](ConstDims[E64, E64, E64]{})
	for i := 0; i < b.N; i++ {
		for z := 0; z < 64; z++ {
			for y := 0; y < 64; y++ {
				for x := 0; x < 64; x++ {
					g.SetUnchecked(x, y, z, x&1 == 0)
				}
			}
		}
	}
}
