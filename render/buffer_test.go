package render

import (
	"testing"
)

func TestNewBufferBlank(t *testing.T) {
	b := NewBuffer(5, 3)
	if b.Width() != 5 || b.Height() != 3 {
		t.Fatalf("Expected 5x3, got %dx%d", b.Width(), b.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if b.Get(x, y) != Blank {
				t.Errorf("Expected blank at (%d, %d), got %q", x, y, b.Get(x, y))
			}
		}
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	b := NewBuffer(4, 4)
	coords := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}, {-5, -5}}
	for _, c := range coords {
		b.Set(c[0], c[1], '#') // must be a no-op
		if got := b.Get(c[0], c[1]); got != Blank {
			t.Errorf("Expected blank for out-of-bounds get (%d, %d), got %q", c[0], c[1], got)
		}
	}
	// Nothing leaked into the grid
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if b.Get(x, y) != Blank {
				t.Errorf("Expected grid untouched at (%d, %d)", x, y)
			}
		}
	}
}

func TestSetNormalizesRunes(t *testing.T) {
	b := NewBuffer(3, 1)
	b.Set(0, 0, 0)
	if b.Get(0, 0) != Blank {
		t.Errorf("Expected zero rune stored as blank, got %q", b.Get(0, 0))
	}
	b.Set(1, 0, '世') // double-width, would desync the grid
	if b.Get(1, 0) != Blank {
		t.Errorf("Expected wide rune stored as blank, got %q", b.Get(1, 0))
	}
	b.Set(2, 0, 'é')
	if b.Get(2, 0) != 'é' {
		t.Errorf("Expected single-width rune kept, got %q", b.Get(2, 0))
	}
}

func TestClear(t *testing.T) {
	b := NewBuffer(6, 4)
	b.Set(2, 2, 'x')
	b.Clear('.')
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if b.Get(x, y) != '.' {
				t.Errorf("Expected '.' at (%d, %d), got %q", x, y, b.Get(x, y))
			}
		}
	}
}

func TestCopyFromOverlap(t *testing.T) {
	dst := NewBuffer(4, 4)
	dst.Clear('d')
	src := NewBuffer(2, 6)
	src.Clear('s')

	dst.CopyFrom(src)

	// Overlap is [0,2)x[0,4): copied; rest untouched
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := 'd'
			if x < 2 {
				want = 's'
			}
			if got := dst.Get(x, y); got != want {
				t.Errorf("Expected %q at (%d, %d), got %q", want, x, y, got)
			}
		}
	}
}

func TestString(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Set(0, 0, 'a')
	b.Set(2, 1, 'b')
	want := "a  \n  b"
	if got := b.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFromString(t *testing.T) {
	b := FromString("ab\ncdef\n.")
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("Expected 4x3, got %dx%d", b.Width(), b.Height())
	}
	if b.Get(0, 0) != 'a' || b.Get(3, 1) != 'f' || b.Get(0, 2) != '.' {
		t.Errorf("Expected content preserved, got %q", b.String())
	}
	// Short lines padded with blanks
	if b.Get(2, 0) != Blank || b.Get(3, 2) != Blank {
		t.Errorf("Expected blank padding, got %q", b.String())
	}
}
