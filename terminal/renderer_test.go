package terminal

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

// testFrame is a minimal Frame backed by a rune grid
type testFrame struct {
	w, h  int
	cells []rune
}

func newTestFrame(w, h int, fill rune) *testFrame {
	f := &testFrame{w: w, h: h, cells: make([]rune, w*h)}
	for i := range f.cells {
		f.cells[i] = fill
	}
	return f
}

func (f *testFrame) Width() int  { return f.w }
func (f *testFrame) Height() int { return f.h }
func (f *testFrame) Get(x, y int) rune {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return ' '
	}
	return f.cells[y*f.w+x]
}
func (f *testFrame) set(x, y int, ch rune) { f.cells[y*f.w+x] = ch }

// emulator replays renderer output against a naive full-grid terminal
type emulator struct {
	w, h  int
	x, y  int
	cells []rune
}

func newEmulator(w, h int) *emulator {
	e := &emulator{w: w, h: h, cells: make([]rune, w*h)}
	for i := range e.cells {
		e.cells[i] = ' '
	}
	return e
}

func (e *emulator) feed(t *testing.T, s string) {
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '\x1b':
			if i+1 >= len(runes) || runes[i+1] != '[' {
				t.Fatalf("Expected CSI after escape at %d", i)
			}
			j := i + 2
			for j < len(runes) && runes[j] != 'H' {
				j++
			}
			if j >= len(runes) {
				t.Fatalf("Expected H terminator in escape sequence")
			}
			params := string(runes[i+2 : j])
			if params == "" {
				e.x, e.y = 0, 0
			} else {
				parts := strings.SplitN(params, ";", 2)
				row, err := strconv.Atoi(parts[0])
				if err != nil {
					t.Fatalf("Expected numeric row, got %q", parts[0])
				}
				col, err := strconv.Atoi(parts[1])
				if err != nil {
					t.Fatalf("Expected numeric col, got %q", parts[1])
				}
				e.x, e.y = col-1, row-1
			}
			i = j
		case ch == '\n':
			e.y++
			e.x = 0
		default:
			if e.x >= 0 && e.x < e.w && e.y >= 0 && e.y < e.h {
				e.cells[e.y*e.w+e.x] = ch
			}
			e.x++
		}
	}
}

func (e *emulator) String() string {
	var sb strings.Builder
	for y := 0; y < e.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < e.w; x++ {
			sb.WriteRune(e.cells[y*e.w+x])
		}
	}
	return sb.String()
}

func frameString(f *testFrame) string {
	var sb strings.Builder
	for y := 0; y < f.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.w; x++ {
			sb.WriteRune(f.Get(x, y))
		}
	}
	return sb.String()
}

func stripEscapes(s string) string {
	var sb strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\x1b' {
			for i < len(runes) && runes[i] != 'H' {
				i++
			}
			continue
		}
		sb.WriteRune(runes[i])
	}
	return sb.String()
}

func TestFirstRenderIsFull(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	f := newTestFrame(3, 2, 'a')

	s, err := r.Render(f)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := "\x1b[H" + "aaa\naaa"
	if s != want {
		t.Errorf("Expected full render %q, got %q", want, s)
	}
	if out.String() != s {
		t.Errorf("Expected returned string to match written output")
	}
}

func TestUnchangedFrameEmitsEmptyDiff(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	f := newTestFrame(4, 3, 'x')

	if _, err := r.Render(f); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	s, err := r.Render(f)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s != "" {
		t.Errorf("Expected empty diff for unchanged frame, got %q", s)
	}
}

func TestSingleCellChange(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	f := newTestFrame(5, 3, 'x')

	if _, err := r.Render(f); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	f.set(2, 1, 'y')
	s, err := r.Render(f)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := stripEscapes(s); got != "y" {
		t.Errorf("Expected stripped diff %q, got %q", "y", got)
	}
	// Cursor position is 1-indexed row;col
	if !strings.Contains(s, "\x1b[2;3H") {
		t.Errorf("Expected cursor position sequence in %q", s)
	}
}

func TestAdjacentChangesCoalesce(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	f := newTestFrame(6, 2, '.')

	if _, err := r.Render(f); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	f.set(1, 0, 'a')
	f.set(2, 0, 'b')
	f.set(3, 0, 'c')
	f.set(1, 1, 'd')
	s, err := r.Render(f)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// One position for the run on row 0, one for row 1
	want := "\x1b[1;2Habc\x1b[2;2Hd"
	if s != want {
		t.Errorf("Expected coalesced diff %q, got %q", want, s)
	}
}

func TestForceRedraw(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	f := newTestFrame(3, 2, 'z')

	if _, err := r.Render(f); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	r.ForceRedraw()
	s, err := r.Render(f)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(s, "\x1b[H") || stripEscapes(s) != "zzz\nzzz" {
		t.Errorf("Expected full redraw after ForceRedraw, got %q", s)
	}
}

func TestReplayReconstructsFrames(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	f := newTestFrame(8, 5, ' ')
	em := newEmulator(8, 5)

	// N successive renders with scattered mutations; replaying the
	// concatenated output must reconstruct the final frame exactly
	steps := []func(){
		func() { f.set(0, 0, 'A'); f.set(7, 4, 'B') },
		func() { f.set(3, 2, 'C'); f.set(4, 2, 'D'); f.set(5, 2, 'E') },
		func() { f.set(0, 0, ' '); f.set(1, 1, 'F') },
		func() { f.set(7, 0, 'G'); f.set(0, 4, 'H'); f.set(3, 2, 'c') },
	}

	for _, step := range steps {
		step()
		s, err := r.Render(f)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		em.feed(t, s)
	}

	if em.String() != frameString(f) {
		t.Errorf("Expected emulator to reconstruct frame\nwant:\n%s\ngot:\n%s", frameString(f), em.String())
	}
}

func TestDimensionChangeForcesFullRender(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	if _, err := r.Render(newTestFrame(3, 2, 'a')); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	s, err := r.Render(newTestFrame(4, 2, 'b'))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(s, "\x1b[H") {
		t.Errorf("Expected full render after dimension change, got %q", s)
	}
}
