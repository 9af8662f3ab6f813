package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)
	red := RGB(255, 0, 0)

	s.SetColored(5, 5, 'X', red)

	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' {
		t.Errorf("Rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != red {
		t.Errorf("Color = %v, expected %v", cell.Color, red)
	}

	// Out of bounds writes are silent, reads return blank cells
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if s.GetCell(0, -1).Color != ColorDefault {
		t.Error("out of bounds GetCell should return default color")
	}
}

func TestScreenClearDropsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '#', RGB(10, 20, 30))

	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, cell = %+v", cell)
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	blue := RGB(0, 0, 255)

	s.DrawTextColored(2, 1, "Hello", blue)

	for i, r := range "Hello" {
		cell := s.GetCell(2+i, 1)
		if cell.Rune != r {
			t.Errorf("expected %q at (%d, 1), got %q", r, 2+i, cell.Rune)
		}
		if cell.Color != blue {
			t.Errorf("expected blue at (%d, 1), got %v", 2+i, cell.Color)
		}
	}

	// Clipped at the right boundary
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(10, 10)
	c := RGB(1, 2, 3)

	s.DrawVLine(3, 2, 4, '█', c)

	for y := 2; y < 6; y++ {
		cell := s.GetCell(3, y)
		if cell.Rune != '█' || cell.Color != c {
			t.Errorf("DrawVLine: cell at (3, %d) = %+v", y, cell)
		}
	}
	if s.Get(3, 6) != ' ' {
		t.Error("DrawVLine should not draw past its length")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("box corners not drawn")
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("box edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("box edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions = %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
}
