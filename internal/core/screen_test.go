package core

import (
	"strings"
	"testing"
)

func TestScreenNewAndClear(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, expected 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, expected 5", s.Height())
	}

	// All cells should be spaces
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("Cell (%d, %d) = %q, expected space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Out-of-bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'B')
	s.Set(0, 5, 'C')

	// Out-of-bounds reads return space
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '#', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell color = %d, expected ColorGreen", cell.Color)
	}

	// Plain Set should write in the default color
	s.Set(2, 1, '*')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should use the default color")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "abc")
	if s.Get(2, 1) != 'a' || s.Get(3, 1) != 'b' || s.Get(4, 1) != 'c' {
		t.Error("DrawText did not place characters correctly")
	}

	// Clipped text should not panic
	s.DrawText(8, 1, "long text")
	if s.Get(8, 1) != 'l' || s.Get(9, 1) != 'o' {
		t.Error("DrawText should clip at the right edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	// (11-3)/2 = 4
	if s.Get(4, 1) != 'a' {
		t.Errorf("Centered text should start at x=4, got %q at 4", s.Get(4, 1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize failed: %dx%d", s.Width(), s.Height())
	}

	// Content preserved
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrink
	s.Resize(5, 3)
	if s.Get(2, 2) != 'X' {
		t.Error("Shrink should preserve content within new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() should have 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("Row 0 = %q, expected \"a  \"", lines[0])
	}
	if lines[1] != "  b" {
		t.Errorf("Row 1 = %q, expected \"  b\"", lines[1])
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "test")

	if s.Row(0) != "test" {
		t.Errorf("Row(0) = %q, expected \"test\"", s.Row(0))
	}
	if s.Row(5) != "    " {
		t.Errorf("Out-of-bounds Row should be all spaces, got %q", s.Row(5))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' ||
		s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox corners incorrect")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges incorrect")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 6)

	s.DrawHLine(2, 3, 4, '=')
	for x := 2; x < 6; x++ {
		if s.Get(x, 3) != '=' {
			t.Errorf("DrawHLine missing at x=%d", x)
		}
	}

	s.DrawVLine(7, 1, 3, '|')
	for y := 1; y < 4; y++ {
		if s.Get(7, y) != '|' {
			t.Errorf("DrawVLine missing at y=%d", y)
		}
	}
}
