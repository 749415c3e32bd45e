package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetLightsDot(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(0, 0)
	if got := c.Cell(0, 0); got != 0x2800|0x01 {
		t.Errorf("cell = %#x, expected top-left dot set", got)
	}

	c.Set(1, 3) // bottom-right dot of the same cell
	if got := c.Cell(0, 0); got != 0x2800|0x01|0x80 {
		t.Errorf("cell = %#x, expected both dots set", got)
	}
}

func TestCanvasSetMapsSubpixels(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Set(7, 9) // column 3, row 2
	if got := c.Cell(3, 2); got == 0x2800 {
		t.Error("expected a dot in cell (3,2)")
	}
	if got := c.Cell(0, 0); got != 0x2800 {
		t.Errorf("unrelated cell touched: %#x", got)
	}
}

func TestCanvasOutOfRangeIgnored(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if c.Cell(col, row) != 0x2800 {
				t.Fatalf("out-of-range Set modified cell (%d,%d)", col, row)
			}
		}
	}
}

func TestCanvasLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	px, py := c.PixelSize()
	c.Line(0, 0, px-1, py-1)

	if c.Cell(0, 0) == 0x2800 {
		t.Error("line start not drawn")
	}
	if c.Cell(c.Width-1, c.Height-1) == 0x2800 {
		t.Error("line end not drawn")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Line(0, 0, 5, 11)
	c.Clear()
	if strings.ContainsFunc(c.String(), func(r rune) bool {
		return r != 0x2800 && r != '\n'
	}) {
		t.Error("Clear left lit dots behind")
	}
}

func TestCanvasStringShape(t *testing.T) {
	c := NewCanvas(5, 3)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d rows, expected 3", len(lines))
	}
	for _, l := range lines {
		if len([]rune(l)) != 5 {
			t.Errorf("row %q has %d cells, expected 5", l, len([]rune(l)))
		}
	}
}
