package animation

import (
	"testing"

	"github.com/opd-ai/go-gamekit/pkg/geom"
)

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		sheetW        int
		sheetH        int
		tileW         int
		tileH         int
		wantErr       bool
		expectedCount int
	}{
		{"exact_fit", 64, 32, 16, 16, false, 8},
		{"partial_tiles_discarded", 70, 40, 16, 16, false, 8},
		{"single_tile", 16, 16, 16, 16, false, 1},
		{"zero_tile_size", 64, 32, 0, 16, true, 0},
		{"negative_sheet", -64, 32, 16, 16, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewTileGrid(tt.sheetW, tt.sheetH, tt.tileW, tt.tileH)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewTileGrid() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTileGrid() unexpected error: %v", err)
			}
			if grid.TileCount() != tt.expectedCount {
				t.Errorf("TileCount() = %d, expected %d", grid.TileCount(), tt.expectedCount)
			}
		})
	}
}

func TestTileGrid_TileRect(t *testing.T) {
	grid, err := NewTileGrid(64, 32, 16, 16) // 4 columns, 2 rows
	if err != nil {
		t.Fatalf("NewTileGrid() unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		index    int
		expected geom.Rectangle
	}{
		{"first", 0, geom.RectFromPosSize(0, 0, 16, 16)},
		{"end_of_first_row", 3, geom.RectFromPosSize(48, 0, 16, 16)},
		{"wraps_to_second_row", 4, geom.RectFromPosSize(0, 16, 16, 16)},
		{"last", 7, geom.RectFromPosSize(48, 16, 16, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect, err := grid.TileRect(tt.index)
			if err != nil {
				t.Fatalf("TileRect(%d) unexpected error: %v", tt.index, err)
			}
			if !rect.Position().Equal(tt.expected.Position()) ||
				rect.Width() != tt.expected.Width() || rect.Height() != tt.expected.Height() {
				t.Errorf("TileRect(%d) = %v, expected %v", tt.index, rect, tt.expected)
			}
		})
	}

	t.Run("out_of_range", func(t *testing.T) {
		if _, err := grid.TileRect(8); err == nil {
			t.Error("TileRect(8) expected error")
		}
		if _, err := grid.TileRect(-1); err == nil {
			t.Error("TileRect(-1) expected error")
		}
	})
}

func TestTileGrid_Resize(t *testing.T) {
	grid, err := NewTileGrid(64, 32, 16, 16)
	if err != nil {
		t.Fatalf("NewTileGrid() unexpected error: %v", err)
	}

	if err := grid.Resize(32, 32); err != nil {
		t.Fatalf("Resize() unexpected error: %v", err)
	}

	// Layout keeps its column count: index arithmetic is unchanged,
	// only the rectangles scale.
	if grid.Columns() != 4 || grid.TileCount() != 8 {
		t.Errorf("Resize() changed layout: %d columns, %d tiles", grid.Columns(), grid.TileCount())
	}

	rect, err := grid.TileRect(5)
	if err != nil {
		t.Fatalf("TileRect() unexpected error: %v", err)
	}
	if !rect.Position().Equal(geom.Vec2(32, 32)) || rect.Width() != 32 {
		t.Errorf("TileRect(5) after resize = %v", rect)
	}

	sx, sy := grid.Scale()
	if sx != 2 || sy != 2 {
		t.Errorf("Scale() = %v, %v, expected 2, 2", sx, sy)
	}

	if err := grid.Resize(0, 10); err == nil {
		t.Error("Resize() expected error for zero tile width")
	}
}
