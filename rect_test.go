package vgcanvas

import "testing"

func TestRectEmpty(t *testing.T) {
	if (Rect{W: 1, H: 1}).Empty() {
		t.Error("1x1 rect should not be empty")
	}
	if !(Rect{}).Empty() {
		t.Error("zero rect should be empty")
	}
	if !(Rect{W: -1, H: 5}).Empty() {
		t.Error("negative width rect should be empty")
	}
	if !(Rect{W: 5, H: 0}).Empty() {
		t.Error("zero height rect should be empty")
	}
}

func TestRectIntOuter(t *testing.T) {
	tests := []struct {
		in         Rect
		x, y, w, h int
	}{
		{Rect{X: 0, Y: 0, W: 4, H: 4}, 0, 0, 4, 4},
		{Rect{X: 1.2, Y: 2.7, W: 3.1, H: 0.4}, 1, 2, 4, 2},
		{Rect{X: -0.5, Y: -0.5, W: 1, H: 1}, -1, -1, 2, 2},
		{Rect{X: 0.5, Y: 0.5, W: 0.25, H: 0.25}, 0, 0, 1, 1},
	}
	for _, tt := range tests {
		x, y, w, h := tt.in.IntOuter()
		if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
			t.Errorf("IntOuter(%+v) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
				tt.in, x, y, w, h, tt.x, tt.y, tt.w, tt.h)
		}
	}
}
