package core

import "testing"

func TestRectCenterIn(t *testing.T) {
	r := NewRect(0, 0, 40, 12).CenterIn(30, 5)
	if r != (Rect{X: 5, Y: 3, W: 30, H: 5}) {
		t.Errorf("CenterIn = %+v", r)
	}
	if r.Right() != 35 || r.Bottom() != 8 {
		t.Errorf("Right=%d Bottom=%d", r.Right(), r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-0.5, 0},
		{0.25, 0.25},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := ClampF(tt.v, 0, 1); got != tt.want {
			t.Errorf("ClampF(%g) = %g, want %g", tt.v, got, tt.want)
		}
	}
}
