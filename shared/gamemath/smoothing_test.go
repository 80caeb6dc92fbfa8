package gamemath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestSmooth(t *testing.T) {
	tests := []struct {
		name         string
		velX, velY   float64
		dx, dy       float64
		speed, ease  float64
		wantX, wantY float64
	}{
		{"right from rest", 0, 0, 10, 0, 5, 0.5, 2.5, 0},
		{"down from rest", 0, 0, 0, 3, 5, 0.5, 0, 2.5},
		{"left keeps previous", 1, 1, -4, 0, 5, 0.5, -2, 0.5},
		{"touch ease", 0, 0, 0, -7, 5, 0.05, 0, -0.25},
		{"zero delta pushes right", 0, 0, 0, 0, 5, 0.5, 2.5, 0},
		{"diagonal", 0, 0, 1, 1, 5, 1, 5 / math.Sqrt2, 5 / math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := Smooth(tt.velX, tt.velY, tt.dx, tt.dy, tt.speed, tt.ease)
			if math.Abs(gotX-tt.wantX) > epsilon || math.Abs(gotY-tt.wantY) > epsilon {
				t.Errorf("Smooth() = (%v, %v), want (%v, %v)", gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSmoothIgnoresDistance(t *testing.T) {
	nearX, nearY := Smooth(0, 0, 1, 2, 5, 0.5)
	farX, farY := Smooth(0, 0, 100, 200, 5, 0.5)
	if math.Abs(nearX-farX) > epsilon || math.Abs(nearY-farY) > epsilon {
		t.Errorf("distance changed result: near (%v, %v), far (%v, %v)", nearX, nearY, farX, farY)
	}
}

func TestSmoothConverges(t *testing.T) {
	// Repeated pushes in one direction settle at speed*ease/(1-ease).
	var vx, vy float64
	for i := 0; i < 200; i++ {
		vx, vy = Smooth(vx, vy, 1, 0, 5, 0.5)
	}
	if math.Abs(vx-5) > 1e-6 || math.Abs(vy) > epsilon {
		t.Errorf("steady state = (%v, %v), want (5, 0)", vx, vy)
	}
}

func TestFloorPoint(t *testing.T) {
	x, y := FloorPoint(12.9, -0.5)
	if x != 12 || y != -1 {
		t.Errorf("FloorPoint() = (%v, %v), want (12, -1)", x, y)
	}
}

func TestPointInRect(t *testing.T) {
	tests := []struct {
		px, py float64
		want   bool
	}{
		{110, 110, true},
		{100, 100, true},
		{150, 150, true},
		{99, 120, false},
		{120, 151, false},
	}
	for _, tt := range tests {
		if got := PointInRect(tt.px, tt.py, 100, 100, 50, 50); got != tt.want {
			t.Errorf("PointInRect(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
		}
	}
}
