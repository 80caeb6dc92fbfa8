package gamemath

import "math"

// Smooth blends the previous velocity with a fixed-length push in the
// direction of the pointer delta. Only the direction of (dx, dy) matters;
// a zero delta pushes along +X since atan2(0, 0) is 0.
func Smooth(velX, velY, dx, dy, speed, ease float64) (float64, float64) {
	theta := math.Atan2(dy, dx)
	pushX := math.Cos(theta) * speed
	pushY := math.Sin(theta) * speed
	return (velX + pushX) * ease, (velY + pushY) * ease
}

// FloorPoint floors both coordinates to whole pixels.
func FloorPoint(x, y float64) (float64, float64) {
	return math.Floor(x), math.Floor(y)
}

// PointInRect reports whether (px, py) lies inside the rectangle, edges included.
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
