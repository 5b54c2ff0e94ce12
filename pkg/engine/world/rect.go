package world

import "math"

// Point is an integer cell coordinate
type Point struct {
	X int
	Y int
}

// DistanceTo returns the Euclidean distance between two cells
func (p Point) DistanceTo(o Point) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns p translated by o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Rect is an axis-aligned rectangle of cells. XMax and YMax are exclusive.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// XMin returns the first column of the rectangle
func (r Rect) XMin() int { return r.X }

// YMin returns the first row of the rectangle
func (r Rect) YMin() int { return r.Y }

// XMax returns one past the last column of the rectangle
func (r Rect) XMax() int { return r.X + r.W }

// YMax returns one past the last row of the rectangle
func (r Rect) YMax() int { return r.Y + r.H }

// Center returns the center cell, rounding toward the top-left
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XMin() && p.X < r.XMax() && p.Y >= r.YMin() && p.Y < r.YMax()
}

// Overlaps reports whether two rectangles share at least one cell
func (r Rect) Overlaps(o Rect) bool {
	return r.XMin() < o.XMax() && r.XMax() > o.XMin() &&
		r.YMin() < o.YMax() && r.YMax() > o.YMin()
}

// Pad returns the rectangle grown by n cells on every side
func (r Rect) Pad(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Within reports whether the rectangle lies fully inside a width x height grid
func (r Rect) Within(width, height int) bool {
	return r.XMin() >= 0 && r.YMin() >= 0 && r.XMax() <= width && r.YMax() <= height
}
