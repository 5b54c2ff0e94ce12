package world

// Vec2 is a world-space position
type Vec2 struct {
	X float64
	Y float64
}

// Transform maps grid cells to world space. Offset is added to every cell
// before conversion, and positions refer to the center of a unit cell.
type Transform struct {
	Offset Point
}

// NewTransform returns the transform that centres a width x height grid on the world origin
func NewTransform(width, height int) Transform {
	return Transform{Offset: Point{X: -width / 2, Y: -height / 2}}
}

// WorldCell returns the cell coordinate in world space
func (t Transform) WorldCell(p Point) Point {
	return p.Add(t.Offset)
}

// CellCenter returns the world position of the center of cell p
func (t Transform) CellCenter(p Point) Vec2 {
	w := t.WorldCell(p)
	return Vec2{X: float64(w.X) + 0.5, Y: float64(w.Y) + 0.5}
}
