package world

// Direction represents one of the eight compass directions
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// CardinalDirections returns the four orthogonal directions
func CardinalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// AllDirections returns all eight directions, cardinals first
func AllDirections() []Direction {
	return []Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case NorthEast:
		return "NorthEast"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass directions
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// Delta returns the x and y offsets for this direction (y grows northwards)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	case NorthEast:
		return 1, 1
	case SouthEast:
		return 1, -1
	case SouthWest:
		return -1, -1
	case NorthWest:
		return -1, 1
	default:
		return 0, 0
	}
}

// Step returns the neighbouring point in direction d
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}
