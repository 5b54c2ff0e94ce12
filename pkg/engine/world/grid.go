package world

// View is read-only access to a finished grid. Painters and post-processors
// receive a View so they cannot change walkability.
type View interface {
	Width() int
	Height() int
	InBounds(x, y int) bool
	IsWalkable(x, y int) bool
	InAnyRoom(x, y int) bool
	Rooms() []Rect
	RoomCenters() []Point
	StartCell() Point
}

// Grid is the occupancy model of one generated dungeon: a walkable flag per
// cell plus the rooms placed on it, in placement order. Room 0 is the start room.
type Grid struct {
	width    int
	height   int
	walkable [][]bool // indexed [x][y]

	rooms     []Rect
	centers   []Point
	startCell Point
}

// NewGrid creates a grid with every cell non-walkable
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	walkable := make([][]bool, width)
	for x := range walkable {
		walkable[x] = make([]bool, height)
	}

	return &Grid{
		width:    width,
		height:   height,
		walkable: walkable,
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// IsWalkable returns false for out of bounds positions
func (g *Grid) IsWalkable(x, y int) bool {
	return g.InBounds(x, y) && g.walkable[x][y]
}

// CarveRoom marks every in-bounds cell of r as walkable
func (g *Grid) CarveRoom(r Rect) {
	for x := r.XMin(); x < r.XMax(); x++ {
		for y := r.YMin(); y < r.YMax(); y++ {
			if g.InBounds(x, y) {
				g.walkable[x][y] = true
			}
		}
	}
}

// CarveCell marks a square of side width centred on (x, y) as walkable.
// A width of 1 carves the single cell; for even widths the extra column and
// row fall on the low side. Cells outside the grid are skipped.
func (g *Grid) CarveCell(x, y, width int) {
	if width < 1 {
		width = 1
	}
	lo := -(width / 2)
	hi := lo + width - 1
	for dx := lo; dx <= hi; dx++ {
		for dy := lo; dy <= hi; dy++ {
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) {
				g.walkable[nx][ny] = true
			}
		}
	}
}

// AddRoom carves r and records it with its center. The first room added
// becomes the start room and its center the start cell.
func (g *Grid) AddRoom(r Rect) Point {
	g.CarveRoom(r)
	center := r.Center()
	if len(g.rooms) == 0 {
		g.startCell = center
	}
	g.rooms = append(g.rooms, r)
	g.centers = append(g.centers, center)
	return center
}

// RoomCount returns how many rooms have been placed
func (g *Grid) RoomCount() int {
	return len(g.rooms)
}

// Rooms returns a copy of the placed rooms in placement order
func (g *Grid) Rooms() []Rect {
	out := make([]Rect, len(g.rooms))
	copy(out, g.rooms)
	return out
}

// RoomCenters returns a copy of the room centers, indexed like Rooms
func (g *Grid) RoomCenters() []Point {
	out := make([]Point, len(g.centers))
	copy(out, g.centers)
	return out
}

// StartCell returns the center of the start room
func (g *Grid) StartCell() Point {
	return g.startCell
}

// InAnyRoom reports whether (x, y) lies inside a placed room rectangle
func (g *Grid) InAnyRoom(x, y int) bool {
	p := Point{X: x, Y: y}
	for _, r := range g.rooms {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Walkable returns a copy of the occupancy matrix, indexed [x][y]
func (g *Grid) Walkable() [][]bool {
	out := make([][]bool, g.width)
	for x := range g.walkable {
		out[x] = make([]bool, g.height)
		copy(out[x], g.walkable[x])
	}
	return out
}

// ForEachCell iterates over all cells column by column, calling fn for each
func (g *Grid) ForEachCell(fn func(x, y int, walkable bool)) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			fn(x, y, g.walkable[x][y])
		}
	}
}

// readOnly hides the mutating methods of a Grid behind the View interface
type readOnly struct {
	g *Grid
}

// View returns a read-only view of the grid that cannot be asserted back to *Grid
func (g *Grid) View() View {
	return readOnly{g: g}
}

func (v readOnly) Width() int               { return v.g.Width() }
func (v readOnly) Height() int              { return v.g.Height() }
func (v readOnly) InBounds(x, y int) bool   { return v.g.InBounds(x, y) }
func (v readOnly) IsWalkable(x, y int) bool { return v.g.IsWalkable(x, y) }
func (v readOnly) InAnyRoom(x, y int) bool  { return v.g.InAnyRoom(x, y) }
func (v readOnly) Rooms() []Rect            { return v.g.Rooms() }
func (v readOnly) RoomCenters() []Point     { return v.g.RoomCenters() }
func (v readOnly) StartCell() Point         { return v.g.StartCell() }
