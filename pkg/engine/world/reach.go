package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Reachable returns every walkable cell reachable from start through
// orthogonal steps over walkable cells. An empty set is returned when start
// itself is not walkable.
func Reachable(v View, start Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !v.IsWalkable(start.X, start.Y) {
		return visited
	}

	queue := []Point{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range CardinalDirections() {
			n := current.Step(dir)
			if v.IsWalkable(n.X, n.Y) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// UnreachableRooms returns the indexes of rooms whose center cannot be reached
// from the start cell.
func UnreachableRooms(v View) []int {
	reachable := Reachable(v, v.StartCell())
	var missing []int
	for i, c := range v.RoomCenters() {
		if !reachable.Has(c) {
			missing = append(missing, i)
		}
	}
	return missing
}
