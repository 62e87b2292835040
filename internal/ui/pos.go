package ui

import "fmt"

// Pos is a cell position on the terminal, X growing right and Y growing
// down.
type Pos struct{ X, Y int }

// Get splits the position into its coordinates, matching the (x, y)
// argument pairs that tcell APIs take.
func (p Pos) Get() (x, y int) {
	return p.X, p.Y
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
