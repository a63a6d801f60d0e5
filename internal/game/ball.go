package game

// Ball is a cell position with unit velocity components. DX is always
// -1 or 1; DY may also be 0, which means straight horizontal travel.
// All movement and collision rules live on the Board.
type Ball struct {
	X, Y   int
	DX, DY int
}
