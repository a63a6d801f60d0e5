package game

// PaddleState is a paddle's drawable position
type PaddleState struct {
	X      int
	Y      int
	Height int
}

// BallState is the ball's drawable position
type BallState struct {
	X int
	Y int
}

// Snapshot is a view of everything the renderer draws. It is comparable
// so the loop can detect visible change with ==; the frame counter and
// velocities are not part of the drawable state.
type Snapshot struct {
	Width  int
	Height int
	Left   PaddleState
	Right  PaddleState
	Ball   BallState
}

// Snapshot captures the board's current drawable state
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Width:  b.Width,
		Height: b.Height,
		Left:   PaddleState{X: b.Left.X, Y: b.Left.Y, Height: b.Left.Height},
		Right:  PaddleState{X: b.Right.X, Y: b.Right.Y, Height: b.Right.Height},
		Ball:   BallState{X: b.Ball.X, Y: b.Ball.Y},
	}
}
