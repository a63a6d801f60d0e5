package game

const (
	BoardWidth       = 80 // Fixed board width in columns
	BoardHeight      = 24 // Fixed board height in rows
	TickRate         = 60 // Simulation ticks per second
	BallSpeedDivisor = 2  // Straight ball motion advances every 2nd tick
)

// Board owns the paddles, the ball, and the frame counter, and resolves
// all per-tick physics.
type Board struct {
	Width  int
	Height int
	Left   Paddle
	Right  Paddle
	Ball   Ball
	Frame  int
}

// NewBoard creates the starting position: paddles vertically centered
// and inset from the side borders, ball at the center moving up-right.
func NewBoard() *Board {
	paddleY := (BoardHeight - PaddleHeight) / 2

	return &Board{
		Width:  BoardWidth,
		Height: BoardHeight,
		Left:   Paddle{X: 2, Y: paddleY, Height: PaddleHeight},
		Right:  Paddle{X: BoardWidth - 3, Y: paddleY, Height: PaddleHeight},
		Ball:   Ball{X: BoardWidth / 2, Y: BoardHeight / 2, DX: 1, DY: -1},
	}
}

func (b *Board) MoveLeftPaddleUp() {
	b.Left.MoveUp()
}

func (b *Board) MoveLeftPaddleDown() {
	b.Left.MoveDown(b.Height)
}

func (b *Board) MoveRightPaddleUp() {
	b.Right.MoveUp()
}

func (b *Board) MoveRightPaddleDown() {
	b.Right.MoveDown(b.Height)
}

// UpdateBall advances the simulation by one tick and classifies the
// outcome. Collisions resolve in a fixed order: paddle before wall,
// wall before goal, so a ball reaching a paddle column on a border row
// still bounces off the paddle.
func (b *Board) UpdateBall() BallEvent {
	b.Frame++

	// Pacing gates. Diagonal motion skips every 4th tick; straight
	// motion moves only on every BallSpeedDivisor-th tick.
	if b.Ball.DY != 0 {
		if b.Frame%4 == 3 {
			return EventNone
		}
	} else if b.Frame%BallSpeedDivisor != 0 {
		return EventNone
	}

	// Advance one cell per axis. A step that would leave the board is
	// dropped for that axis only.
	if nx := b.Ball.X + b.Ball.DX; nx >= 0 && nx < b.Width {
		b.Ball.X = nx
	}
	if ny := b.Ball.Y + b.Ball.DY; ny >= 0 && ny < b.Height {
		b.Ball.Y = ny
	}

	if hit := b.paddleAt(b.Ball.X, b.Ball.Y); hit != nil {
		b.Ball.DX = -b.Ball.DX
		b.Ball.DY = bounceDY(b.Ball.Y - hit.Y)
		return EventPaddleBounce
	}

	if (b.Ball.Y <= 1 && b.Ball.DY < 0) || (b.Ball.Y >= b.Height-2 && b.Ball.DY > 0) {
		b.Ball.DY = -b.Ball.DY
		return EventWallBounce
	}

	if b.Ball.X == 0 {
		b.resetBall(-1)
		return EventLeftGoal
	}
	if b.Ball.X >= b.Width-1 {
		b.resetBall(1)
		return EventRightGoal
	}

	return EventNone
}

// paddleAt returns the paddle occupying the given cell, if any
func (b *Board) paddleAt(x, y int) *Paddle {
	if x == b.Left.X && b.Left.ContainsRow(y) {
		return &b.Left
	}
	if x == b.Right.X && b.Right.ContainsRow(y) {
		return &b.Right
	}
	return nil
}

// bounceDY maps where the ball struck the paddle to its new vertical
// velocity: the top two rows deflect upward, the center row sends it
// straight, the bottom rows deflect downward.
func bounceDY(offset int) int {
	switch {
	case offset <= 1:
		return -1
	case offset == 2:
		return 0
	default:
		return 1
	}
}

// resetBall recenters the ball after a goal and restarts the frame
// counter. The serve heads toward the side that just conceded.
func (b *Board) resetBall(dx int) {
	b.Ball = Ball{X: b.Width / 2, Y: b.Height / 2, DX: dx, DY: 0}
	b.Frame = 0
}
