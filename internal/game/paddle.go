package game

// PaddleHeight is the fixed height of both paddles in rows
const PaddleHeight = 5

// Paddle is a vertical bat at a fixed column, addressed by its top row
type Paddle struct {
	X      int
	Y      int
	Height int
}

// MoveUp shifts the paddle one row up, stopping against the top border.
// Calls at the limit are no-ops.
func (p *Paddle) MoveUp() {
	if p.Y > 1 {
		p.Y--
	}
}

// MoveDown shifts the paddle one row down, stopping against the bottom
// border. Calls at the limit are no-ops.
func (p *Paddle) MoveDown(boardHeight int) {
	if p.Y < boardHeight-p.Height-1 {
		p.Y++
	}
}

// ContainsRow reports whether the given row falls within the paddle body
func (p *Paddle) ContainsRow(y int) bool {
	return y >= p.Y && y < p.Y+p.Height
}
