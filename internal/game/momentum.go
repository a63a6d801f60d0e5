package game

// MaxMomentum is how many ticks of movement a single key press is worth.
// Higher values keep paddles gliding longer between key repeats.
const MaxMomentum = 5

// Direction identifies one of the four paddle movement channels
type Direction int

const (
	DirLeftUp Direction = iota
	DirLeftDown
	DirRightUp
	DirRightDown
)

// Intents holds the movement flags produced by one momentum read
type Intents struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
}

// Momentum smooths raw key presses into continuous movement. Each
// direction holds a counter that a press fills and every tick drains,
// so paddle motion outlasts the gaps in terminal key repeat.
type Momentum struct {
	leftUp    int
	leftDown  int
	rightUp   int
	rightDown int
}

// NewMomentum creates an empty tracker with no active directions
func NewMomentum() *Momentum {
	return &Momentum{}
}

// Press charges a direction to full momentum and cancels its opposite,
// so up and down can never be active together on one side.
func (m *Momentum) Press(dir Direction) {
	switch dir {
	case DirLeftUp:
		m.leftUp = MaxMomentum
		m.leftDown = 0
	case DirLeftDown:
		m.leftDown = MaxMomentum
		m.leftUp = 0
	case DirRightUp:
		m.rightUp = MaxMomentum
		m.rightDown = 0
	case DirRightDown:
		m.rightDown = MaxMomentum
		m.rightUp = 0
	}
}

// Decay reports which directions are active, then drains every counter
// by one, stopping at zero. A fresh press stays active for exactly
// MaxMomentum consecutive reads.
func (m *Momentum) Decay() Intents {
	in := Intents{
		LeftUp:    m.leftUp > 0,
		LeftDown:  m.leftDown > 0,
		RightUp:   m.rightUp > 0,
		RightDown: m.rightDown > 0,
	}

	if m.leftUp > 0 {
		m.leftUp--
	}
	if m.leftDown > 0 {
		m.leftDown--
	}
	if m.rightUp > 0 {
		m.rightUp--
	}
	if m.rightDown > 0 {
		m.rightDown--
	}

	return in
}

// Reset clears all stored momentum
func (m *Momentum) Reset() {
	*m = Momentum{}
}
