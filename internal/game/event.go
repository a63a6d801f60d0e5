package game

// BallEvent classifies the outcome of a single ball update
type BallEvent int

const (
	EventNone BallEvent = iota
	EventWallBounce
	EventPaddleBounce
	EventLeftGoal  // ball left the board at the left edge, right player scores
	EventRightGoal // ball left the board at the right edge, left player scores
)

// String returns a readable event name for logging
func (e BallEvent) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleBounce:
		return "paddle-bounce"
	case EventLeftGoal:
		return "left-goal"
	case EventRightGoal:
		return "right-goal"
	default:
		return "unknown"
	}
}
