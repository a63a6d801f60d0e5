package game

import "testing"

func TestBoard_Snapshot(t *testing.T) {
	b := NewBoard()

	snap := b.Snapshot()

	expected := Snapshot{
		Width:  BoardWidth,
		Height: BoardHeight,
		Left:   PaddleState{X: 2, Y: 9, Height: PaddleHeight},
		Right:  PaddleState{X: 77, Y: 9, Height: PaddleHeight},
		Ball:   BallState{X: 40, Y: 12},
	}
	if snap != expected {
		t.Errorf("expected %+v, got %+v", expected, snap)
	}
}

func TestBoard_SnapshotUnchangedOnGatedTick(t *testing.T) {
	b := NewBoard()
	b.Ball.DY = 0 // Straight ball, so frame 1 is gated

	before := b.Snapshot()
	b.UpdateBall()
	after := b.Snapshot()

	if before != after {
		t.Errorf("expected identical snapshots across a gated tick, got %+v then %+v", before, after)
	}
}

func TestBoard_SnapshotChangesWhenBallMoves(t *testing.T) {
	b := NewBoard()

	before := b.Snapshot()
	b.UpdateBall() // Frame 1 moves a diagonal ball
	after := b.Snapshot()

	if before == after {
		t.Error("expected snapshot to change when the ball moves")
	}
	if after.Ball.X != 41 || after.Ball.Y != 11 {
		t.Errorf("expected snapshot ball at (41,11), got (%d,%d)", after.Ball.X, after.Ball.Y)
	}
}

func TestBoard_SnapshotChangesWhenPaddleMoves(t *testing.T) {
	b := NewBoard()

	before := b.Snapshot()
	b.MoveLeftPaddleUp()
	after := b.Snapshot()

	if before == after {
		t.Error("expected snapshot to change when a paddle moves")
	}
	if after.Left.Y != 8 {
		t.Errorf("expected snapshot left paddle at 8, got %d", after.Left.Y)
	}
}

func TestBoard_SnapshotIgnoresFrameCounter(t *testing.T) {
	a := NewBoard()
	b := NewBoard()
	b.Frame = 57

	if a.Snapshot() != b.Snapshot() {
		t.Error("expected snapshots to compare equal regardless of the frame counter")
	}
}
