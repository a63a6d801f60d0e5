package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/asyed94/pong-term/internal/audio"
	"github.com/asyed94/pong-term/internal/config"
	"github.com/asyed94/pong-term/internal/game"
	"github.com/asyed94/pong-term/internal/ui"
)

// State is the loop's lifecycle phase. StateQuit is terminal: no input
// or tick transitions out of it.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateQuit
)

// String returns a readable state name for logging
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// frameInput is the result of draining one tick's worth of events
type frameInput struct {
	pauseEdge bool
	quit      bool
	resized   bool
}

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer

	board    *game.Board
	momentum *game.Momentum
	state    State

	leftScore  int
	rightScore int

	// Render change detection
	lastSnap    game.Snapshot
	lastState   State
	forceRender bool

	// Tracks whether the previous drain window saw a space press
	spaceHeld bool

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration. The
// loop starts paused, so the controls overlay is the first thing the
// player sees after pressing start.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:      cfg,
		board:    game.NewBoard(),
		momentum: game.NewMomentum(),
		state:    StatePaused,
		quit:     make(chan struct{}),
	}
}

// Run is the main entry point for the application. It initializes audio
// and the screen, sets up signal handling, and drives the game until quit.
func (a *App) Run() error {
	// Initialize audio (the game works without sound)
	if !a.cfg.Mute {
		if err := audio.Init(); err != nil {
			log.Printf("audio unavailable, continuing muted: %v", err)
		}
	}

	// Initialize screen
	screen, err := ui.InitScreen()
	if err != nil {
		audio.Close()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, ui.AutoStyle(a.cfg.ForceASCII))

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	// Pump screen events into a channel so the loop can drain them
	// without blocking.
	events := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	a.momentum.Reset()

	if a.waitForStart(events) {
		a.mainLoop(events)
	}

	a.cleanup()
	log.Printf("session over: LEFT %d - %d RIGHT", a.leftScore, a.rightScore)
	return nil
}

// waitForStart shows the static board until Enter is pressed. It
// reports false when the player quit from the start screen.
func (a *App) waitForStart(events <-chan tcell.Event) bool {
	a.renderer.RenderStart(a.board.Snapshot())

	for {
		select {
		case <-a.quit:
			return false
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ui.KeyToAction(ev) {
				case ui.ActionStart:
					return true
				case ui.ActionQuit:
					return false
				}
			case *tcell.EventResize:
				a.renderer.RenderStart(a.board.Snapshot())
			}
		}
	}
}

// mainLoop ticks at the fixed simulation rate until the state reaches
// StateQuit.
func (a *App) mainLoop(events <-chan tcell.Event) {
	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	a.lastSnap = a.board.Snapshot()
	a.lastState = StateRunning // the first paused tick must draw the overlay

	for a.state != StateQuit {
		select {
		case <-a.quit:
			a.state = StateQuit
		case <-ticker.C:
			a.tick(events)
		}
	}
}

// tick runs one input, update, render iteration
func (a *App) tick(events <-chan tcell.Event) {
	a.applyInput(a.pollInput(events))

	if a.state == StateRunning {
		a.handleBallEvent(a.board.UpdateBall())
	}

	a.render()
}

// pollInput drains every pending event without blocking. Movement keys
// charge the momentum tracker directly; space registers as a pause edge
// only when the previous drain window saw no space event, so a held key
// does not re-toggle every tick.
func (a *App) pollInput(events <-chan tcell.Event) frameInput {
	var in frameInput
	spaceSeen := false

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ui.KeyToAction(ev) {
				case ui.ActionLeftUp:
					a.momentum.Press(game.DirLeftUp)
				case ui.ActionLeftDown:
					a.momentum.Press(game.DirLeftDown)
				case ui.ActionRightUp:
					a.momentum.Press(game.DirRightUp)
				case ui.ActionRightDown:
					a.momentum.Press(game.DirRightDown)
				case ui.ActionPause:
					spaceSeen = true
					if !a.spaceHeld {
						in.pauseEdge = true
						a.spaceHeld = true
					}
				case ui.ActionQuit:
					in.quit = true
				}
			case *tcell.EventResize:
				in.resized = true
			}
		default:
			if !spaceSeen {
				a.spaceHeld = false
			}
			return in
		}
	}
}

// applyInput folds one tick's input into the loop state. Quit wins over
// everything, then the pause toggle; paddles move only while running,
// so pausing freezes momentum mid-decay.
func (a *App) applyInput(in frameInput) {
	if in.quit {
		a.state = StateQuit
		return
	}

	if in.pauseEdge {
		switch a.state {
		case StateRunning:
			a.state = StatePaused
		case StatePaused:
			a.state = StateRunning
		}
	}

	if in.resized {
		a.forceRender = true
	}

	if a.state != StateRunning {
		return
	}

	a.applyMoves(a.momentum.Decay())
}

// applyMoves turns movement intents into paddle steps. Opposing intents
// on one side cancel out.
func (a *App) applyMoves(moves game.Intents) {
	if moves.LeftUp && !moves.LeftDown {
		a.board.MoveLeftPaddleUp()
	} else if moves.LeftDown && !moves.LeftUp {
		a.board.MoveLeftPaddleDown()
	}

	if moves.RightUp && !moves.RightDown {
		a.board.MoveRightPaddleUp()
	} else if moves.RightDown && !moves.RightUp {
		a.board.MoveRightPaddleDown()
	}
}

// handleBallEvent feeds the scoreboard and the sound effects. A goal is
// named for the edge the ball left, so the opposite player scores.
func (a *App) handleBallEvent(ev game.BallEvent) {
	switch ev {
	case game.EventPaddleBounce:
		audio.PlayPaddleHit()
	case game.EventWallBounce:
		audio.PlayWallBounce()
	case game.EventLeftGoal:
		a.rightScore++
		audio.PlayScore()
		log.Printf("%v: score is LEFT %d - %d RIGHT", ev, a.leftScore, a.rightScore)
	case game.EventRightGoal:
		a.leftScore++
		audio.PlayScore()
		log.Printf("%v: score is LEFT %d - %d RIGHT", ev, a.leftScore, a.rightScore)
	}
}

// render redraws only when something visible changed: the board state
// moved, the loop state transitioned, or the terminal was resized.
func (a *App) render() {
	switch a.state {
	case StateRunning:
		snap := a.board.Snapshot()
		if snap != a.lastSnap || a.lastState != StateRunning || a.forceRender {
			a.renderer.RenderGame(snap, a.leftScore, a.rightScore)
			a.lastSnap = snap
			a.lastState = StateRunning
			a.forceRender = false
		}
	case StatePaused:
		if a.lastState != StatePaused || a.forceRender {
			a.renderer.RenderPause(a.board.Snapshot(), a.leftScore, a.rightScore)
			a.lastState = StatePaused
			a.forceRender = false
		}
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	// Close audio
	audio.Close()

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
}
