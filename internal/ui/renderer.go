package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/asyed94/pong-term/internal/game"
)

// Renderer draws the fixed-size board centered in the terminal
type Renderer struct {
	screen *Screen
	style  RenderStyle
}

// NewRenderer creates a renderer drawing with the given glyph set
func NewRenderer(screen *Screen, style RenderStyle) *Renderer {
	return &Renderer{screen: screen, style: style}
}

// RenderStart displays the initial board with the controls hint
func (r *Renderer) RenderStart(snap game.Snapshot) {
	r.screen.Clear()

	if r.drawBoard(snap) {
		ox, oy := r.origin(snap)
		hint := "W/S: Left | Up/Down: Right | Space: Pause | Enter: Start"
		if r.style.Unicode {
			hint = "W/S: Left | ↑/↓: Right | Space: Pause | Enter: Start"
		}
		hintX := ox + (snap.Width-runeLen(hint))/2
		r.screen.DrawText(hintX, oy+snap.Height-2, hint, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}

	r.screen.Show()
}

// RenderGame displays the board with the scoreboard on the top border
func (r *Renderer) RenderGame(snap game.Snapshot, leftScore, rightScore int) {
	r.screen.Clear()

	if r.drawBoard(snap) {
		r.drawScoreboard(snap, leftScore, rightScore)
	}

	r.screen.Show()
}

// RenderPause displays the board under the pause menu
func (r *Renderer) RenderPause(snap game.Snapshot, leftScore, rightScore int) {
	r.screen.Clear()

	if r.drawBoard(snap) {
		r.drawScoreboard(snap, leftScore, rightScore)
		r.drawPauseMenu(snap)
	}

	r.screen.Show()
}

// drawBoard draws the border, paddles, and ball. It reports false when
// the terminal cannot fit the board, after drawing a resize prompt.
func (r *Renderer) drawBoard(snap game.Snapshot) bool {
	screenW, screenH := r.screen.Size()
	if screenW < snap.Width || screenH < snap.Height {
		r.drawTooSmall(screenW, screenH, snap)
		return false
	}
	ox, oy := r.origin(snap)

	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	// Border
	r.screen.SetCell(ox, oy, borderStyle, r.style.CornerTopLeft)
	r.screen.SetCell(ox+snap.Width-1, oy, borderStyle, r.style.CornerTopRight)
	r.screen.SetCell(ox, oy+snap.Height-1, borderStyle, r.style.CornerBottomLeft)
	r.screen.SetCell(ox+snap.Width-1, oy+snap.Height-1, borderStyle, r.style.CornerBottomRight)
	for x := 1; x < snap.Width-1; x++ {
		r.screen.SetCell(ox+x, oy, borderStyle, r.style.BorderHorizontal)
		r.screen.SetCell(ox+x, oy+snap.Height-1, borderStyle, r.style.BorderHorizontal)
	}
	for y := 1; y < snap.Height-1; y++ {
		r.screen.SetCell(ox, oy+y, borderStyle, r.style.BorderVertical)
		r.screen.SetCell(ox+snap.Width-1, oy+y, borderStyle, r.style.BorderVertical)
	}

	// Paddles
	r.drawPaddle(snap, snap.Left, tcell.StyleDefault.Foreground(tcell.ColorRed), ox, oy)
	r.drawPaddle(snap, snap.Right, tcell.StyleDefault.Foreground(tcell.ColorBlue), ox, oy)

	// Ball, drawn only while inside the border
	if snap.Ball.X > 0 && snap.Ball.X < snap.Width-1 && snap.Ball.Y > 0 && snap.Ball.Y < snap.Height-1 {
		r.screen.SetCell(ox+snap.Ball.X, oy+snap.Ball.Y, tcell.StyleDefault.Foreground(tcell.ColorWhite), r.style.Ball)
	}

	return true
}

// drawPaddle draws a paddle column clipped to the board interior
func (r *Renderer) drawPaddle(snap game.Snapshot, p game.PaddleState, style tcell.Style, ox, oy int) {
	top := p.Y
	if top < 1 {
		top = 1
	}
	bottom := p.Y + p.Height - 1
	if bottom > snap.Height-2 {
		bottom = snap.Height - 2
	}
	r.screen.DrawVerticalLine(ox+p.X, oy+top, oy+bottom, style, r.style.Paddle)
}

// drawScoreboard draws the score centered on the top border row
func (r *Renderer) drawScoreboard(snap game.Snapshot, leftScore, rightScore int) {
	ox, oy := r.origin(snap)

	leftLabel := fmt.Sprintf("LEFT %d", leftScore)
	rightLabel := fmt.Sprintf("%d RIGHT", rightScore)
	total := len(leftLabel) + len(rightLabel) + 7 // brackets and separator
	x := ox + (snap.Width-total)/2

	frameStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	leftStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	rightStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)

	r.screen.DrawText(x, oy, "[ ", frameStyle)
	r.screen.DrawText(x+2, oy, leftLabel, leftStyle)
	r.screen.DrawText(x+2+len(leftLabel), oy, " - ", frameStyle)
	r.screen.DrawText(x+5+len(leftLabel), oy, rightLabel, rightStyle)
	r.screen.DrawText(x+5+len(leftLabel)+len(rightLabel), oy, " ]", frameStyle)
}

// drawPauseMenu draws the pause overlay centered on the board
func (r *Renderer) drawPauseMenu(snap game.Snapshot) {
	lines := r.pauseMenuLines()

	innerW := 0
	for _, line := range lines {
		if n := runeLen(line); n > innerW {
			innerW = n
		}
	}
	menuW := innerW + 6 // border plus two columns of padding per side
	menuH := len(lines) + 2

	ox, oy := r.origin(snap)
	mx := ox + (snap.Width-menuW)/2
	my := oy + (snap.Height-menuH)/2

	frameStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	fillStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)

	top := string(r.style.CornerTopLeft) + strings.Repeat(string(r.style.BorderHorizontal), menuW-2) + string(r.style.CornerTopRight)
	bottom := string(r.style.CornerBottomLeft) + strings.Repeat(string(r.style.BorderHorizontal), menuW-2) + string(r.style.CornerBottomRight)
	r.screen.DrawText(mx, my, top, frameStyle)
	r.screen.DrawText(mx, my+menuH-1, bottom, frameStyle)

	for i, line := range lines {
		y := my + 1 + i

		r.screen.SetCell(mx, y, frameStyle, r.style.BorderVertical)
		r.screen.SetCell(mx+menuW-1, y, frameStyle, r.style.BorderVertical)
		for x := mx + 1; x < mx+menuW-1; x++ {
			r.screen.SetCell(x, y, fillStyle, ' ')
		}

		style := fillStyle.Foreground(tcell.ColorWhite)
		x := mx + 3
		switch i {
		case 0: // Title, centered
			style = fillStyle.Foreground(tcell.ColorYellow).Bold(true)
			x = mx + (menuW-runeLen(line))/2
		case len(lines) - 1: // Resume hint, centered
			style = fillStyle.Foreground(tcell.ColorGreen)
			x = mx + (menuW-runeLen(line))/2
		}
		r.screen.DrawText(x, y, line, style)
	}
}

// pauseMenuLines returns the menu text, with key labels matching the
// glyph set so ASCII terminals never see arrow runes.
func (r *Renderer) pauseMenuLines() []string {
	rightKeys := "Up/Down - Move right paddle"
	if r.style.Unicode {
		rightKeys = "↑/↓     - Move right paddle"
	}
	return []string{
		"GAME PAUSED",
		"",
		"Controls:",
		"  W/S     - Move left paddle",
		"  " + rightKeys,
		"  Space   - Pause/Resume game",
		"  Q       - Quit the game",
		"",
		"Game Info:",
		fmt.Sprintf("  FPS: %d", game.TickRate),
		fmt.Sprintf("  Board: %dx%d", game.BoardWidth, game.BoardHeight),
		"",
		"Press SPACE to resume",
	}
}

// drawTooSmall prompts for a bigger terminal
func (r *Renderer) drawTooSmall(screenW, screenH int, snap game.Snapshot) {
	msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", snap.Width, snap.Height, screenW, screenH)
	hint := "Resize the window or press Q to quit"

	msgX := (screenW - len(msg)) / 2
	if msgX < 0 {
		msgX = 0
	}
	hintX := (screenW - len(hint)) / 2
	if hintX < 0 {
		hintX = 0
	}

	r.screen.DrawText(msgX, screenH/2, msg, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	r.screen.DrawText(hintX, screenH/2+1, hint, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// origin returns the top-left screen cell of the centered board
func (r *Renderer) origin(snap game.Snapshot) (int, int) {
	screenW, screenH := r.screen.Size()
	return (screenW - snap.Width) / 2, (screenH - snap.Height) / 2
}

// runeLen is the display width of a string of single-width runes
func runeLen(s string) int {
	return len([]rune(s))
}
