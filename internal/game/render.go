package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// Minimum terminal size the game renders at.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// hudRows is the number of rows above the playfield.
const hudRows = 2

// brickColors cycles per layout row.
var brickColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// Render draws the current scene into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	switch g.scene {
	case SceneMainMenu:
		g.renderMenu(dst)
	case ScenePlaying:
		g.renderPlaying(dst)
	case SceneWin:
		g.renderEnd(dst, "YOU WIN!", core.ColorBrightYellow)
	case SceneGameOver:
		g.renderEnd(dst, "GAME OVER", core.ColorBrightRed)
	}
}

// renderMenu draws the title, name entry box and prompts.
func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()
	w := dst.Width()

	dst.DrawTextCenteredColored(h/5, "B R I C K   B R E A K E R", core.ColorBrightCyan)
	dst.DrawTextCentered(h/5+2, "Press Enter to Start")
	dst.DrawTextCentered(h/5+4, "Enter Your Name:")

	boxW := g.cfg.Gameplay.MaxNameLength + 4
	box := core.NewRect((w-boxW)/2, h/5+5, boxW, 3)
	dst.DrawBox(box, core.ColorWhite)
	name := g.session.PlayerName
	dst.DrawText(box.X+2, box.Y+1, name)
	// Cursor
	if g.tick/30%2 == 0 && utf8.RuneCountInString(name) < g.cfg.Gameplay.MaxNameLength {
		dst.Set(box.X+2+utf8.RuneCountInString(name), box.Y+1, '_')
	}

	if name == "" {
		dst.DrawTextCenteredColored(box.Bottom()+1, "Please enter your name!", core.ColorRed)
	}

	dst.DrawTextCenteredColored(h-3, fmt.Sprintf("High Score: %d", g.session.HighScore), core.ColorYellow)
	dst.DrawTextCenteredColored(h-1, "Press Esc to Quit", core.ColorGray)
}

// renderPlaying draws the HUD, bricks, paddle and ball.
func (g *Game) renderPlaying(dst *core.Screen) {
	g.renderHUD(dst)

	field := g.cfg.Field
	cellsW := dst.Width()
	cellsH := dst.Height() - hudRows
	toScreen := func(r core.Rect) core.Rect {
		p := r.Project(field.Width, field.Height, cellsW, cellsH)
		p.Y += hudRows
		return p
	}

	for _, brick := range g.bricks {
		r := toScreen(brick.Rect())
		// Keep a one-cell gap so neighbours stay distinguishable
		if r.W > 1 {
			r.W--
		}
		dst.DrawRect(r, BrickChar, brickColors[brick.Row%len(brickColors)])
	}

	dst.DrawRect(toScreen(g.paddle.Rect()), PaddleChar, core.ColorBrightCyan)

	ball := toScreen(g.ball.Rect())
	if ball.Y < dst.Height() {
		dst.SetColored(ball.X+ball.W/2, ball.Y+ball.H/2, BallChar, core.ColorWhite)
	}

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws score, lives, level description and high score.
func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()

	left := fmt.Sprintf("Score: %d  Lives: %d", g.session.Score, g.session.Lives)
	dst.DrawText(1, 0, left)

	desc := g.levels[g.session.Level].Description
	dst.DrawTextCenteredColored(0, desc, core.ColorBrightCyan)

	right := fmt.Sprintf("High Score: %d", g.session.HighScore)
	dst.DrawTextColored(w-utf8.RuneCountInString(right)-1, 0, right, core.ColorYellow)

	dst.DrawHLine(0, 1, w, '─', core.ColorGray)
}

// renderEnd draws the Win and GameOver screens.
func (g *Game) renderEnd(dst *core.Screen, title string, color core.Color) {
	h := dst.Height()

	dst.DrawTextCenteredColored(h/3, title, color)
	dst.DrawTextCentered(h/3+2, fmt.Sprintf("Score: %d   High Score: %d", g.session.Score, g.session.HighScore))
	dst.DrawTextCentered(h/2+1, "Press Enter to Retry")
	dst.DrawTextCentered(h/2+3, "Press Q to Quit")
}

// drawCenteredBox draws a centered message box over the playfield.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
