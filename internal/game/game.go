package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// State summarizes the game for the platform layer.
type State struct {
	Scene     Scene
	Score     int
	Lives     int
	Level     int
	HighScore int
	Paused    bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State State
	// Quit is set when the player pressed the quit key of the current screen.
	Quit bool
	// Err carries a persistence failure from this tick. The game has already
	// carried on without the write; the platform only needs to report it.
	Err error
}

// Option configures a Game.
type Option func(*Game)

// WithLevels replaces the built-in level catalog.
func WithLevels(levels []Level) Option {
	return func(g *Game) {
		g.levels = levels
	}
}

// WithSound sets the sound sink. The default is silent.
func WithSound(s Sound) Option {
	return func(g *Game) {
		if s != nil {
			g.sound = s
		}
	}
}

// Game is one player's brick breaker session.
type Game struct {
	cfg    config.Config
	levels []Level
	store  Persistence
	sound  Sound

	rng *rand.Rand

	scene   Scene
	session Session
	paused  bool
	tick    int

	paddle Paddle
	ball   Ball
	bricks []Brick
}

// New creates a game in the main menu. It reads the high score and the saved
// player name from store. A high score that cannot be read is an error; a
// name that cannot be read is treated as empty.
func New(cfg config.Config, store Persistence, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("game: persistence is required")
	}

	g := &Game{
		cfg:    cfg,
		levels: BuiltinLevels(),
		store:  store,
		sound:  silence{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if len(g.levels) == 0 {
		return nil, fmt.Errorf("game: level catalog is empty")
	}
	if err := ValidateLevels(g.levels, cfg); err != nil {
		return nil, err
	}

	high, err := store.LoadHighScore()
	if err != nil {
		return nil, fmt.Errorf("game: cannot load high score: %w", err)
	}
	name, err := store.LoadName()
	if err != nil {
		name = ""
	}
	g.session.HighScore = high
	g.session.PlayerName = truncateName(name, cfg.Gameplay.MaxNameLength)

	g.Reset(core.DefaultConfig())
	return g, nil
}

// Reset returns to the main menu with a fresh RNG. The player name and the
// high score survive.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness

	g.scene = SceneMainMenu
	g.paused = false
	g.tick = 0
	g.session.NewGame(g.cfg.Gameplay.Lives)
	g.resetField()
}

// resetField places a new paddle and ball and builds the current level's bricks.
func (g *Game) resetField() {
	field := g.cfg.Field
	g.paddle = Paddle{
		X: (field.Width - g.cfg.Paddle.Width) / 2,
		Y: field.Height - g.cfg.Paddle.BottomOffset,
		W: g.cfg.Paddle.Width,
		H: g.cfg.Paddle.Height,
	}
	g.ball = Ball{Size: 2 * g.cfg.Ball.Radius}
	g.ball.Reset(field.Width, field.Height, g.cfg.Ball.Speed, g.rng)
	g.bricks = BuildBricks(g.levels[g.session.Level], g.cfg.Bricks)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.tick++

	var res StepResult
	switch g.scene {
	case SceneMainMenu:
		res = g.stepMenu(in)
	case ScenePlaying:
		res = g.stepPlaying(in)
	case SceneWin, SceneGameOver:
		res = g.stepEnd(in)
	}
	res.State = g.State()
	return res
}

// stepMenu handles name entry and the start and quit keys.
func (g *Game) stepMenu(in core.InputFrame) StepResult {
	if in.Has(core.ActionQuit) {
		return StepResult{Quit: true}
	}

	name := g.session.PlayerName
	for _, r := range in.Text {
		if unicode.IsPrint(r) && utf8.RuneCountInString(name) < g.cfg.Gameplay.MaxNameLength {
			name += string(r)
		}
	}
	if in.Has(core.ActionBackspace) && name != "" {
		_, size := utf8.DecodeLastRuneInString(name)
		name = name[:len(name)-size]
	}
	g.session.PlayerName = name

	if !in.Has(core.ActionConfirm) || name == "" {
		return StepResult{}
	}

	var saveErr error
	if err := g.store.SaveName(name); err != nil {
		saveErr = fmt.Errorf("game: cannot save player name: %w", err)
	}
	res := g.startGame()
	res.Err = errors.Join(saveErr, res.Err)
	return res
}

// startGame begins a fresh game at the first level.
func (g *Game) startGame() StepResult {
	g.session.NewGame(g.cfg.Gameplay.Lives)
	g.paused = false
	g.resetField()
	g.scene = ScenePlaying
	// A level without bricks is cleared the moment it is entered.
	return g.advanceClearedLevels()
}

// stepPlaying runs one frame of play: paddle, ball, collisions, life loss and
// level progression.
func (g *Game) stepPlaying(in core.InputFrame) StepResult {
	for _, r := range in.Text {
		if r == 'p' || r == 'P' {
			g.paused = !g.paused
		}
	}
	if g.paused {
		return StepResult{}
	}

	field := g.cfg.Field
	speed := g.cfg.Paddle.Speed
	if in.Has(core.ActionLeft) {
		g.paddle.Move(-speed, field.Width)
	}
	if in.Has(core.ActionRight) {
		g.paddle.Move(speed, field.Width)
	}

	g.ball.Move(field.Width)

	// Paddle: always send the ball back up so it cannot tunnel into the paddle.
	if g.ball.Rect().Intersects(g.paddle.Rect()) {
		g.ball.DY = -core.Abs(g.ball.DY)
	}

	g.hitFirstBrick()

	if g.ball.Y > field.Height {
		return g.loseLife()
	}

	return g.advanceClearedLevels()
}

// hitFirstBrick resolves at most one brick collision per tick, the first in
// layout order.
func (g *Game) hitFirstBrick() {
	ballRect := g.ball.Rect()
	for i, brick := range g.bricks {
		if !ballRect.Intersects(brick.Rect()) {
			continue
		}
		g.sound.Play(EffectBrickHit)
		g.ball.DY = -g.ball.DY
		g.bricks = append(g.bricks[:i], g.bricks[i+1:]...)
		g.session.Score += g.cfg.Bricks.Points
		return
	}
}

// loseLife handles the ball leaving through the bottom.
func (g *Game) loseLife() StepResult {
	g.session.Lives--
	if g.session.Lives > 0 {
		g.ball.Reset(g.cfg.Field.Width, g.cfg.Field.Height, g.cfg.Ball.Speed, g.rng)
		return StepResult{}
	}
	g.session.Lives = 0
	return g.finish(SceneGameOver)
}

// advanceClearedLevels moves past every level whose bricks are gone.
// Paddle, ball, score and lives carry over.
func (g *Game) advanceClearedLevels() StepResult {
	for len(g.bricks) == 0 {
		next := g.session.Level + 1
		if next >= len(g.levels) {
			g.sound.Play(EffectWin)
			return g.finish(SceneWin)
		}
		g.session.Level = next
		g.bricks = BuildBricks(g.levels[next], g.cfg.Bricks)
	}
	return StepResult{}
}

// finish enters an end screen and records a new high score. The stored high
// score is read again first: other sessions may share the table.
func (g *Game) finish(scene Scene) StepResult {
	g.scene = scene
	g.paused = false

	var loadErr error
	if stored, err := g.store.LoadHighScore(); err != nil {
		loadErr = fmt.Errorf("game: cannot reload high score: %w", err)
	} else {
		g.session.HighScore = max(g.session.HighScore, stored)
	}

	if g.session.Score <= g.session.HighScore {
		return StepResult{Err: loadErr}
	}
	g.session.HighScore = g.session.Score
	if err := g.store.SaveScore(g.session.PlayerName, g.session.Score); err != nil {
		return StepResult{Err: errors.Join(loadErr, fmt.Errorf("game: cannot save high score: %w", err))}
	}
	return StepResult{Err: loadErr}
}

// stepEnd handles the retry and quit prompt of the Win and GameOver screens.
func (g *Game) stepEnd(in core.InputFrame) StepResult {
	quit := in.Has(core.ActionQuit)
	for _, r := range in.Text {
		if r == 'q' || r == 'Q' {
			quit = true
		}
	}
	if quit {
		return StepResult{Quit: true}
	}

	if in.Has(core.ActionConfirm) {
		g.session.NewGame(g.cfg.Gameplay.Lives)
		g.resetField()
		g.scene = SceneMainMenu
	}
	return StepResult{}
}

// State returns the current game summary.
func (g *Game) State() State {
	return State{
		Scene:     g.scene,
		Score:     g.session.Score,
		Lives:     g.session.Lives,
		Level:     g.session.Level,
		HighScore: g.session.HighScore,
		Paused:    g.paused,
	}
}

// Session returns a copy of the session state.
func (g *Game) Session() Session {
	return g.session
}

// Scene returns the current scene.
func (g *Game) Scene() Scene {
	return g.scene
}

// Levels returns the level catalog in use.
func (g *Game) Levels() []Level {
	return g.levels
}

// truncateName cuts a loaded name down to the entry limit.
func truncateName(name string, max int) string {
	if utf8.RuneCountInString(name) <= max {
		return name
	}
	runes := []rune(name)
	return string(runes[:max])
}
