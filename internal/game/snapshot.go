package game

// Snapshot is the complete play state in primitive types.
type Snapshot struct {
	Tick       uint64
	Scene      string
	Paused     bool
	PlayerName string
	Score      int
	Lives      int
	Level      int
	HighScore  int

	PaddleX int
	PaddleY int

	BallX  int
	BallY  int
	BallDX int
	BallDY int

	// Each brick is 3 ints: X, Y, Row
	BrickData []int
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, len(g.bricks)*3)
	for _, b := range g.bricks {
		brickData = append(brickData, b.X, b.Y, b.Row)
	}

	return Snapshot{
		Tick:       uint64(g.tick), //#nosec G115 -- tick count is always positive
		Scene:      g.scene.String(),
		Paused:     g.paused,
		PlayerName: g.session.PlayerName,
		Score:      g.session.Score,
		Lives:      g.session.Lives,
		Level:      g.session.Level,
		HighScore:  g.session.HighScore,

		PaddleX: g.paddle.X,
		PaddleY: g.paddle.Y,

		BallX:  g.ball.X,
		BallY:  g.ball.Y,
		BallDX: g.ball.DX,
		BallDY: g.ball.DY,

		BrickData: brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Scene {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, r := range snap.PlayerName {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	if snap.Paused {
		h = h*31 + 1
	}
	for _, v := range []int{
		snap.Score, snap.Lives, snap.Level, snap.HighScore,
		snap.PaddleX, snap.PaddleY,
		snap.BallX, snap.BallY, snap.BallDX, snap.BallDY,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
