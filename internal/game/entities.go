package game

import (
	"math/rand"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Paddle is the player-controlled bar at the bottom of the field.
type Paddle struct {
	X, Y int // Top-left corner
	W, H int
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Move shifts the paddle horizontally, keeping it inside [0, fieldW-W].
func (p *Paddle) Move(dx, fieldW int) {
	p.X = core.Clamp(p.X+dx, 0, fieldW-p.W)
}

// Ball is tracked by the top-left corner of its square bounding box.
type Ball struct {
	X, Y   int
	Size   int // Diameter
	DX, DY int // Velocity per tick
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Speed returns the per-axis speed magnitudes.
func (b Ball) Speed() (int, int) {
	return core.Abs(b.DX), core.Abs(b.DY)
}

// Move advances the ball one tick and bounces it off the side and top walls.
// The bottom is open: falling out is the caller's business.
func (b *Ball) Move(fieldW int) {
	b.X += b.DX
	b.Y += b.DY

	if b.X <= 0 {
		b.X = 0
		b.DX = core.Abs(b.DX)
	} else if b.X+b.Size >= fieldW {
		b.X = fieldW - b.Size
		b.DX = -core.Abs(b.DX)
	}

	if b.Y <= 0 {
		b.Y = 0
		b.DY = core.Abs(b.DY)
	}
}

// Reset centers the ball and serves it upward in a random horizontal direction.
func (b *Ball) Reset(fieldW, fieldH, speed int, rng *rand.Rand) {
	b.X = fieldW / 2
	b.Y = fieldH / 2
	b.DX = speed
	if rng.Intn(2) == 0 {
		b.DX = -speed
	}
	b.DY = -speed
}

// Brick is a destructible block. A brick that exists is alive.
type Brick struct {
	X, Y int
	W, H int
	Row  int // Layout row, used for coloring
}

// Rect returns the brick's bounding box.
func (br Brick) Rect() core.Rect {
	return core.NewRect(br.X, br.Y, br.W, br.H)
}
