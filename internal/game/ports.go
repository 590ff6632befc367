package game

// Persistence stores the player name and the high-score table.
type Persistence interface {
	// LoadHighScore returns the best recorded score, 0 when none exist.
	LoadHighScore() (int, error)
	// SaveScore appends one record to the high-score table.
	SaveScore(playerName string, score int) error
	// LoadName returns the saved player name, "" when none was saved.
	LoadName() (string, error)
	// SaveName replaces the saved player name.
	SaveName(name string) error
}

// Effect identifies a one-shot sound.
type Effect int

const (
	EffectBrickHit Effect = iota
	EffectWin
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectBrickHit:
		return "brick_hit"
	case EffectWin:
		return "win"
	default:
		return "unknown"
	}
}

// Sound plays effects without blocking the loop.
type Sound interface {
	Play(e Effect)
}

type silence struct{}

func (silence) Play(Effect) {}
