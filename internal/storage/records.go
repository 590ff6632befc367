package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/game"
)

// Records joins the score table and a name store into game.Persistence.
type Records struct {
	scores *Store
	names  NameStore
	logger *log.Logger
}

var _ game.Persistence = (*Records)(nil)

// NewRecords returns Records over scores and names. A nil logger discards.
func NewRecords(scores *Store, names NameStore, logger *log.Logger) *Records {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Records{scores: scores, names: names, logger: logger}
}

// LoadHighScore returns the best recorded score.
func (r *Records) LoadHighScore() (int, error) {
	return r.scores.HighScore()
}

// SaveScore appends a score record.
func (r *Records) SaveScore(playerName string, score int) error {
	id, err := r.scores.SaveScore(playerName, score)
	if err != nil {
		return err
	}
	r.logger.Info("new high score saved", "player", playerName, "score", score, "id", id)
	return nil
}

// LoadName returns the saved player name.
func (r *Records) LoadName() (string, error) {
	name, err := r.names.Load()
	if err != nil {
		r.logger.Warn("cannot load player name", "err", err)
		return "", err
	}
	return name, nil
}

// SaveName stores the player name.
func (r *Records) SaveName(name string) error {
	if err := r.names.Save(name); err != nil {
		return err
	}
	r.logger.Debug("player name saved", "player", name)
	return nil
}
