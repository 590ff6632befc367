package game

// Session is the per-player state that outlives a single level.
type Session struct {
	PlayerName string
	Score      int
	Lives      int
	Level      int // Index into the level catalog
	HighScore  int // Best persisted score, loaded at startup
}

// NewGame resets the session for a fresh game; name and high score are kept.
func (s *Session) NewGame(lives int) {
	s.Score = 0
	s.Lives = lives
	s.Level = 0
}
