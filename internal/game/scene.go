package game

// Scene is a state of the game's screen flow.
type Scene int

const (
	SceneMainMenu Scene = iota // Name entry, waiting for start
	ScenePlaying               // Ball in play
	SceneWin                   // Final level cleared
	SceneGameOver              // Lives exhausted
)

// String returns a human-readable name for the scene.
func (s Scene) String() string {
	switch s {
	case SceneMainMenu:
		return "menu"
	case ScenePlaying:
		return "playing"
	case SceneWin:
		return "win"
	case SceneGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
