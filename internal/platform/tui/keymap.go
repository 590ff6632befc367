package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/game"
)

// GameKeyMap defines the key bindings used while the game runs.
type GameKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Confirm   key.Binding
	Backspace key.Binding
	Pause     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Backspace, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Pause},
		{k.Confirm, k.Backspace, k.Quit, k.ForceQuit},
	}
}

// ForScene returns a copy of the bindings for the help footer, with only the
// keys the scene reacts to enabled. Disabled bindings are left out of help.
func (k GameKeyMap) ForScene(scene game.Scene) GameKeyMap {
	playing := scene == game.ScenePlaying
	k.Left.SetEnabled(playing)
	k.Right.SetEnabled(playing)
	k.Pause.SetEnabled(playing)
	k.Confirm.SetEnabled(!playing)
	k.Quit.SetEnabled(!playing)
	k.Backspace.SetEnabled(scene == game.SceneMainMenu)

	switch scene {
	case game.SceneMainMenu:
		k.Confirm.SetHelp("enter", "start")
	case game.SceneWin, game.SceneGameOver:
		k.Confirm.SetHelp("enter", "retry")
		k.Quit.SetHelp("q/esc", "quit")
	}
	return k
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/retry"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		// Pause is typed text; the binding only documents it
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
//
// Terminals report presses and auto-repeat but never key-up, so a direction
// stays held for holdTicks ticks after its last press.
type KeyMapper struct {
	keys      GameKeyMap
	holdTicks int
	leftHeld  int
	rightHeld int
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyMapper{
		keys:      DefaultGameKeyMap(),
		holdTicks: holdTicks,
	}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKeyToFrame records a key message into frame.
// Returns true if the key was a force-quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, km.keys.ForceQuit):
		return true
	case key.Matches(msg, km.keys.Left):
		km.leftHeld = km.holdTicks
		km.rightHeld = 0
	case key.Matches(msg, km.keys.Right):
		km.rightHeld = km.holdTicks
		km.leftHeld = 0
	case key.Matches(msg, km.keys.Confirm):
		frame.Set(core.ActionConfirm)
	case key.Matches(msg, km.keys.Backspace):
		frame.Set(core.ActionBackspace)
	case key.Matches(msg, km.keys.Quit):
		frame.Set(core.ActionQuit)
	case msg.Type == tea.KeySpace:
		frame.Type(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		frame.Type(msg.Runes...)
	}
	return false
}

// Advance applies held directions to frame and ages them by one tick.
func (km *KeyMapper) Advance(frame *core.InputFrame) {
	if km.leftHeld > 0 {
		frame.Set(core.ActionLeft)
		km.leftHeld--
	}
	if km.rightHeld > 0 {
		frame.Set(core.ActionRight)
		km.rightHeld--
	}
}

// Release drops any held direction.
func (km *KeyMapper) Release() {
	km.leftHeld = 0
	km.rightHeld = 0
}
