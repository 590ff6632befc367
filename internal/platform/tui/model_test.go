package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/game"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	records := storage.NewRecords(store, storage.NewMemoryName(""), nil)
	g, err := game.New(config.Default(), records)
	require.NoError(t, err)

	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}
	g.Reset(runtime)
	return NewModel(g, runtime, 8, nil)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModelStartsGame(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey("Ann"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := send(t, m, TickMsg{})

	assert.NotNil(t, cmd, "tick loop should continue")
	assert.Equal(t, game.ScenePlaying, m.State().Scene)
	assert.Equal(t, 3, m.State().Lives)
}

func TestModelEscQuitsFromMenu(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := send(t, m, TickMsg{})

	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelCtrlCQuitsImmediately(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelHeldKeyMovesPaddle(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey("Ann"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg{})

	before := m.game.Snapshot().PaddleX
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range 8 {
		m, _ = send(t, m, TickMsg{})
	}
	after := m.game.Snapshot().PaddleX
	assert.Equal(t, before-80, after, "one press holds for eight ticks")

	m, _ = send(t, m, TickMsg{})
	assert.Equal(t, after, m.game.Snapshot().PaddleX, "hold window should have expired")
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey("Ann"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg{})
	score := m.State()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 40-footerRows, m.screen.Height())
	assert.Equal(t, score, m.game.State())
}

func TestModelHelpFollowsScene(t *testing.T) {
	m := newTestModel(t)
	menu := ansi.Strip(m.View())
	assert.Contains(t, menu, "esc quit")
	assert.NotContains(t, menu, "p pause")

	m, _ = send(t, m, runeKey("Ann"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg{})
	require.Equal(t, game.ScenePlaying, m.State().Scene)

	playing := ansi.Strip(m.View())
	assert.NotContains(t, playing, "esc quit", "esc does nothing while playing")
	assert.Contains(t, playing, "p pause")
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "Enter Your Name:")
	assert.Contains(t, view, "esc")
	assert.Equal(t, 25, strings.Count(view, "\n")+1)
}
