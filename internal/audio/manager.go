// Package audio plays the brick breaker's sound effects and background music
// through the gopxl/beep speaker.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/brick-breaker/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Format is the internal format all sounds are converted to.
var Format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Asset file names looked up under Options.AssetsDir.
const (
	BrickHitFile = "wav/brick_hit.wav"
	WinFile      = "wav/win_sound.wav"
	MusicFile    = "wav/background_music.wav"
)

// Options configures a Manager.
type Options struct {
	// AssetsDir optionally holds wav files that replace the synthesized sounds.
	AssetsDir string
	// MusicVolume scales the background music, 0 silences it, 1 is unchanged.
	MusicVolume float64
	Logger      *log.Logger
}

// Manager implements game.Sound on the system speaker.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sounds      map[game.Effect]*beep.Buffer
	music       *beep.Buffer
	musicVolume float64
	musicCtrl   *beep.Ctrl
	initialized bool
	logger      *log.Logger
}

var _ game.Sound = (*Manager)(nil)

// NewManager prepares all sounds. Asset files that are missing or fail to
// decode are replaced by synthesized sounds.
func NewManager(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Manager{
		mixer:       &beep.Mixer{},
		sounds:      make(map[game.Effect]*beep.Buffer),
		musicVolume: opts.MusicVolume,
		logger:      logger,
	}

	m.sounds[game.EffectBrickHit] = m.asset(opts.AssetsDir, BrickHitFile, brickHitSound)
	m.sounds[game.EffectWin] = m.asset(opts.AssetsDir, WinFile, winSound)
	m.music = m.asset(opts.AssetsDir, MusicFile, backgroundMusic)
	return m
}

// asset loads name from dir, falling back to the synthesized sound.
func (m *Manager) asset(dir, name string, synth func(beep.Format) *beep.Buffer) *beep.Buffer {
	if dir == "" {
		return synth(Format)
	}
	path := filepath.Join(dir, name)
	buf, err := LoadWAV(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			m.logger.Warn("cannot load sound, using built-in", "file", path, "err", err)
		}
		return synth(Format)
	}
	m.logger.Debug("loaded sound", "file", path)
	return buf
}

// Init opens the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play starts a one-shot effect without waiting for it.
func (m *Manager) Play(e game.Effect) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	buf, ok := m.sounds[e]
	if !ok {
		return
	}

	speaker.Lock()
	m.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// StartMusic loops the background music until Close.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.musicVolume <= 0 {
		return
	}
	// Already playing
	if m.musicCtrl != nil && !m.musicCtrl.Paused {
		return
	}

	loop := beep.Loop(-1, m.music.Streamer(0, m.music.Len()))
	m.musicCtrl = &beep.Ctrl{Streamer: withVolume(loop, m.musicVolume)}

	speaker.Lock()
	m.mixer.Add(m.musicCtrl)
	speaker.Unlock()
}

// Close stops every sound.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	if m.musicCtrl != nil {
		m.musicCtrl.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()

	m.initialized = false
}

// LoadWAV decodes a wav file into a buffer in Format.
func LoadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path) //#nosec G304 -- user supplied asset directory
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(Format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	return buf, nil
}

// withVolume scales s linearly by vol.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol >= 1 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Nop is a silent game.Sound.
type Nop struct{}

// Play does nothing.
func (Nop) Play(game.Effect) {}
