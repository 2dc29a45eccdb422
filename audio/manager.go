// Package audio plays short synthesized cues for game events.
package audio

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/pthm-cable/reefdive/assets"
	"github.com/pthm-cable/reefdive/config"
	"github.com/pthm-cable/reefdive/telemetry"
)

// Cue is a sound the game can play.
type Cue uint8

const (
	CueCatch Cue = iota
	CueNewSpecies
	CueBite
	CueBoostDepleted
	CueSplash
	CueGameOver
	CueVictory
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueCatch:
		return "catch"
	case CueNewSpecies:
		return "new_species"
	case CueBite:
		return "bite"
	case CueBoostDepleted:
		return "boost_depleted"
	case CueSplash:
		return "splash"
	case CueGameOver:
		return "game_over"
	case CueVictory:
		return "victory"
	}
	return "unknown"
}

// CueNames lists every cue name, for asset manifests.
func CueNames() []string {
	names := make([]string, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		names = append(names, c.String())
	}
	return names
}

// CueFor maps a game event to the cue that announces it.
func CueFor(e telemetry.Event) (Cue, bool) {
	switch e.Type {
	case telemetry.EventCatch:
		return CueCatch, true
	case telemetry.EventNewSpecies:
		return CueNewSpecies, true
	case telemetry.EventDamage:
		return CueBite, true
	case telemetry.EventBoostDepleted:
		return CueBoostDepleted, true
	case telemetry.EventSurfaced, telemetry.EventSubmerged:
		return CueSplash, true
	case telemetry.EventGameOver:
		return CueGameOver, true
	case telemetry.EventVictory:
		return CueVictory, true
	}
	return 0, false
}

// Manager owns the speaker and a mixer every cue is added to.
// All methods are safe to call when audio is disabled or failed to start.
type Manager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	overrides   map[Cue]*beep.Buffer
	disabled    bool
	initialized bool
}

// NewManager prepares cues at the configured rate. Sound files in bundle
// replace the synthesized cue of the same name.
func NewManager(cfg config.AudioConfig, bundle *assets.Bundle) *Manager {
	m := &Manager{
		rate:      beep.SampleRate(cfg.SampleRate),
		volume:    cfg.MasterVolume,
		mixer:     &beep.Mixer{},
		overrides: make(map[Cue]*beep.Buffer),
		disabled:  !cfg.Enabled,
	}
	for c := Cue(0); c < cueCount; c++ {
		a, ok := bundle.Get(assets.SoundName(c.String()))
		if !ok {
			continue
		}
		buf, err := m.decode(a.Data)
		if err != nil {
			slog.Warn("ignoring sound override", "cue", c.String(), "path", a.FullPath, "error", err)
			continue
		}
		m.overrides[c] = buf
	}
	return m
}

// decode reads a WAV file into a buffer at the manager's sample rate.
func (m *Manager) decode(data []byte) (*beep.Buffer, error) {
	s, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != m.rate {
		src = beep.Resample(4, format.SampleRate, m.rate, s)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: m.rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	return buf, nil
}

// Init opens the speaker. On failure, or when audio is disabled in config,
// the manager stays muted.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || m.disabled {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Stream builds a fresh streamer for a cue at master volume.
func (m *Manager) Stream(c Cue) beep.Streamer {
	var s beep.Streamer
	if buf, ok := m.overrides[c]; ok {
		s = buf.Streamer(0, buf.Len())
	} else {
		switch c {
		case CueCatch:
			s = catchSound(m.rate)
		case CueNewSpecies:
			s = newSpeciesSound(m.rate)
		case CueBite:
			s = biteSound(m.rate)
		case CueBoostDepleted:
			s = boostDepletedSound(m.rate)
		case CueSplash:
			s = splashSound(m.rate)
		case CueGameOver:
			s = gameOverSound(m.rate)
		case CueVictory:
			s = victorySound(m.rate)
		default:
			return nil
		}
	}
	return newVolume(s, m.volume)
}

// Play queues a cue on the mixer.
func (m *Manager) Play(c Cue) {
	if !m.Enabled() {
		return
	}
	s := m.Stream(c)
	if s == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvents plays the cue for each event, once per cue per batch.
func (m *Manager) HandleEvents(events []telemetry.Event) {
	if !m.Enabled() {
		return
	}
	var played [cueCount]bool
	for _, e := range events {
		c, ok := CueFor(e)
		if !ok || played[c] {
			continue
		}
		played[c] = true
		m.Play(c)
	}
}

// Close silences everything queued.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}
