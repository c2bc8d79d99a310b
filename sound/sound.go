// Package sound plays a tone for each lit panel through the beep speaker.
package sound

import (
	"sync"
	"time"

	"Simon/panel"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// SampleRate is the speaker sample rate.
const SampleRate beep.SampleRate = 44100

// Player synthesizes panel tones. A disabled Player silently drops Play calls.
type Player struct {
	enabled bool
	logger  *zap.SugaredLogger
	mu      sync.Mutex
}

// NewPlayer initializes the speaker when enabled is true. If the speaker
// cannot be opened, audio is disabled and a warning is logged.
func NewPlayer(enabled bool, logger *zap.SugaredLogger) *Player {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	p := &Player{enabled: enabled, logger: logger}
	if !enabled {
		return p
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		logger.Warnw("audio disabled: failed to initialize speaker", "error", err)
		p.enabled = false
	}
	return p
}

// Enabled reports whether tones are played.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Play sounds the tone of id for d. It does not block.
func (p *Player) Play(id panel.ID, d time.Duration) {
	if !p.enabled {
		return
	}
	s, err := Tone(id, d)
	if err != nil {
		p.logger.Warnw("tone", "panel", id.String(), "error", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Play(s)
}

// Tone returns a sine streamer at the panel's pitch lasting d.
func Tone(id panel.ID, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, id.Frequency())
	if err != nil {
		return nil, err
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -2}
	return beep.Take(SampleRate.N(d), quiet), nil
}
