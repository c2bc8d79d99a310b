// Package game contains the Simon sequence engine and the playback driver
// that flashes it on a bound host page.
//
// Maintenance notes:
//   - The driver runs on a single goroutine. Panels and the Sequence are only
//     mutated from Run; the mutex guards the fields read by other goroutines
//     (State, Running, Sequence) while a game is in flight.
//   - Clock.Sleep calls are the only suspension points and the only places a
//     cancelled context is observed. A future input handler should interrupt
//     playback there.
//   - The game ends when the terminal panel is replayed, not on player input.
//     There is no input matching yet.
package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"Simon/logging"
	"Simon/panel"
)

// DefaultPause is the highlight and intro pause duration.
const DefaultPause = 500 * time.Millisecond

// introFlashes is how many all-panel flashes close the intro.
const introFlashes = 3

// DriverConfig configures a Driver. Zero values take defaults.
type DriverConfig struct {
	Pause    time.Duration // highlight duration, DefaultPause when zero
	Gap      time.Duration // optional pause between replayed panels
	Terminal *panel.ID     // panel that ends the game, Blue when nil
	Source   panel.Source
	Clock    Clock
	Listener Listener
}

// Driver plays the intro and the growing sequence on a Board.
type Driver struct {
	board    *Board
	pause    time.Duration
	gap      time.Duration
	terminal panel.ID
	source   panel.Source
	clock    Clock
	listener Listener

	mu      sync.RWMutex
	seq     Sequence
	state   State
	running bool
}

// NewDriver creates a driver for board in the Intro state.
func NewDriver(board *Board, cfg DriverConfig) *Driver {
	d := &Driver{
		board:    board,
		pause:    cfg.Pause,
		gap:      cfg.Gap,
		terminal: panel.Blue,
		source:   cfg.Source,
		clock:    cfg.Clock,
		listener: cfg.Listener,
		state:    StateIntro,
		running:  true,
	}
	if d.pause <= 0 {
		d.pause = DefaultPause
	}
	if cfg.Terminal != nil {
		d.terminal = *cfg.Terminal
	}
	if d.source == nil {
		d.source = panel.FastSource{}
	}
	if d.clock == nil {
		d.clock = RealClock{}
	}
	if d.listener == nil {
		d.listener = nopListener{}
	}
	return d
}

// Play binds page and runs a full game on it. It fails before any panel is
// highlighted when the page is missing a region.
func Play(ctx context.Context, page Page, cfg DriverConfig) error {
	board, err := Bind(page)
	if err != nil {
		return err
	}
	return NewDriver(board, cfg).Run(ctx)
}

// Run plays the intro and then rounds until the game ends. It returns nil on
// a normal end and ctx.Err() when cancelled; the driver is Ended either way.
// Logs go to the logger carried by ctx.
func (d *Driver) Run(ctx context.Context) error {
	defer d.setState(ctx, StateEnded)

	d.board.SetScore(d.Sequence().Len())
	d.listener.StateChanged(StateIntro)

	if err := d.Intro(ctx); err != nil {
		return fmt.Errorf("intro: %w", err)
	}

	d.setState(ctx, StatePlaying)
	for round := 1; d.Running(); round++ {
		if err := d.PlayRound(ctx); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
	}

	logging.FromContext(ctx).Infow("game over", "length", d.Sequence().Len())
	return nil
}

// Intro flashes each panel in turn and then all panels together.
func (d *Driver) Intro(ctx context.Context) error {
	for _, id := range panel.All {
		if err := d.flash(ctx, id); err != nil {
			return err
		}
	}
	if err := d.clock.Sleep(ctx, d.pause); err != nil {
		return err
	}
	for i := 0; i < introFlashes; i++ {
		if err := d.flashAll(ctx); err != nil {
			return err
		}
	}
	return nil
}

// PlayRound appends one random panel and replays the whole sequence.
func (d *Driver) PlayRound(ctx context.Context) error {
	d.mu.Lock()
	added := d.seq.AppendRandom(d.source)
	replay := d.seq.Panels()
	d.mu.Unlock()

	round := len(replay)
	logging.FromContext(ctx).Debugw("round started", "round", round, "added", added.String())

	for i, id := range replay {
		if i > 0 && d.gap > 0 {
			if err := d.clock.Sleep(ctx, d.gap); err != nil {
				return err
			}
		}
		if err := d.flash(ctx, id); err != nil {
			return err
		}
		if id == d.terminal {
			d.mu.Lock()
			d.running = false
			d.mu.Unlock()
		}
	}

	d.listener.RoundFinished(round, replay)
	return nil
}

// flash highlights one panel for the pause duration.
func (d *Driver) flash(ctx context.Context, id panel.ID) error {
	p := d.board.Panel(id)
	p.SetActive()
	d.listener.PanelActivated(id)
	err := d.clock.Sleep(ctx, d.pause)
	p.SetInactive()
	return err
}

func (d *Driver) flashAll(ctx context.Context) error {
	for _, id := range panel.All {
		d.board.Panel(id).SetActive()
		d.listener.PanelActivated(id)
	}
	err := d.clock.Sleep(ctx, d.pause)
	for _, id := range panel.All {
		d.board.Panel(id).SetInactive()
	}
	if err != nil {
		return err
	}
	return d.clock.Sleep(ctx, d.pause)
}

func (d *Driver) setState(ctx context.Context, s State) {
	d.mu.Lock()
	if d.state == s {
		d.mu.Unlock()
		return
	}
	d.state = s
	if s == StateEnded {
		d.running = false
	}
	d.mu.Unlock()

	logging.FromContext(ctx).Infow("state changed", "state", s.String())
	d.listener.StateChanged(s)
}

// State returns the current phase.
func (d *Driver) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Running reports whether another round will be played.
func (d *Driver) Running() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.running
}

// Sequence returns a snapshot of the panels chosen so far.
func (d *Driver) Sequence() Sequence {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Sequence{panels: d.seq.Panels()}
}
