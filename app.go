// Package main contains the application wiring and the AppManager which
// coordinates games, audio and the UI.
//
// Maintenance notes / tips:
//   - Concurrency model: a single command-loop goroutine (see `commandLoop`)
//     serializes Start/Stop requests, so at most one game.Driver runs at a
//     time. The driver itself runs on its own goroutine and reports back
//     through the game.Listener methods below; those only touch fyne widgets
//     inside fyne.Do.
//   - Panel previews also go through the command loop. Their unlight timer
//     is owned by the AppManager and is stopped before a game starts, so the
//     driver never shares a panel with a preview.
//   - `cmdCh` is buffered. EnqueueCommand drops commands after a short
//     timeout rather than block the UI.
//   - The best score lives in memory only and resets when the app exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"Simon/control"
	"Simon/game"
	"Simon/i18n"
	"Simon/logging"
	"Simon/panel"
	"Simon/sound"
	"Simon/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// Tone players, satisfied by *sound.Player.
type tonePlayer interface {
	Play(id panel.ID, d time.Duration)
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	cfg    *Config
	logger *zap.SugaredLogger
	board  *ui.Board
	player tonePlayer

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc

	gameLock   sync.Mutex
	gameCancel context.CancelFunc
	gameDone   chan struct{}
	state      game.State
	best       int

	previewLock  sync.Mutex
	previewGen   int
	previewTimer *time.Timer
	previewAct   *panel.ClassActivator

	startButton *widget.Button
	stopButton  *widget.Button
	bestLabel   *widget.Label
}

// NewAppManager creates a new application manager and starts its command
// loop. The loop stops when ctx is cancelled or Shutdown is called. Logs go
// to the logger carried by ctx, and so do the logs of every game it starts.
func NewAppManager(ctx context.Context, cfg *Config, player tonePlayer) *AppManager {
	logger := logging.FromContext(ctx)
	a := &AppManager{
		cfg:    cfg,
		logger: logger,
		player: player,
		state:  game.StateEnded,
	}
	if a.player == nil {
		a.player = sound.NewPlayer(false, logger)
	}
	a.board = ui.NewBoard(a)

	a.cmdCh = make(chan control.Command, 16)
	a.cmdCtx, a.cmdCancel = context.WithCancel(ctx)
	go a.commandLoop()

	return a
}

// Board returns the host page games are played on.
func (a *AppManager) Board() *ui.Board {
	return a.board
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		a.logger.Warnw("EnqueueCommand timeout: dropping command", "command", cmd.Type.String())
	}
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			a.cancelPreview()
			a.stopGame()
			return
		case cmd := <-a.cmdCh:
			var err error
			switch cmd.Type {
			case control.CmdStart:
				err = a.startGame()
			case control.CmdStop:
				a.stopGame()
			case control.CmdPreview:
				a.preview(cmd.Panel)
			default:
				err = fmt.Errorf("unknown command %d", cmd.Type)
			}
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- err:
				default:
				}
			}
		}
	}
}

var errGameRunning = errors.New("a game is already running")

func (a *AppManager) startGame() error {
	a.gameLock.Lock()
	defer a.gameLock.Unlock()

	if a.gameCancel != nil {
		return errGameRunning
	}

	a.cancelPreview()

	// Binding is checked here so a broken page never reaches the driver.
	board, err := game.Bind(a.board)
	if err != nil {
		a.logger.Errorw("refusing to start game", "error", err)
		return err
	}

	ctx, cancel := context.WithCancel(a.cmdCtx)
	done := make(chan struct{})
	a.gameCancel = cancel
	a.gameDone = done

	driver := game.NewDriver(board, a.cfg.DriverConfig(a))
	go func() {
		defer close(done)
		defer a.gameFinished()
		if err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Errorw("game aborted", "error", err)
		}
	}()
	return nil
}

func (a *AppManager) stopGame() {
	a.gameLock.Lock()
	cancel, done := a.gameCancel, a.gameDone
	a.gameLock.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (a *AppManager) gameFinished() {
	a.gameLock.Lock()
	if a.gameCancel != nil {
		a.gameCancel()
	}
	a.gameCancel = nil
	a.gameDone = nil
	a.gameLock.Unlock()
	a.UpdateControlButtonState()
}

// Running reports whether a game is in progress.
func (a *AppManager) Running() bool {
	a.gameLock.Lock()
	defer a.gameLock.Unlock()
	return a.gameCancel != nil
}

// GameState returns the phase last reported by the running game.
func (a *AppManager) GameState() game.State {
	a.gameLock.Lock()
	defer a.gameLock.Unlock()
	return a.state
}

// Best returns the longest sequence replayed since the app started.
func (a *AppManager) Best() int {
	a.gameLock.Lock()
	defer a.gameLock.Unlock()
	return a.best
}

// StateChanged implements game.Listener.
func (a *AppManager) StateChanged(s game.State) {
	a.gameLock.Lock()
	a.state = s
	a.gameLock.Unlock()
	a.logger.Debugw("game state", "state", s.String())
	a.UpdateControlButtonState()
}

// PanelActivated implements game.Listener.
func (a *AppManager) PanelActivated(id panel.ID) {
	a.player.Play(id, a.cfg.Pause)
}

// RoundFinished implements game.Listener.
func (a *AppManager) RoundFinished(round int, _ []panel.ID) {
	a.gameLock.Lock()
	if round > a.best {
		a.best = round
	}
	best := a.best
	a.gameLock.Unlock()

	if a.bestLabel != nil {
		fyne.Do(func() {
			a.bestLabel.SetText(fmt.Sprintf("%s: %d", i18n.T("Best"), best))
		})
	}
}

// PanelTapped is called when the player taps a panel. Input is not matched
// against the sequence; the tap is only logged.
func (a *AppManager) PanelTapped(id panel.ID) {
	a.logger.Debugw("panel tapped", "panel", id.String())
}

// preview flashes a single panel while no game is running. It runs on the
// command loop.
func (a *AppManager) preview(id panel.ID) {
	if !id.Valid() || a.Running() {
		return
	}
	a.cancelPreview()

	a.previewLock.Lock()
	a.previewGen++
	gen := a.previewGen
	a.previewAct = panel.NewClassActivator(a.board.Panels[id])
	a.previewAct.SetActive()
	a.previewTimer = time.AfterFunc(a.cfg.Pause, func() { a.endPreview(gen) })
	a.previewLock.Unlock()

	a.player.Play(id, a.cfg.Pause)
}

// endPreview unlights the panel of preview gen unless it was cancelled or
// replaced in the meantime.
func (a *AppManager) endPreview(gen int) {
	a.previewLock.Lock()
	defer a.previewLock.Unlock()

	if gen != a.previewGen || a.previewAct == nil {
		return
	}
	a.previewAct.SetInactive()
	a.previewAct = nil
	a.previewTimer = nil
}

// cancelPreview stops a pending preview timer and unlights its panel.
func (a *AppManager) cancelPreview() {
	a.previewLock.Lock()
	defer a.previewLock.Unlock()

	a.previewGen++
	if a.previewTimer != nil {
		a.previewTimer.Stop()
		a.previewTimer = nil
	}
	if a.previewAct != nil {
		a.previewAct.SetInactive()
		a.previewAct = nil
	}
}

// Previewing reports whether a preview panel is lit.
func (a *AppManager) Previewing() bool {
	a.previewLock.Lock()
	defer a.previewLock.Unlock()
	return a.previewAct != nil
}

// UpdateControlButtonState shows Start or Stop depending on whether a game
// is running.
func (a *AppManager) UpdateControlButtonState() {
	running := a.Running()

	if a.startButton == nil || a.stopButton == nil {
		return
	}
	fyne.Do(func() {
		if running {
			a.startButton.Hide()
			a.stopButton.Show()
		} else {
			a.startButton.Show()
			a.stopButton.Hide()
		}
		a.startButton.Refresh()
		a.stopButton.Refresh()
	})
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	switch r {
	case ' ':
		if a.Running() {
			a.EnqueueCommand(control.Command{Type: control.CmdStop})
		} else {
			a.EnqueueCommand(control.Command{Type: control.CmdStart})
		}
	case 'g', 'G':
		a.EnqueueCommand(control.Command{Type: control.CmdPreview, Panel: panel.Green})
	case 'r', 'R':
		a.EnqueueCommand(control.Command{Type: control.CmdPreview, Panel: panel.Red})
	case 'y', 'Y':
		a.EnqueueCommand(control.Command{Type: control.CmdPreview, Panel: panel.Yellow})
	case 'b', 'B':
		a.EnqueueCommand(control.Command{Type: control.CmdPreview, Panel: panel.Blue})
	}
}

// SetStartButton sets the start button widget.
func (a *AppManager) SetStartButton(btn *widget.Button) {
	a.startButton = btn
}

// SetStopButton sets the stop button widget.
func (a *AppManager) SetStopButton(btn *widget.Button) {
	a.stopButton = btn
}

// SetBestLabel sets the best score label.
func (a *AppManager) SetBestLabel(l *widget.Label) {
	a.bestLabel = l
}

// Shutdown stops any running game and the command loop.
func (a *AppManager) Shutdown() {
	a.cancelPreview()
	a.stopGame()
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
}
