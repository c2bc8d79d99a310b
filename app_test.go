package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"Simon/control"
	"Simon/game"
	"Simon/logging"
	"Simon/panel"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakePlayer struct {
	mu    sync.Mutex
	tones []panel.ID
}

func (p *fakePlayer) Play(id panel.ID, _ time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tones = append(p.tones, id)
}

func (p *fakePlayer) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tones)
}

func newTestManager(t *testing.T, pause time.Duration) (*AppManager, *fakePlayer) {
	t.Helper()
	return newTestManagerWithLogger(t, pause, zap.NewNop().Sugar())
}

func newTestManagerWithLogger(t *testing.T, pause time.Duration, logger *zap.SugaredLogger) (*AppManager, *fakePlayer) {
	t.Helper()
	test.NewTempApp(t)

	player := &fakePlayer{}
	cfg := &Config{Pause: pause}
	ctx := logging.WithLogger(context.Background(), logger)
	a := NewAppManager(ctx, cfg, player)
	t.Cleanup(a.Shutdown)
	return a, player
}

func sendPreview(t *testing.T, a *AppManager, id panel.ID) {
	t.Helper()
	reply := make(chan error, 1)
	a.EnqueueCommand(control.Command{Type: control.CmdPreview, Panel: id, Reply: reply})
	select {
	case err := <-reply:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no reply to preview of %s", id)
	}
}

func send(t *testing.T, a *AppManager, typ control.CommandType) error {
	t.Helper()
	reply := make(chan error, 1)
	a.EnqueueCommand(control.Command{Type: typ, Reply: reply})
	select {
	case err := <-reply:
		return err
	case <-time.After(5 * time.Second):
		t.Fatalf("no reply to %s", typ)
		return nil
	}
}

func TestGameRunsToCompletion(t *testing.T) {
	a, player := newTestManager(t, time.Millisecond)

	require.NoError(t, send(t, a, control.CmdStart))
	require.Eventually(t, func() bool { return !a.Running() }, 30*time.Second, 5*time.Millisecond)

	assert.Equal(t, game.StateEnded, a.GameState())
	assert.GreaterOrEqual(t, a.Best(), 1)
	// The intro alone lights 4 single panels and 3x4 flashes.
	assert.GreaterOrEqual(t, player.count(), 16+a.Best())
	for _, p := range a.Board().Panels {
		assert.False(t, p.Lit(), p.ID.String())
	}
}

func TestSecondStartIsRejectedAndStopCancels(t *testing.T) {
	a, _ := newTestManager(t, time.Hour)

	require.NoError(t, send(t, a, control.CmdStart))
	assert.True(t, a.Running())
	assert.ErrorIs(t, send(t, a, control.CmdStart), errGameRunning)

	require.NoError(t, send(t, a, control.CmdStop))
	assert.False(t, a.Running())
	assert.Equal(t, game.StateEnded, a.GameState())
	assert.Zero(t, a.Best())
}

func TestStartWithoutScoreRegionFails(t *testing.T) {
	a, player := newTestManager(t, time.Millisecond)
	a.Board().Remove(panel.ScoreElementID)

	err := send(t, a, control.CmdStart)

	var bindErr *game.BindingError
	require.True(t, errors.As(err, &bindErr))
	assert.False(t, a.Running())
	assert.Zero(t, player.count())
}

func TestPreviewIgnoredWhileRunning(t *testing.T) {
	a, player := newTestManager(t, time.Hour)

	a.HandleKeyRune('g')
	require.Eventually(t, a.Previewing, 5*time.Second, time.Millisecond)
	assert.True(t, a.Board().Panels[panel.Green].Lit())
	require.Eventually(t, func() bool { return player.count() == 1 }, 5*time.Second, time.Millisecond)

	require.NoError(t, send(t, a, control.CmdStart))
	sendPreview(t, a, panel.Red)
	assert.False(t, a.Previewing())
	assert.False(t, a.Board().Panels[panel.Red].Lit())
}

func TestStartCancelsPendingPreview(t *testing.T) {
	a, _ := newTestManager(t, time.Hour)

	sendPreview(t, a, panel.Red)
	require.True(t, a.Board().Panels[panel.Red].Lit())

	require.NoError(t, send(t, a, control.CmdStart))

	// The preview is gone before the driver runs; the intro lights Green
	// first and holds it for the whole pause.
	assert.False(t, a.Previewing())
	assert.False(t, a.Board().Panels[panel.Red].Lit())
}

func TestPreviewUnlightsAfterPause(t *testing.T) {
	a, _ := newTestManager(t, 10*time.Millisecond)

	sendPreview(t, a, panel.Yellow)
	sendPreview(t, a, panel.Blue)

	// A newer preview replaces the older one.
	assert.False(t, a.Board().Panels[panel.Yellow].Lit())
	require.Eventually(t, func() bool {
		return !a.Previewing() && !a.Board().Panels[panel.Blue].Lit()
	}, 5*time.Second, time.Millisecond)
}

func TestManagerLogsToContextLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	a, _ := newTestManagerWithLogger(t, time.Millisecond, zap.New(core).Sugar())
	a.Board().Remove(panel.ScoreElementID)

	require.Error(t, send(t, a, control.CmdStart))

	assert.Equal(t, 1, logs.FilterMessage("refusing to start game").Len())
}
