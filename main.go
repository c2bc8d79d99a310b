package main

import (
	"context"
	"fmt"
	"os"

	"Simon/i18n"
	"Simon/logging"
	"Simon/sound"
	"Simon/ui"

	"fyne.io/fyne/v2/app"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Debug)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(logging.WithLogger(context.Background(), logger))
	defer cancel()

	i18n.Init(cfg.Lang, logger)

	fyneApp := app.New()
	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	player := sound.NewPlayer(cfg.Sound, logger)
	a := NewAppManager(ctx, cfg, player)

	w := ui.CreateMainWindow(a, fyneApp, a.Board())
	w.SetOnClosed(func() {
		a.Shutdown()
		cancel()
	})

	logger.Infow("simon ready", "pause", cfg.Pause.String(), "sound", player.Enabled(), "lang", i18n.GetLang())
	w.ShowAndRun()
}
