package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/space-dozer/config"
	"github.com/lixenwraith/space-dozer/core"
	"github.com/lixenwraith/space-dozer/engine"
	"github.com/lixenwraith/space-dozer/entity"
	"github.com/lixenwraith/space-dozer/render"
	"github.com/lixenwraith/space-dozer/terminal"
)

var (
	configFlag = flag.String("config", "", "path to a TOML settings file")
	debugFlag  = flag.Bool("debug", false, "write a debug log to "+logDir+"/"+logFileName)
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	logger, closeLog := setupLogging(*debugFlag)
	defer closeLog()

	settings := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "space-dozer: %v\n", err)
			return 2
		}
		settings = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "space-dozer: %v\n", err)
		return 1
	}
	core.SetTeardown(screen.Fini)
	defer screen.Fini()

	cols, rows := screen.Size()
	grid := entity.FromTerminal(cols, rows, settings.MaxWidth, settings.MaxHeight)
	renderer := render.NewRenderer(screen, settings)

	game, err := engine.NewGame(settings, grid, screen, renderer, engine.WithLogger(logger))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "space-dozer: %v\n", err)
		return 1
	}

	summary := game.Run(ctx)
	logger.Infow("game over",
		zap.Stringer("reason", summary.Reason),
		zap.Int("kills", summary.Kills),
		zap.Int("score", summary.Score),
	)

	renderer.Scoreboard(summary)
	holdScoreboard(ctx, screen, settings.ScoreboardHold)
	screen.Fini()

	if err := render.WriteReport(os.Stdout, summary, true); err != nil {
		logger.Errorw("write report", zap.Error(err))
	}
	if summary.Reason == engine.ReasonInterrupted {
		return 130
	}
	return 0
}

// holdScoreboard leaves the scoreboard up until a key press, the hold
// elapses, or ctx is done
func holdScoreboard(ctx context.Context, keys engine.KeySource, hold time.Duration) {
	if hold <= 0 {
		return
	}
	deadline := time.NewTimer(hold)
	defer deadline.Stop()
	poll := time.NewTicker(20 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			return
		case <-poll.C:
			if _, ok := keys.PollKey(); ok {
				return
			}
		}
	}
}
