package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/afkctl/afk/pkg/animate"
	"github.com/afkctl/afk/pkg/banner"
	"github.com/afkctl/afk/pkg/config"
	"github.com/afkctl/afk/pkg/logging"
	"github.com/afkctl/afk/pkg/output"
	"github.com/afkctl/afk/pkg/reload"
	"github.com/afkctl/afk/pkg/session"
	"github.com/afkctl/afk/pkg/terminal"
)

// runAFK shows the scrolling banner until a key is pressed or the process is
// signalled, then prints the static banner and the session footer.
func runAFK(ctx context.Context, cfg *config.Config, watchPath string) error {
	warnIgnoredSettings(output.NewWithWriter(os.Stderr), cfg)

	sess := session.New(cfg.Reason, nil)

	root, closer, err := logging.Open(logging.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Level:      logging.ParseLevel(cfg.Log.Level),
		Format:     logging.ParseFormat(cfg.Log.Format),
		SessionID:  sess.ID,
	})
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closer.Close()
	logger := logging.WithComponent(root, "afk")

	colors, err := banner.NewColorCycle(banner.DefaultBounds)
	if err != nil {
		return err
	}
	source, err := banner.NewPatternSource(banner.AFK(), cfg.Gap)
	if err != nil {
		return err
	}
	buffer := banner.NewScrollBuffer(source, colors, cfg.Colored())

	term, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reasons <-chan string
	if watchPath != "" {
		reasons = reload.Reasons(ctx, watchPath, logging.WithComponent(root, "reload"))
	}

	var once sync.Once
	restore := func() {
		once.Do(func() {
			_, _ = io.WriteString(term.Out(), terminal.LeaveAltScreen+terminal.EnableAutowrap+terminal.ShowCursor)
			if err := term.Close(); err != nil {
				logger.Warn("restoring terminal", "error", err)
			}
		})
	}
	defer restore()

	if _, err := io.WriteString(term.Out(), terminal.DisableAutowrap+terminal.HideCursor+terminal.EnterAltScreen); err != nil {
		return fmt.Errorf("preparing terminal: %w", err)
	}

	logger.Info("session started",
		"reason", cfg.Reason,
		"speed", string(cfg.Speed),
		"gap", cfg.Gap,
		"colored", cfg.Colored(),
		"watch", watchPath != "")

	loop := animate.NewLoop(animate.Options{
		Buffer:        buffer,
		Session:       sess,
		Out:           term.Out(),
		Width:         term.Width,
		Ticker:        animate.NewTicker(cfg.Speed.FrameDelay()),
		Keys:          term.Keys(ctx),
		Reasons:       reasons,
		ShowTimestamp: cfg.ShowTimestamp(),
		Logger:        logging.WithComponent(root, "animate"),
	})
	runErr := loop.Run(ctx)

	sess.Timer.Finish()
	restore()

	if runErr != nil {
		logger.Error("animation stopped", "error", runErr)
		return runErr
	}

	printFinale(output.New(), cfg, sess, loop.Frames(), logger)
	return nil
}

// printFinale writes the static banner, the footer, and the optional summary.
func printFinale(printer *output.Printer, cfg *config.Config, sess *session.Session, frames int, logger *slog.Logger) {
	var rows []string
	colors, err := banner.NewColorCycle(banner.DefaultBounds)
	if err != nil {
		rows = banner.RenderStatic(banner.BAK(), nil, false)
	} else {
		colors.SkipRandom(rand.IntN)
		rows = banner.RenderStatic(banner.BAK(), colors, cfg.Colored())
	}

	footer, _ := sess.Footer(cfg.ShowTimestamp())
	printer.Finale(rows, footer)

	if cfg.Summary {
		printer.Session(output.SessionSummary{
			ID:     sess.ID,
			Left:   sess.Timer.FormatStart(),
			Back:   sess.Timer.FormatEnd(),
			Away:   sess.Timer.FormatDuration(),
			Reason: sess.Reason,
			Frames: frames,
		})
	}

	printer.SetDebug(logging.ParseLevel(cfg.Log.Level) <= slog.LevelDebug)
	if cfg.Log.File != "" {
		printer.Debug("session log written", "path", cfg.Log.File, "session", sess.ID)
	}

	logger.Info("session finished",
		"away", sess.Timer.Elapsed(),
		"frames", frames,
		"reason", sess.Reason)
}

// warnIgnoredSettings reports settings that cannot take effect. It runs
// before the screen is taken over so the warning stays visible afterwards.
func warnIgnoredSettings(printer *output.Printer, cfg *config.Config) {
	if cfg.Log.File != "" {
		return
	}
	defaults := config.Default().Log
	if !strings.EqualFold(cfg.Log.Level, defaults.Level) || !strings.EqualFold(cfg.Log.Format, defaults.Format) {
		printer.Warn("log settings have no effect without a log file",
			"level", cfg.Log.Level,
			"format", cfg.Log.Format)
	}
}
