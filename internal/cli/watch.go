// Package cli — watch.go implements the "sheen watch" command.
//
// Watch keeps the generated artifacts in sync with the upstream theme
// selection: it regenerates once up front, then watches the upstream
// state and config directories and reruns generation (debounced) on
// every relevant change, until interrupted.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmr-tortoise/sheen/internal/model"
	"github.com/mmr-tortoise/sheen/internal/watch"
)

// NewWatchCommand creates the "watch" cobra command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate artifacts when the upstream theme changes",
		Long: `Generate all artifacts, then keep watching the upstream state and
config directories. Whenever the theme selection or a theme definition
changes, the full artifact tree is regenerated so every running tool
can pick up the new palette.

Runs until interrupted (Ctrl-C).`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context())
		},
	}
}

// runWatch generates once, then blocks regenerating on changes until
// the process is signalled.
func runWatch(ctx context.Context) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Regeneration re-resolves the palette each time: a theme switch in
	// the upstream tool changes which theme JSON is read, not just its
	// contents.
	regenerate := func(ctx context.Context) error {
		writer, colors, err := newWriter(cfg, cfg.OutputDir, logger)
		if err != nil {
			return err
		}
		written, err := writer.Write(colors)
		if err != nil {
			return err
		}
		logger.Info("artifacts regenerated", zap.Int("files", len(written)))
		return nil
	}

	// Initial generation so the watcher starts from a consistent tree.
	if err := regenerate(ctx); err != nil {
		return model.WrapCLIError(model.ExitWriteFailed, "initial generation failed", err)
	}

	dirs := []string{
		filepath.Join(cfg.StateDir, "opencode"),
		cfg.UpstreamConfigDir,
		filepath.Join(cfg.UpstreamConfigDir, "themes"),
	}

	w, err := watch.New(dirs, regenerate, logger)
	if err != nil {
		return model.WrapCLIError(model.ExitWatchFailed, "failed to create watcher", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		return model.WrapCLIError(model.ExitWatchFailed, "failed to start watcher", err)
	}
	defer w.Stop()

	if !IsJSONOutput() {
		fmt.Printf("Watching for theme changes (output: %s). Press Ctrl-C to stop.\n", cfg.OutputDir)
	}

	<-ctx.Done()
	return nil
}
