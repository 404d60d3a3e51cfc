// Package cli — generate.go implements the "sheen generate" command.
//
// Generate is the core operation: resolve the active palette, render
// every artifact from it, and write the tree under the output
// directory. All other commands build on its output — install appends
// source lines pointing at generated scripts, watch reruns it on
// upstream changes.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmr-tortoise/sheen/internal/config"
	"github.com/mmr-tortoise/sheen/internal/gen"
	"github.com/mmr-tortoise/sheen/internal/model"
	"github.com/mmr-tortoise/sheen/internal/script"
	"github.com/mmr-tortoise/sheen/internal/theme"
)

// generateFlags holds the flag values for the generate command.
type generateFlags struct {
	output string // --output: override the artifact output directory
}

// NewGenerateCommand creates the "generate" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate integration scripts and theme artifacts",
		Long: `Resolve the active color palette and regenerate all artifacts:
shell integration scripts (OSC 133 prompt markers), the zsh theme,
the zsh trampoline rc files, and themes for neovim, gitui and alacritty.

The palette is read from the upstream tool's theme selection; if none
can be resolved, the built-in default palette is used.

Examples:
  sheen generate
  sheen generate --output ~/.config/sheen/themes
  sheen generate --json`,

		Args: cobra.NoArgs,

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(flags)
		},
	}

	cmd.Flags().StringVar(&flags.output, "output", "", "Output directory (default from config)")

	return cmd
}

// runGenerate resolves the palette and writes the artifact tree.
func runGenerate(flags *generateFlags) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if flags.output != "" {
		outputDir = flags.output
	}

	writer, colors, err := newWriter(cfg, outputDir, logger)
	if err != nil {
		return err
	}

	written, err := writer.Write(colors)
	if err != nil {
		return model.WrapCLIError(model.ExitWriteFailed, "failed to write artifacts", err)
	}

	printGenerateResult(written, writer.ZdotdirPath())
	return nil
}

// newWriter builds the artifact writer and resolves the palette it
// will render. Shared with the watch command, which regenerates with
// the same wiring on every upstream change.
func newWriter(cfg *config.Config, outputDir string, logger *zap.Logger) (*gen.Writer, theme.Colors, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, theme.Colors{}, model.WrapCLIError(model.ExitGeneralError, "failed to determine home directory", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, theme.Colors{}, model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
	}

	loader := &theme.Loader{
		ConfigDir:  cfg.UpstreamConfigDir,
		StateDir:   cfg.StateDir,
		ProjectDir: cwd,
		SharePaths: cfg.SharePaths,
		Log:        logger,
	}

	writer := &gen.Writer{
		Dir:      outputDir,
		Sourcing: script.Sourcing{HomeDir: home},
		Log:      logger,
	}
	return writer, loader.Load(), nil
}

// printGenerateResult outputs the generate results in text or JSON format.
func printGenerateResult(written []string, zdotdir string) {
	if IsJSONOutput() {
		result := struct {
			Files   []string `json:"files"`
			Zdotdir string   `json:"zdotdir"`
		}{Files: written, Zdotdir: zdotdir}

		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Generated %d artifact(s)\n", len(written))
	for _, path := range written {
		fmt.Printf("  %s\n", path)
	}
	fmt.Println()
	fmt.Printf("To launch zsh with the trampoline rc:  ZDOTDIR=%s zsh\n", zdotdir)
}
