// Package cli — env.go implements the "sheen env" command.
//
// Env prints the export lines for the environment variables that hint
// embedded tools (bat, fzf, neovim) about the active palette. Intended
// to be evaluated in the shell:
//
//	eval "$(sheen env)"
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/sheen/internal/model"
	"github.com/mmr-tortoise/sheen/internal/theme"
)

// NewEnvCommand creates the "env" cobra command.
func NewEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print theme environment variable exports",
		Long: `Resolve the active palette and print export lines for the environment
variables that describe it (COLORFGBG, BAT_THEME, FZF_DEFAULT_OPTS and
friends). Evaluate the output in your shell:

  eval "$(sheen env)"`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnv()
		},
	}
}

// runEnv resolves the palette and prints its environment exports.
func runEnv() error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
	}

	loader := &theme.Loader{
		ConfigDir:  cfg.UpstreamConfigDir,
		StateDir:   cfg.StateDir,
		ProjectDir: cwd,
		SharePaths: cfg.SharePaths,
		Log:        logger,
	}

	printEnvVars(theme.EnvVars(loader.Load()))
	return nil
}

// printEnvVars outputs the variables as export lines or JSON.
func printEnvVars(vars []theme.EnvVar) {
	if IsJSONOutput() {
		env := make(map[string]string, len(vars))
		for _, v := range vars {
			env[v.Name] = v.Value
		}
		data, _ := json.MarshalIndent(env, "", "  ")
		fmt.Println(string(data))
		return
	}

	for _, v := range vars {
		fmt.Println(exportLine(v))
	}
}

// exportLine renders one export statement, single-quoting the value.
// Single quotes inside the value are closed-escaped-reopened, the
// POSIX idiom, so the line is safe to eval in both zsh and bash.
func exportLine(v theme.EnvVar) string {
	quoted := strings.ReplaceAll(v.Value, "'", `'\''`)
	return fmt.Sprintf("export %s='%s'", v.Name, quoted)
}
