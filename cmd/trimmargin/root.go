package main

import (
	"io"
	"log/slog"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/example/trimmargin/internal/buildinfo"
	"github.com/example/trimmargin/internal/config"
	"github.com/example/trimmargin/internal/logging"
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	var (
		cfgFile   string
		activeCfg config.Config
		logger    *slog.Logger
	)

	cmd := &cobra.Command{
		Use:   "trimmargin [FILE]",
		Short: "Strip incidental margins and indentation from text",
		Long: heredoc.Doc(`
			Kotlin-style trimMargin / trimIndent utilities.

			Reads FILE (or stdin when FILE is omitted or "-"), applies the selected
			mode and writes the result to stdout without a trailing newline.
			The first and last lines are dropped when blank and every line
			ending is normalized to "\n".

			Settings may also come from TRIMMARGIN_* environment variables or a
			trimmargin.yaml|toml|json file in the working directory.
		`),
		Example: heredoc.Doc(`
			# Strip "|" margins from stdin
			printf '\n    |hi\n    |there\n' | trimmargin

			# Replace a custom margin with a quote marker
			trimmargin --mode replace-by-margin -p '#' -n '> ' notes.txt

			# Remove the common indent of a block
			trimmargin --mode trim-indent snippet.txt
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			logger = setupLogger(cmd.ErrOrStderr(), loaded)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			input, err := readInput(cmd.Context(), path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			logger.Debug("input read",
				"source", path,
				"bytes", len(input),
				"version", buildinfo.Version,
				"commit", buildinfo.Commit,
				"built", buildinfo.Date,
			)

			out, err := transform(input, activeCfg)
			if err != nil {
				return err
			}
			logger.Debug("transformed", "mode", activeCfg.Mode, "bytes", len(out))

			return writeOutput(cmd.OutOrStdout(), out)
		},
	}

	cmd.SetVersionTemplate(buildinfo.Template())
	cmd.Flags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.Flags(), defaults)

	return cmd
}

// setupLogger builds the stderr logger. An unknown level falls back to info.
func setupLogger(w io.Writer, cfg config.Config) *slog.Logger {
	lvl, err := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(w, lvl, cfg.LogFormat)
	if err != nil {
		logger.Warn("falling back to info level", "error", err)
	}
	return logger
}
