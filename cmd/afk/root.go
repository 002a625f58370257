package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/afkctl/afk/pkg/config"
	"github.com/afkctl/afk/pkg/output"

	"github.com/spf13/cobra"
)

var (
	rootWithoutColor     bool
	rootWithoutTimestamp bool
	rootSpeed            string
	rootGap              int
	rootConfig           string
	rootWatch            bool
	rootLogFile          string
	rootLogLevel         string
	rootSummary          bool
)

var rootCmd = &cobra.Command{
	Use:   "afk [reason]",
	Short: "Show a scrolling AFK banner until a key is pressed",
	Long: `afk fills the terminal with a scrolling "AFK" banner that follows the
window width, and waits for any key. When you are back it prints a
"BAK" banner together with how long you were away and why.

Settings can also be read from a YAML or JSON config file (--config or
$AFK_CONFIG). Flags given on the command line win over the file.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := resolveConfig(cmd, args)
		if err != nil {
			return err
		}
		return runAFK(cmd.Context(), cfg, path)
	},
}

func init() {
	addRootFlags(rootCmd)
}

func addRootFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&rootWithoutColor, "without-color", "C", false, "Disable color output")
	cmd.Flags().BoolVarP(&rootWithoutTimestamp, "without-timestamp", "T", false, "Disable timestamp output")
	cmd.Flags().StringVarP(&rootSpeed, "speed", "s", string(config.SpeedNormal), "Set the speed of the animation (fast, normal, slow)")
	cmd.Flags().IntVar(&rootGap, "gap", config.Default().Gap, "Blank columns between banner loops")
	cmd.Flags().StringVarP(&rootConfig, "config", "c", "", "Read settings from a YAML or JSON config file")
	cmd.Flags().BoolVarP(&rootWatch, "watch", "w", false, "Reload the reason when the config file changes")
	cmd.Flags().StringVar(&rootLogFile, "log-file", "", "Write diagnostic logs to this file")
	cmd.Flags().StringVar(&rootLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&rootSummary, "summary", false, "Print a session table when you are back")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.NewWithWriter(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}

// resolveConfig merges the config file, if any, with the command line. It
// returns the config file path so it can be watched.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	path := rootConfig
	if path == "" {
		path = os.Getenv("AFK_CONFIG")
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if len(args) == 1 {
		cfg.Reason = args[0]
	}
	if flags.Changed("without-color") {
		cfg.WithoutColor = rootWithoutColor
	}
	if flags.Changed("without-timestamp") {
		cfg.WithoutTimestamp = rootWithoutTimestamp
	}
	if flags.Changed("speed") {
		cfg.Speed = config.Speed(strings.ToLower(strings.TrimSpace(rootSpeed)))
	}
	if flags.Changed("gap") {
		cfg.Gap = rootGap
	}
	if flags.Changed("log-file") {
		cfg.Log.File = rootLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = rootLogLevel
	}
	if flags.Changed("summary") {
		cfg.Summary = rootSummary
	}

	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}

	if rootWatch {
		if path == "" {
			return nil, "", errors.New("--watch needs a config file (--config or $AFK_CONFIG)")
		}
		return cfg, path, nil
	}
	return cfg, "", nil
}
