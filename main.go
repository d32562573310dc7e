package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	app "github.com/rocketscienceinc/tictactoe-terminal/internal"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
)

// version is overridable at link time.
var version = "dev"

// main - is the entry point of the application. It parses flags and runs the selected command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	boardSize  int
	winCheck   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Tic-Tac-Toe in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(cmd, flags)
			logger, closeLog := initLogger(conf)
			defer closeLog()

			if err := app.RunApp(logger, conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	bindFlags(rootCmd.PersistentFlags(), flags)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "scores",
		Short: "Print the recorded scoreboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(cmd, flags)
			logger, closeLog := initLogger(conf)
			defer closeLog()

			return app.PrintScores(cmd.Context(), logger, conf, cmd.OutOrStdout())
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tictactoe %s\n", version)
		},
	})

	return rootCmd
}

func bindFlags(fs *pflag.FlagSet, flags *rootFlags) {
	fs.StringVarP(&flags.configPath, "config", "c", defaultConfigPath(), "path to the config file")
	fs.IntVarP(&flags.boardSize, "size", "n", 0, "board size, overrides the config")
	fs.StringVar(&flags.winCheck, "win-check", "", "when to look for a winner: board-full or every-turn")
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		return "config.yml"
	}

	return filepath.Join(baseDir, "config.yml")
}

// initialize config.
func initConfig(cmd *cobra.Command, flags *rootFlags) *config.Config {
	conf := config.MustLoad(flags.configPath)

	if cmd.Flags().Changed("size") {
		conf.BoardSize = flags.boardSize
	}

	if cmd.Flags().Changed("win-check") {
		conf.WinCheck = flags.winCheck
	}

	return conf
}

// initialize logger. The terminal belongs to the game, so logs go to the
// configured file or nowhere.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var w io.Writer = io.Discard
	closeLog := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		w = file
		closeLog = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), closeLog
}
