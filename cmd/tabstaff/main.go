// Command tabstaff converts plain-text bass tablature files into engraved
// staff notation, with optional MIDI export for proof-listening.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tabstaff/tabstaff/config"
	"github.com/tabstaff/tabstaff/version"
)

var (
	configPath string
	logPath    string
	logFile    *os.File
)

var rootCmd = &cobra.Command{
	Use:           "tabstaff",
	Short:         "Convert four-string bass tablature into staff notation",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return openLog()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFilename, "configuration file")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "tabstaff.log", "run log file")
}

// openLog points the default slog logger at the run log, which grows across
// sessions so earlier runs stay inspectable.
func openLog() error {
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logFile = f
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	slog.Info("session started", "version", version.VersionOrHash, "os", runtime.GOOS, "arch", runtime.GOARCH)
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// loadConfig resolves the run options, falling back to the built-in
// defaults when no configuration file exists.
func loadConfig() (config.Config, error) {
	cfg, found, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if found {
		slog.Info("configuration loaded", "path", configPath)
	} else {
		slog.Warn("configuration file not found, using defaults", "path", configPath)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("run failed", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "tabstaff: %v\n", err)
		os.Exit(1)
	}
}
