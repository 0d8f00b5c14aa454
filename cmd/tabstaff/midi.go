package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tabstaff/tabstaff/midi"
)

var midiCmd = &cobra.Command{
	Use:   "midi <file>...",
	Short: "Export tab files as Standard MIDI Files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		legend, err := cfg.Legend()
		if err != nil {
			return err
		}
		for _, filename := range args {
			song, err := parseFile(filename, cfg, legend)
			if err != nil {
				slog.Error("midi export failed", "file", filename, "error", err)
				return fmt.Errorf("%v: %w", filename, err)
			}
			var buf bytes.Buffer
			if err := midi.Export(song, &buf); err != nil {
				return fmt.Errorf("%v: %w", filename, err)
			}
			base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
			out, err := outputPath(filename, base+".mid")
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			slog.Info("midi exported", "input", filename, "output", out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(midiCmd)
}
