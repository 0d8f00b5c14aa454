package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tabstaff/tabstaff"
	"github.com/tabstaff/tabstaff/config"
	"github.com/tabstaff/tabstaff/doc"
	"github.com/tabstaff/tabstaff/staff"
	"github.com/tabstaff/tabstaff/tab"
)

var (
	outDir   string
	toStdout bool
	plain    bool
)

var engraveCmd = &cobra.Command{
	Use:   "engrave <file>...",
	Short: "Engrave tab files as staff notation",
	Long: `Engrave parses each tab file and writes the staff rendition next to it,
as <name>_staff.html, or as <name>_staff.txt with --plain.`,
	Args: cobra.MinimumNArgs(1),
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
			if err := engraveFile(filename, cfg, legend); err != nil {
				slog.Error("engraving failed", "file", filename, "error", err)
				return fmt.Errorf("%v: %w", filename, err)
			}
		}
		return nil
	},
}

func init() {
	engraveCmd.Flags().StringVarP(&outDir, "output", "o", "", "directory to write output files to")
	engraveCmd.Flags().BoolVar(&toStdout, "stdout", false, "write to standard output instead of a file")
	engraveCmd.Flags().BoolVar(&plain, "plain", false, "write plain text instead of HTML")
	rootCmd.AddCommand(engraveCmd)
}

func engraveFile(filename string, cfg config.Config, legend tabstaff.Legend) error {
	song, err := parseFile(filename, cfg, legend)
	if err != nil {
		return err
	}
	text, err := staff.RenderSong(song)
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	var buf bytes.Buffer
	ext := "_staff.html"
	if plain {
		buf.WriteString(text)
		buf.WriteByte('\n')
		ext = "_staff.txt"
	} else if err := doc.WrapHTML(&buf, base, text); err != nil {
		return err
	}
	if toStdout {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	out, err := outputPath(filename, base+ext)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	slog.Info("engraved", "input", filename, "output", out, "measures", song.NumMeasures())
	return nil
}

func parseFile(filename string, cfg config.Config, legend tabstaff.Legend) (*tabstaff.Song, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return tab.Parse(lines, cfg.ParserOptions(legend))
}

// outputPath places name next to the input file, or under --output when
// given, creating the directory if needed.
func outputPath(input, name string) (string, error) {
	dir := filepath.Dir(input)
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
		dir = outDir
	}
	return filepath.Join(dir, name), nil
}
