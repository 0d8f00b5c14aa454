// Package config loads and validates the run options from a yaml file.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tabstaff/tabstaff"
	"github.com/tabstaff/tabstaff/tab"
)

//go:embed default.yml
var defaultSource []byte

// DefaultFilename is where the configuration is looked for when no path is
// given on the command line.
const DefaultFilename = "tabstaff.yml"

// Config is the validated set of run options. Every field is populated
// after a successful Parse or Load.
type Config struct {
	TimingSupplied bool   `yaml:"timingsupplied"`
	GapSize        int    `yaml:"gapsize"`
	TabSpacing     int    `yaml:"tabspacing"`
	HasExtraText   bool   `yaml:"hasextratext"`
	KeepExtraText  bool   `yaml:"keepextratext"`
	PlayingLegend  string `yaml:"playinglegend"`
	TimingSymbols  string `yaml:"timingsymbols"`
}

var defaults = Config{
	TimingSupplied: false,
	GapSize:        3,
	TabSpacing:     8,
	HasExtraText:   true,
	KeepExtraText:  true,
	PlayingLegend:  "",
	TimingSymbols:  "+.WHQESTFO",
}

// Default returns the built-in configuration.
func Default() Config {
	return defaults
}

// DefaultSource returns the commented default configuration document.
func DefaultSource() []byte {
	return defaultSource
}

// Parse decodes a configuration document on top of the defaults and
// validates the result. Unknown keys are an error.
func Parse(data []byte) (Config, error) {
	c := defaults
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &tabstaff.ConfigError{Reason: err.Error()}
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the configuration file at path. A missing file is not an
// error: the defaults are returned and found reports what happened.
func Load(path string) (cfg Config, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return Config{}, false, fmt.Errorf("reading configuration: %w", err)
	}
	cfg, err = Parse(data)
	return cfg, true, err
}

// WriteDefault writes the commented default configuration document to path.
func WriteDefault(path string) error {
	return os.WriteFile(path, defaultSource, 0644)
}

func (c Config) validate() error {
	if c.GapSize < 0 {
		return &tabstaff.ConfigError{Option: "gapsize", Reason: "must not be negative"}
	}
	if c.TabSpacing < 0 {
		return &tabstaff.ConfigError{Option: "tabspacing", Reason: "must not be negative"}
	}
	if c.KeepExtraText && !c.HasExtraText {
		return &tabstaff.ConfigError{Option: "keepextratext", Reason: "cannot keep extra text when hasextratext is false"}
	}
	_, err := tabstaff.NewLegend(c.TimingSymbols, c.PlayingLegend)
	return err
}

// Legend builds the legend tables for the configured symbols.
func (c Config) Legend() (tabstaff.Legend, error) {
	return tabstaff.NewLegend(c.TimingSymbols, c.PlayingLegend)
}

// ParserOptions bundles the options the tab parser consumes.
func (c Config) ParserOptions(legend tabstaff.Legend) tab.Options {
	return tab.Options{
		Legend:         legend,
		TimingSupplied: c.TimingSupplied,
		HasExtraText:   c.HasExtraText,
		KeepExtraText:  c.KeepExtraText,
		TabWidth:       c.TabSpacing,
		GapSize:        c.GapSize,
	}
}
