package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tabstaff/tabstaff/config"
	"github.com/tabstaff/tabstaff/version"
)

var writeConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration, or write it with --write",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !writeConfig {
			fmt.Print(string(config.DefaultSource()))
			return nil
		}
		if err := config.WriteDefault(configPath); err != nil {
			return err
		}
		slog.Info("default configuration written", "path", configPath)
		fmt.Printf("wrote %v\n", configPath)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.VersionOrHash)
	},
}

func init() {
	configCmd.Flags().BoolVar(&writeConfig, "write", false, "write the default configuration file")
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
