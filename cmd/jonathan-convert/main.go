// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the jonathan-convert CLI. It parses
// the root directory argument and flags, runs the conversion pipeline, and
// waits for a keypress so the console window stays open on Windows.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/jonathan-convert/internal/pipeline"
	"github.com/pdiddy/jonathan-convert/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the jonathan-convert CLI.
var rootCmd = &cobra.Command{
	Use:   "jonathan-convert [directory]",
	Short: "Convert 'Jonathan' game assets to modern formats",
	Long: `jonathan-convert batch-converts the asset directories of the legacy
'Jonathan' adventure game. The PCX files in the GRAFIK directory are
converted to PNG files and written to the new directory GRAFIK_PNG. The
TCT files in the TEXT directory are converted to UTF-8 text files and
written to the new directory TEXT_TXT.

The optional directory argument is the root directory of the game; by
default the current directory is used.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg := types.PipelineConfig{
			Workers:     viper.GetInt("workers"),
			ReportPath:  viper.GetString("report"),
			CatalogPath: viper.GetString("catalog"),
		}

		fmt.Printf("jonathan-convert %s\n\n", version)
		return pipeline.Run(root, cfg, os.Stdout)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./jonathan-convert.yaml or ~/.config/jonathan-convert/config.yaml)")

	rootCmd.Flags().Int("workers", 0, "concurrent file conversions per job (default: all CPUs)")
	rootCmd.Flags().String("report", "", "write a YAML run report to this path")
	rootCmd.Flags().String("catalog", "", "record per-file outcomes in a SQLite catalog at this path")
	rootCmd.Flags().Bool("no-pause", false, "exit without waiting for return")

	viper.BindPFlag("workers", rootCmd.Flags().Lookup("workers"))
	viper.BindPFlag("report", rootCmd.Flags().Lookup("report"))
	viper.BindPFlag("catalog", rootCmd.Flags().Lookup("catalog"))
	viper.BindPFlag("no-pause", rootCmd.Flags().Lookup("no-pause"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("jonathan-convert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "jonathan-convert"))
		}
	}

	viper.SetEnvPrefix("JONATHAN_CONVERT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pause blocks until the user presses return. The tool is typically run by
// double-clicking on Windows, where the console closes with the process.
func pause() {
	fmt.Print("Press return to continue...")
	var buf [1]byte
	os.Stdin.Read(buf[:])
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	if !viper.GetBool("no-pause") {
		pause()
	}
	if err != nil {
		os.Exit(1)
	}
}
