// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the theorem-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the theorem-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "theorem-engine",
	Short: "Extract structured mathematical statements from LaTeX documents",
	Long: `theorem-engine extracts definitions, theorems, lemmas, propositions, and
corollaries (with their proofs, labels, and cross-references) from LaTeX
source, producing normalized statement records for formalization tooling.

Use parse to extract from a single document, and catalog to persist,
query, and export statements across documents.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./theorem-engine.yaml or ~/.config/theorem-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("theorem-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "theorem-engine"))
		}
	}

	viper.SetEnvPrefix("THEOREM_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
