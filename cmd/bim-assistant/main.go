// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bim-assistant CLI.
// Implements: prd001-catalog, prd002-classification, prd003-extraction,
//
//	prd004-interpretation (CLI surface).
//
// See docs/ARCHITECTURE.md § Command Interface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintelligence/bim-assistant/internal/catalog"
	"github.com/meshintelligence/bim-assistant/internal/classify"
	"github.com/meshintelligence/bim-assistant/internal/interpret"
	"github.com/meshintelligence/bim-assistant/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bim-assistant CLI.
var rootCmd = &cobra.Command{
	Use:   "bim-assistant",
	Short: "Natural-language command interpretation for BIM models",
	Long: `bim-assistant interprets natural-language building commands: it classifies
the user's intent against a building-domain catalog, matches specialized
consulting patterns, and extracts typed entities (dimensions, room types,
materials, directions, compliance standards).

The host BIM integration dispatches on the interpretation result; this CLI
exposes the same pipeline for inspection and scripting.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bim-assistant.yaml or ~/.config/bim-assistant/config.yaml)")
	rootCmd.PersistentFlags().String("overlay", "", "YAML catalog overlay merged over the built-in catalog")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bim-assistant")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bim-assistant"))
		}
	}

	viper.SetEnvPrefix("BIM_ASSISTANT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// assistantConfig assembles the configuration from the config file, the
// environment, and flags. Flags win over file values.
func assistantConfig(cmd *cobra.Command) types.AssistantConfig {
	cfg := types.AssistantConfig{
		Catalog:     types.CatalogConfig{OverlayPath: viper.GetString("catalog.overlay_path")},
		Classifier:  types.ClassifierConfig{ScoreFloor: viper.GetFloat64("classifier.score_floor")},
		Interpreter: types.InterpreterConfig{MaxSuggestions: viper.GetInt("interpreter.max_suggestions")},
	}
	if overlay, _ := cmd.Flags().GetString("overlay"); overlay != "" {
		cfg.Catalog.OverlayPath = overlay
	}
	return cfg
}

// buildCatalog constructs the catalog, applying the configured overlay.
func buildCatalog(cfg types.CatalogConfig) (*catalog.Catalog, error) {
	cat := catalog.New()
	if cfg.OverlayPath == "" {
		return cat, nil
	}
	return cat.LoadOverlay(cfg.OverlayPath)
}

// buildInterpreter wires the full pipeline from configuration.
func buildInterpreter(cmd *cobra.Command) (*interpret.Interpreter, error) {
	cfg := assistantConfig(cmd)
	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	return interpret.New(cat, classify.DefaultRegistry(), cfg.Interpreter), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
