// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshintelligence/bim-assistant/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify a command against the intent catalog",
	Long: `Classify scores the input against every catalog intent using example-phrase
and keyword matching, and reports the best intent with its confidence and
the keywords that matched. A result below the confidence floor reports no
intent; callers should ask for clarification rather than act.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	cfg := assistantConfig(cmd)
	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	result := classify.New(cat, cfg.Classifier).Classify(text)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.Intent == nil {
		fmt.Printf("No intent match (confidence %.2f).\n", result.Confidence)
		return nil
	}

	fmt.Printf("Intent:     %s (%s)\n", result.Intent.Name, result.Intent.Category)
	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	if len(result.MatchedKeywords) > 0 {
		fmt.Printf("Keywords:   %s\n", strings.Join(result.MatchedKeywords, ", "))
	}
	if !result.IsConfident() {
		fmt.Println("Below the confident-match threshold; treat as a clarification case.")
	}
	return nil
}

func init() {
	classifyCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(classifyCmd)
}
