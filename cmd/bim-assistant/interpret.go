// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintelligence/bim-assistant/internal/interpret"
)

var interpretCmd = &cobra.Command{
	Use:   "interpret [text]",
	Short: "Run the full interpretation pipeline over a command",
	Long: `Interpret combines pattern dispatch, intent classification, and both
entity extraction passes, reporting the dispatch intent, matched patterns,
entities, and clarification suggestions for low-confidence input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInterpret,
}

func runInterpret(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	if n, _ := cmd.Flags().GetInt("suggest"); n > 0 {
		viper.Set("interpreter.max_suggestions", n)
	}
	interpreter, err := buildInterpreter(cmd)
	if err != nil {
		return err
	}

	result := interpreter.Interpret(text)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return interpret.FormatJSON(result, os.Stdout)
	}
	interpret.FormatTable(result, os.Stdout)
	return nil
}

func init() {
	interpretCmd.Flags().Bool("json", false, "output the result as JSON")
	interpretCmd.Flags().Int("suggest", 0, "number of suggestions for low-confidence input (0 = config default)")

	rootCmd.AddCommand(interpretCmd)
}
