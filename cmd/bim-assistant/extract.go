// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshintelligence/bim-assistant/internal/extract"
	"github.com/meshintelligence/bim-assistant/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract typed entities from command text",
	Long: `Extract runs both extraction passes over the input: the catalog pass
(element types, room types, materials, directions) and the lexical pass
(dimensions, numbers, colors, performance specs, compliance standards,
climate zones, project types). Dimensions normalize to millimeters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	cfg := assistantConfig(cmd)
	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	lexicalOnly, _ := cmd.Flags().GetBool("lexical")
	var entities []types.Entity
	if !lexicalOnly {
		entities = cat.ExtractDomainEntities(text)
	}
	entities = append(entities, extract.New().Extract(text)...)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entities)
	}

	if len(entities) == 0 {
		fmt.Println("No entities recognized.")
		return nil
	}

	fmt.Printf("%-20s  %-20s  %-20s  %-6s\n", "Type", "Value", "Normalized", "Conf")
	fmt.Println(strings.Repeat("-", 72))
	for _, e := range entities {
		fmt.Printf("%-20s  %-20s  %-20s  %-6.2f\n", e.Type, e.Value, e.NormalizedValue, e.Confidence)
		for _, key := range []string{"DefaultArea", "MinArea", "IsStructural"} {
			if v, ok := e.Metadata[key]; ok {
				fmt.Printf("%22s%s=%s\n", "", key, v)
			}
		}
	}
	return nil
}

func init() {
	extractCmd.Flags().Bool("json", false, "output entities as JSON")
	extractCmd.Flags().Bool("lexical", false, "run only the lexical pass, skipping the catalog pass")

	rootCmd.AddCommand(extractCmd)
}
