// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and export the domain catalog",
	Long: `Catalog lists the built-in (plus overlay) intents, room types, and
materials, or exports the full catalog to YAML or JSON.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list (intents|rooms|materials)",
	Short: "List one catalog table",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg := assistantConfig(cmd)
	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	switch args[0] {
	case "intents":
		fmt.Printf("%-22s  %-14s  %s\n", "Name", "Category", "Keywords")
		fmt.Println(strings.Repeat("-", 72))
		for _, in := range cat.Intents() {
			fmt.Printf("%-22s  %-14s  %s\n", in.Name, in.Category, strings.Join(in.Keywords, ", "))
		}
	case "rooms":
		rooms := cat.RoomTypes()
		fmt.Printf("%-16s  %-10s  %-8s  %s\n", "Room type", "Default", "Min", "Synonyms")
		fmt.Println(strings.Repeat("-", 72))
		for _, k := range sortedKeys(rooms) {
			def := rooms[k]
			fmt.Printf("%-16s  %-10s  %-8s  %s\n",
				def.CanonicalName,
				fmt.Sprintf("%gm²", def.DefaultArea),
				fmt.Sprintf("%gm²", def.MinArea),
				strings.Join(def.Synonyms, ", "))
		}
	case "materials":
		materials := cat.Materials()
		fmt.Printf("%-14s  %-12s  %-10s  %s\n", "Material", "Category", "Structural", "Synonyms")
		fmt.Println(strings.Repeat("-", 72))
		for _, k := range sortedKeys(materials) {
			def := materials[k]
			fmt.Printf("%-14s  %-12s  %-10t  %s\n",
				def.CanonicalName, def.Category, def.IsStructural, strings.Join(def.Synonyms, ", "))
		}
	default:
		return fmt.Errorf("unknown table %q: use intents, rooms, or materials", args[0])
	}
	return nil
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full catalog to YAML or JSON",
	RunE:  runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := assistantConfig(cmd)
	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	switch format {
	case "yaml", "":
		return cat.ExportYAML(os.Stdout)
	case "json":
		return cat.ExportJSON(os.Stdout)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the catalog (with overlay) against its invariants",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := assistantConfig(cmd)
		cat, err := buildCatalog(cfg.Catalog)
		if err != nil {
			return err
		}
		if err := cat.Validate(); err != nil {
			return err
		}
		fmt.Println("Catalog OK.")
		return nil
	},
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}
