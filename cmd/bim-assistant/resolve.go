// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve free text to a canonical room type or material",
	Long: `Resolve maps free text to a catalog definition using the three-tier
strategy: direct key match, synonym match, then substring containment.
Unrecognized text is a normal outcome, reported as no match.`,
}

var resolveRoomCmd = &cobra.Command{
	Use:   "room [text]",
	Short: "Resolve a room-type mention",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolveRoom,
}

func runResolveRoom(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	cfg := assistantConfig(cmd)
	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	def := cat.ResolveRoomType(text)
	if def == nil {
		fmt.Printf("No room type matches %q.\n", text)
		return nil
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(def)
	}

	fmt.Printf("Room type:    %s\n", def.CanonicalName)
	fmt.Printf("Area:         default %gm², min %gm²\n", def.DefaultArea, def.MinArea)
	if def.MinWidth > 0 {
		fmt.Printf("Min width:    %gm\n", def.MinWidth)
	}
	var needs []string
	if def.RequiresWindow {
		needs = append(needs, "window")
	}
	if def.RequiresDoor {
		needs = append(needs, "door")
	}
	if def.RequiresPlumbing {
		needs = append(needs, "plumbing")
	}
	if def.RequiresVentilation {
		needs = append(needs, "ventilation")
	}
	if len(needs) > 0 {
		fmt.Printf("Requires:     %s\n", strings.Join(needs, ", "))
	}
	if len(def.AdjacentPreferred) > 0 {
		fmt.Printf("Adjacent to:  %s\n", strings.Join(def.AdjacentPreferred, ", "))
	}
	return nil
}

var resolveMaterialCmd = &cobra.Command{
	Use:   "material [text]",
	Short: "Resolve a material mention",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolveMaterial,
}

func runResolveMaterial(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	cfg := assistantConfig(cmd)
	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	def := cat.ResolveMaterial(text)
	if def == nil {
		fmt.Printf("No material matches %q.\n", text)
		return nil
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(def)
	}

	fmt.Printf("Material:   %s\n", def.CanonicalName)
	fmt.Printf("Category:   %s\n", def.Category)
	fmt.Printf("Structural: %t\n", def.IsStructural)
	return nil
}

func init() {
	resolveRoomCmd.Flags().Bool("json", false, "output the definition as JSON")
	resolveMaterialCmd.Flags().Bool("json", false, "output the definition as JSON")

	resolveCmd.AddCommand(resolveRoomCmd)
	resolveCmd.AddCommand(resolveMaterialCmd)
	rootCmd.AddCommand(resolveCmd)
}
