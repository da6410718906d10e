// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package interpret

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatTable writes an interpretation result as a human-readable report to w.
func FormatTable(r Result, w io.Writer) {
	if r.IntentName == "" {
		fmt.Fprintln(w, "No confident intent match.")
	} else {
		fmt.Fprintf(w, "Intent: %s (%.2f)\n", r.IntentName, r.Confidence)
	}
	if len(r.Classification.MatchedKeywords) > 0 {
		fmt.Fprintf(w, "Matched keywords: %s\n", strings.Join(r.Classification.MatchedKeywords, ", "))
	}
	if r.Pattern != nil {
		fmt.Fprintf(w, "Pattern: %s %q -> %s (%.2f)\n",
			r.Pattern.Type, r.Pattern.Expr, r.Pattern.IntentName, r.Pattern.Confidence)
	}

	if len(r.Entities) > 0 {
		fmt.Fprintf(w, "\n%-20s  %-20s  %-20s  %-6s  %s\n",
			"Type", "Value", "Normalized", "Conf", "Metadata")
		fmt.Fprintln(w, strings.Repeat("-", 90))
		for _, e := range r.Entities {
			fmt.Fprintf(w, "%-20s  %-20s  %-20s  %-6.2f  %s\n",
				e.Type, truncate(e.Value, 20), truncate(e.NormalizedValue, 20),
				e.Confidence, formatMetadata(e.Metadata))
		}
	}

	if len(r.Suggestions) > 0 {
		fmt.Fprintln(w, "\nDid you mean:")
		for _, s := range r.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
}

// FormatJSON writes the result as indented JSON to w.
func FormatJSON(r Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// formatMetadata renders a metadata map as stable "k=v" pairs. The known
// keys are listed explicitly to keep output order deterministic.
func formatMetadata(meta map[string]string) string {
	if len(meta) == 0 {
		return ""
	}
	var parts []string
	for _, key := range []string{"DefaultArea", "MinArea", "IsStructural"} {
		if v, ok := meta[key]; ok {
			parts = append(parts, key+"="+v)
		}
	}
	for k, v := range meta {
		switch k {
		case "DefaultArea", "MinArea", "IsStructural":
		default:
			parts = append(parts, k+"="+v)
		}
	}
	return strings.Join(parts, " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
