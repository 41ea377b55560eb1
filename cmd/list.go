package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCategory string

type techniqueEntry struct {
	name        string
	category    string
	description string
}

// techniqueCatalog enumerates every strategy family, grouped the way
// original_source's handle_list does: one line per technique with its
// category and a short description.
var techniqueCatalog = []techniqueEntry{
	{"path_bypass", "path", "Trailing-slash, traversal, null-byte, semicolon, and dot-segment path mutations"},
	{"url_encoding", "encoding", "Single/double/triple percent-encoding, HTML-entity, Unicode-escape, mixed, and partial encoding"},
	{"header_forge", "header", "X-Forwarded-For, path-rewrite, Host-override, and auth-spoof header families"},
	{"protocol_abuse", "protocol", "Method-name variants, HTTP-version downgrades, duplicate/conflicting header rewrites"},
	{"unicode_normalization", "unicode", "NFD decomposition, zero-width insertion, and bidi/LTR override wraps"},
	{"unicode_homograph", "unicode", "Cyrillic, Greek, diacritic, full-width, and math-bold confusable substitution"},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Enumerate available bypass techniques",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out string
		for _, t := range techniqueCatalog {
			if listCategory != "" && t.category != listCategory {
				continue
			}
			out += fmt.Sprintf("%-24s %-10s %s\n", t.name, t.category, t.description)
		}
		return writeReport(out)
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category: path, encoding, header, protocol, unicode")
}
