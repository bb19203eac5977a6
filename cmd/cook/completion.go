package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

// completeCookFiles provides shell completion for .cook files by
// running filepath.Glob against the partial argument.
func completeCookFiles(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	pattern := toComplete + "*.cook"
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	if len(matches) == 0 && toComplete == "" {
		matches, _ = filepath.Glob("*.cook")
	}
	return matches, cobra.ShellCompDirectiveNoSpace
}
