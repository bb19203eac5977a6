// Command cook runs the Cooklang lexer, parser and semantic analyzer
// over recipe files and reports the resulting scalable recipe or
// diagnostics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cook",
	Short: "Analyze Cooklang recipe files",
	Long: `cook parses and semantically analyzes Cooklang recipe files:
reference resolution, mode interactions, unit-compatibility checking
and diagnostic reporting.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
