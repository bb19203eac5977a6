package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kjhallgren/cookscale/analysis"
	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/convert"
	"github.com/kjhallgren/cookscale/diag"
	"github.com/kjhallgren/cookscale/parser"
	"github.com/kjhallgren/cookscale/refcheck"
)

var (
	analyzeJSON   bool
	analyzeConfig string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <recipe-file>",
	Short: "Parse and semantically analyze a Cooklang recipe",
	Long: `Run the lexer, parser and semantic analyzer over a recipe file and
report the resulting scalable recipe -- metadata, sections, steps and
their ingredient/cookware/timer references -- or the diagnostics raised
along the way.

Examples:
  cook analyze recipe.cook
  cook analyze recipe.cook --json`,
	Args:              cobra.ExactArgs(1),
	RunE:              runAnalyze,
	ValidArgsFunction: completeCookFiles,
}

func init() {
	analyzeCmd.Flags().BoolVarP(&analyzeJSON, "json", "j", false, "Output the recipe and diagnostics as JSON")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config-dir", "C", ".", "Directory to look for .cook.toml in")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	cfg, err := loadConfig(analyzeConfig)
	if err != nil {
		return fmt.Errorf("loading .cook.toml: %w", err)
	}

	events := parser.ParseString(string(content))
	checker := refcheck.FromSet(cfg.recipeNames())
	recipe, report := analysis.Analyze(slices.Values(events), convert.New(), checker, cfg.extensionBits())

	if analyzeJSON {
		return outputJSON(recipe, report)
	}

	if recipe != nil {
		displayRecipe(recipe, filename)
	}
	displayDiagnostics(report)

	if report.HasErrors() {
		return fmt.Errorf("%s has errors", filename)
	}
	return nil
}

func outputJSON(recipe *analysis.ScalableRecipe, report *diag.Report) error {
	out := struct {
		Recipe      *analysis.ScalableRecipe `json:"recipe"`
		Diagnostics []*diag.Diagnostic       `json:"diagnostics"`
	}{Recipe: recipe, Diagnostics: report.All()}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func displayRecipe(recipe *analysis.ScalableRecipe, filename string) {
	fmt.Printf("📄 Recipe: %s\n", filename)

	if len(recipe.Metadata.Servings) > 0 {
		fmt.Printf("👥 Servings: %v\n", recipe.Metadata.Servings)
	}
	for _, key := range recipe.Metadata.Ordered() {
		fmt.Printf("  %s: %s\n", key, recipe.Metadata.Map[key])
	}

	if len(recipe.Ingredients) > 0 {
		fmt.Println("\n🥕 Ingredients:")
		for i, ing := range recipe.Ingredients {
			fmt.Printf("  [%d] %s\n", i, describeIngredient(ing))
		}
	}

	if len(recipe.Cookware) > 0 {
		fmt.Println("\n🍳 Cookware:")
		for i, cw := range recipe.Cookware {
			fmt.Printf("  [%d] %s\n", i, describeCookware(cw))
		}
	}

	if len(recipe.Timers) > 0 {
		fmt.Println("\n⏲️  Timers:")
		for i, t := range recipe.Timers {
			fmt.Printf("  [%d] %s\n", i, describeTimer(t))
		}
	}

	fmt.Println("\n📖 Instructions:")
	for si, sec := range recipe.Sections {
		if sec.Name != "" {
			fmt.Printf("\n== %s ==\n", sec.Name)
		} else if si > 0 {
			fmt.Println()
		}
		for _, content := range sec.Content {
			if content.IsText() {
				fmt.Printf("  %s\n", content.Text)
				continue
			}
			fmt.Printf("  %d. %s\n", content.Step.Number, describeStep(content.Step))
		}
	}
}

func describeStep(step *analysis.Step) string {
	var b strings.Builder
	for _, item := range step.Items {
		switch item.Kind {
		case analysis.ItemText:
			b.WriteString(item.Text)
		case analysis.ItemIngredient:
			fmt.Fprintf(&b, "[ingredient #%d]", item.Index)
		case analysis.ItemCookware:
			fmt.Fprintf(&b, "[cookware #%d]", item.Index)
		case analysis.ItemTimer:
			fmt.Fprintf(&b, "[timer #%d]", item.Index)
		case analysis.ItemInlineQuantity:
			fmt.Fprintf(&b, "[%s]", item.Text)
		}
	}
	return b.String()
}

func describeIngredient(ing *analysis.Ingredient) string {
	name := ing.Name
	if ing.Relation.Kind == analysis.RelationReference {
		name += " (ref)"
	}
	return name + quantitySuffix(ing.Quantity) + noteSuffix(ing.Note)
}

func describeCookware(cw *analysis.Cookware) string {
	name := cw.Name
	if cw.Relation.Kind == analysis.RelationReference {
		name += " (ref)"
	}
	return name + quantitySuffix(cw.Quantity) + noteSuffix(cw.Note)
}

func describeTimer(t *analysis.Timer) string {
	return t.Name + quantitySuffix(t.Quantity)
}

func quantitySuffix(q *analysis.Quantity) string {
	if q == nil {
		return ""
	}
	s := formatValue(q.Value)
	if q.HasUnit() {
		s += " " + q.Unit
	}
	if s == "" {
		return ""
	}
	return " (" + s + ")"
}

func noteSuffix(note string) string {
	if note == "" {
		return ""
	}
	return " -- " + note
}

func formatValue(v analysis.ScalableValue) string {
	switch v.Kind {
	case analysis.ValueByServings:
		parts := make([]string, len(v.ByServings))
		for i, val := range v.ByServings {
			parts[i] = formatASTValue(val)
		}
		return strings.Join(parts, "|")
	default:
		s := formatASTValue(v.Fixed)
		if v.Kind == analysis.ValueLinear {
			s += "*"
		}
		return s
	}
}

func formatASTValue(v ast.Value) string {
	switch v.Kind {
	case ast.ValueRange:
		return fmt.Sprintf("%g-%g", v.Start, v.End)
	case ast.ValueText:
		return v.Text
	default:
		return fmt.Sprintf("%g", v.Num)
	}
}

func displayDiagnostics(report *diag.Report) {
	all := report.All()
	if len(all) == 0 {
		return
	}
	fmt.Println("\nDiagnostics:")
	for _, d := range all {
		icon := "⚠"
		if d.IsError() {
			icon = "✗"
		}
		fmt.Printf("  %s [%s/%s] %s\n", icon, d.Stage, d.Severity, d.Message)
		for _, hint := range d.Hints {
			fmt.Printf("      hint: %s\n", hint)
		}
	}
}
