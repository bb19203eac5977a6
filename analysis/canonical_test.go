package analysis_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/kjhallgren/cookscale/analysis"
	"github.com/kjhallgren/cookscale/convert"
	"github.com/kjhallgren/cookscale/parser"
	"github.com/kjhallgren/cookscale/refcheck"
)

// canonicalTests mirrors the fixture shape: a named map of source
// recipes plus the analyzer output they're expected to produce.
type canonicalTests struct {
	Tests map[string]canonicalCase `yaml:"tests"`
}

type canonicalCase struct {
	Source      string              `yaml:"source"`
	Extensions  []string            `yaml:"extensions"`
	Ingredients []canonicalQuantity `yaml:"ingredients"`
	Cookware    []canonicalQuantity `yaml:"cookware"`
	Timers      []canonicalQuantity `yaml:"timers"`
	Errors      int                 `yaml:"errors"`
	Warnings    int                 `yaml:"warnings"`
}

type canonicalQuantity struct {
	Name string `yaml:"name"`
	Unit string `yaml:"unit"`
}

func extensionsFromNames(names []string) analysis.Extensions {
	var ext analysis.Extensions
	for _, n := range names {
		switch n {
		case "temperature":
			ext |= analysis.ExtTemperature
		case "modes":
			ext |= analysis.ExtModes
		case "advanced-units":
			ext |= analysis.ExtAdvancedUnits
		case "cookware-amounts":
			ext |= analysis.ExtCookwareAmounts
		case "recipe-notes":
			ext |= analysis.ExtRecipeNotes
		}
	}
	return ext
}

// TestCanonicalCorpus drives a YAML-described recipe corpus end to end
// through the lexer, parser and analyzer, checking component counts,
// names, units and diagnostic counts. The fixture file is optional --
// an empty or missing testdata/canonical.yaml skips the suite rather
// than failing it.
func TestCanonicalCorpus(t *testing.T) {
	path := filepath.Join("testdata", "canonical.yaml")
	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		t.Skip("no canonical.yaml fixture present")
	}
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var suite canonicalTests
	if err := yaml.Unmarshal(data, &suite); err != nil {
		t.Fatalf("failed to parse canonical.yaml: %v", err)
	}

	for name, tc := range suite.Tests {
		t.Run(name, func(t *testing.T) {
			events := parser.ParseString(tc.Source)
			recipe, report := analysis.Analyze(
				slices.Values(events), convert.New(), refcheck.FromSet(nil), extensionsFromNames(tc.Extensions))

			errCount, warnCount := 0, 0
			for _, d := range report.All() {
				if d.IsError() {
					errCount++
				} else {
					warnCount++
				}
			}
			if errCount != tc.Errors {
				t.Errorf("errors = %d, want %d (%+v)", errCount, tc.Errors, report.All())
			}
			if warnCount != tc.Warnings {
				t.Errorf("warnings = %d, want %d (%+v)", warnCount, tc.Warnings, report.All())
			}

			if recipe == nil {
				if len(tc.Ingredients) > 0 || len(tc.Cookware) > 0 || len(tc.Timers) > 0 {
					t.Fatal("expected a recipe result but analysis aborted on a parse error")
				}
				return
			}

			if len(recipe.Ingredients) != len(tc.Ingredients) {
				t.Fatalf("ingredients = %d, want %d", len(recipe.Ingredients), len(tc.Ingredients))
			}
			for i, want := range tc.Ingredients {
				got := recipe.Ingredients[i]
				if want.Name != "" && !strings.EqualFold(got.Name, want.Name) {
					t.Errorf("ingredient %d name = %q, want %q", i, got.Name, want.Name)
				}
				if gotUnit(got.Quantity) != want.Unit {
					t.Errorf("ingredient %d unit = %q, want %q", i, gotUnit(got.Quantity), want.Unit)
				}
			}

			if len(recipe.Cookware) != len(tc.Cookware) {
				t.Fatalf("cookware = %d, want %d", len(recipe.Cookware), len(tc.Cookware))
			}
			for i, want := range tc.Cookware {
				got := recipe.Cookware[i]
				if want.Name != "" && !strings.EqualFold(got.Name, want.Name) {
					t.Errorf("cookware %d name = %q, want %q", i, got.Name, want.Name)
				}
			}

			if len(recipe.Timers) != len(tc.Timers) {
				t.Fatalf("timers = %d, want %d", len(recipe.Timers), len(tc.Timers))
			}
			for i, want := range tc.Timers {
				got := recipe.Timers[i]
				if gotUnit(got.Quantity) != want.Unit {
					t.Errorf("timer %d unit = %q, want %q", i, gotUnit(got.Quantity), want.Unit)
				}
			}
		})
	}
}

func gotUnit(q *analysis.Quantity) string {
	if q == nil {
		return ""
	}
	return q.Unit
}
