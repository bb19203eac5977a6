package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kjhallgren/cookscale/analysis"
)

// Config is the optional `.cook.toml` project configuration: which
// language extensions to enable and where to look for other recipes
// when resolving `@@recipe` links.
type Config struct {
	Extensions []string `toml:"extensions"`
	RecipesDir string   `toml:"recipes_dir"`
}

var allExtensions = map[string]analysis.Extensions{
	"temperature":      analysis.ExtTemperature,
	"modes":            analysis.ExtModes,
	"advanced_units":   analysis.ExtAdvancedUnits,
	"cookware_amounts": analysis.ExtCookwareAmounts,
	"recipe_notes":     analysis.ExtRecipeNotes,
}

// loadConfig reads `.cook.toml` from the given directory. A missing
// file is not an error -- every extension stays off and recipe links
// are resolved against an empty set, same as running with no config at
// all.
func loadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".cook.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) extensionBits() analysis.Extensions {
	var bits analysis.Extensions
	for _, name := range c.Extensions {
		bits |= allExtensions[name]
	}
	return bits
}

// recipeNames lists the `.cook` files in RecipesDir (by base name, no
// extension) for the recipe-reference checker.
func (c *Config) recipeNames() []string {
	if c.RecipesDir == "" {
		return nil
	}
	entries, err := os.ReadDir(c.RecipesDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".cook" {
			continue
		}
		names = append(names, e.Name()[:len(e.Name())-len(".cook")])
	}
	return names
}
