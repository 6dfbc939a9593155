// Package scoring holds the recipe-scoring configuration document and
// the ingredient resolution machinery built on its alias map.
package scoring

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DSado88/Grocery/internal/pkg/common"
)

// Weights are the five scoring dimension weights. They are expected to
// sum to 1.0; that is the caller's responsibility, not enforced at load.
type Weights struct {
	IngredientOverlap float64 `yaml:"ingredient_overlap"`
	ProteinAlignment  float64 `yaml:"protein_alignment"`
	CuisineAffinity   float64 `yaml:"cuisine_affinity"`
	PracticalFriction float64 `yaml:"practical_friction"`
	FamilyFit         float64 `yaml:"family_fit"`
}

// IngredientMapping is one canonical-ingredient entry in the alias map.
type IngredientMapping struct {
	ModelItem string   `yaml:"model_item"`
	Tier      int      `yaml:"tier"`
	Aliases   []string `yaml:"aliases"`
	Note      string   `yaml:"note"`
}

// FlavorBoosters are keywords whose presence in an ingredient string
// earns a scoring bonus, grouped by impact.
type FlavorBoosters struct {
	High   []string `yaml:"high"`
	Medium []string `yaml:"medium"`
}

// UntappedOpportunity is a decorative config entry; the core never
// reads it.
type UntappedOpportunity struct {
	Ingredient   string `yaml:"ingredient"`
	Frequency    string `yaml:"frequency"`
	RecipesUsing int    `yaml:"recipes_using"`
	Note         string `yaml:"note"`
}

// RecipeSource describes where recipes are collected from. Decorative.
type RecipeSource struct {
	Name         string `yaml:"name"`
	BaseURL      string `yaml:"base_url"`
	ScrapeMethod string `yaml:"scrape_method"`
	ProxyURL     string `yaml:"proxy_url"`
	SearchURL    string `yaml:"search_url"`
	Fallback     string `yaml:"fallback"`
	Note         string `yaml:"note"`
}

// Config is the full scoring configuration parsed from
// recipe-scoring-config.yaml. Immutable after load.
type Config struct {
	Weights        Weights                      `yaml:"weights"`
	ProteinScores  map[string]int               `yaml:"protein_scores"`
	CuisineScores  map[string]int               `yaml:"cuisine_scores"`
	IngredientMap  map[string]IngredientMapping `yaml:"ingredient_map"`
	FlavorBoosters *FlavorBoosters              `yaml:"flavor_boosters"`
	Untapped       []UntappedOpportunity        `yaml:"untapped"`
	Sources        []RecipeSource               `yaml:"sources"`
}

// FromFile loads a scoring config from a YAML file.
func FromFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewParseError("scoring config", path, err)
	}
	cfg, err := FromYAML(content)
	if err != nil {
		return nil, common.NewParseError("scoring config", path, err)
	}
	return cfg, nil
}

// FromYAML parses a scoring config from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ProteinScore looks up the protein score (0-100) for a normalized
// protein key. Unknown keys score 0.
func (c *Config) ProteinScore(protein string) int {
	return c.ProteinScores[protein]
}

// CuisineScore looks up the cuisine affinity score (0-100) for a
// normalized cuisine key, falling back to the reserved "general" key,
// then to 50.
func (c *Config) CuisineScore(cuisine string) int {
	if score, ok := c.CuisineScores[cuisine]; ok {
		return score
	}
	if score, ok := c.CuisineScores["general"]; ok {
		return score
	}
	return 50
}

// sortedProteinKeys returns the protein table keys in sorted order so
// partial-match scans are deterministic across runs.
func (c *Config) sortedProteinKeys() []string {
	keys := make([]string, 0, len(c.ProteinScores))
	for k := range c.ProteinScores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedCuisineKeys returns the cuisine table keys in sorted order.
func (c *Config) sortedCuisineKeys() []string {
	keys := make([]string, 0, len(c.CuisineScores))
	for k := range c.CuisineScores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeKey lowercases a protein or cuisine string and replaces
// spaces with underscores, matching the table key convention.
func NormalizeKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}

// MatchProtein resolves a free-text protein string against the protein
// table: exact lookup on the normalized key first, then bidirectional
// substring containment against every key. Returns false when nothing
// matches.
func (c *Config) MatchProtein(protein string) (int, bool) {
	normalized := NormalizeKey(protein)

	if score, ok := c.ProteinScores[normalized]; ok && score > 0 {
		return score, true
	}

	for _, key := range c.sortedProteinKeys() {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return c.ProteinScores[key], true
		}
	}

	return 0, false
}

// MatchCuisine resolves a free-text tag against the cuisine table using
// exact lookup and bidirectional substring containment, returning the
// highest score any lookup mode produced. Returns false when nothing
// matches.
func (c *Config) MatchCuisine(tag string) (int, bool) {
	normalized := NormalizeKey(tag)
	best := -1

	if score, ok := c.CuisineScores[normalized]; ok {
		if cur := max(best, 0); score > cur {
			best = score
		}
	}

	for _, key := range c.sortedCuisineKeys() {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			if score := c.CuisineScores[key]; score > max(best, 0) {
				best = score
			}
		}
	}

	if best < 0 {
		return 0, false
	}
	return best, true
}
