package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfigYAML = `
weights:
  ingredient_overlap: 0.30
  protein_alignment: 0.25
  cuisine_affinity: 0.20
  practical_friction: 0.15
  family_fit: 0.10
protein_scores:
  chicken: 95
  pasta: 90
  beef: 70
  shrimp: 45
cuisine_scores:
  italian: 90
  mexican: 85
  asian: 75
  general: 50
ingredient_map:
  garlic:
    model_item: "Garlic"
    tier: 3
    aliases: ["garlic", "garlic cloves"]
  olive_oil:
    model_item: "Olive oil"
    tier: 1
    aliases: ["olive oil"]
flavor_boosters:
  high: ["fish sauce"]
  medium: ["scallions"]
`

func loadTestConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := FromYAML([]byte(sampleConfigYAML))
	require.NoError(t, err)
	return cfg
}

func TestFromYAMLConfig(t *testing.T) {
	cfg := loadTestConfig(t)

	assert.InDelta(t, 0.30, cfg.Weights.IngredientOverlap, 1e-9)
	assert.InDelta(t, 0.10, cfg.Weights.FamilyFit, 1e-9)
	assert.Equal(t, 95, cfg.ProteinScores["chicken"])
	assert.Equal(t, 3, cfg.IngredientMap["garlic"].Tier)
	assert.Equal(t, "Garlic", cfg.IngredientMap["garlic"].ModelItem)
	require.NotNil(t, cfg.FlavorBoosters)
	assert.Equal(t, []string{"fish sauce"}, cfg.FlavorBoosters.High)
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "chicken", NormalizeKey("Chicken"))
	assert.Equal(t, "ground_beef", NormalizeKey("Ground Beef"))
	assert.Equal(t, "pasta", NormalizeKey("pasta"))
}

func TestCuisineScoreFallback(t *testing.T) {
	cfg := loadTestConfig(t)

	assert.Equal(t, 90, cfg.CuisineScore("italian"))
	assert.Equal(t, 50, cfg.CuisineScore("martian"))

	// Without a general entry the fallback is the neutral 50.
	bare := &Config{CuisineScores: map[string]int{"italian": 90}}
	assert.Equal(t, 50, bare.CuisineScore("martian"))
}

func TestMatchProtein(t *testing.T) {
	cfg := loadTestConfig(t)

	score, ok := cfg.MatchProtein("Chicken")
	assert.True(t, ok)
	assert.Equal(t, 95, score)

	// Partial match in either direction.
	score, ok = cfg.MatchProtein("chicken thighs")
	assert.True(t, ok)
	assert.Equal(t, 95, score)

	score, ok = cfg.MatchProtein("Ground Beef")
	assert.True(t, ok)
	assert.Equal(t, 70, score)

	_, ok = cfg.MatchProtein("venison")
	assert.False(t, ok)
}

func TestMatchCuisine(t *testing.T) {
	cfg := loadTestConfig(t)

	score, ok := cfg.MatchCuisine("Italian")
	assert.True(t, ok)
	assert.Equal(t, 90, score)

	score, ok = cfg.MatchCuisine("italian-american")
	assert.True(t, ok)
	assert.Equal(t, 90, score)

	_, ok = cfg.MatchCuisine("nordic")
	assert.False(t, ok)
}
