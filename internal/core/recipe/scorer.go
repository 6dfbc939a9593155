package recipe

import (
	"strconv"
	"strings"

	"github.com/DSado88/Grocery/internal/core/scoring"
)

// DimensionScore is the per-dimension breakdown of a recipe score.
type DimensionScore struct {
	Name     string
	RawScore float64
	Weight   float64
	Weighted float64
}

// Score is a full recipe score: the weighted overall in [0, 100], its
// qualitative label, and the five dimension breakdowns.
type Score struct {
	Overall    float64
	Label      string
	Dimensions []DimensionScore
}

// ScoreRecipe scores a recipe against the household scoring config.
// It never fails on well-typed input: unknown proteins, cuisines and
// ingredients degrade to neutral values instead of erroring.
func ScoreRecipe(r *Recipe, cfg *scoring.Config) Score {
	resolver := scoring.NewResolver(cfg)

	ingredient := scoreIngredientOverlap(r, cfg, resolver)
	protein := scoreProteinAlignment(r, cfg)
	cuisine := scoreCuisineAffinity(r, cfg)
	friction := scorePracticalFriction(r, resolver)
	family := scoreFamilyFit(r)

	dimensions := []DimensionScore{
		makeDimension("Ingredient Overlap", ingredient, cfg.Weights.IngredientOverlap),
		makeDimension("Protein Alignment", protein, cfg.Weights.ProteinAlignment),
		makeDimension("Cuisine Affinity", cuisine, cfg.Weights.CuisineAffinity),
		makeDimension("Practical Friction", friction, cfg.Weights.PracticalFriction),
		makeDimension("Family Fit", family, cfg.Weights.FamilyFit),
	}

	overall := 0.0
	for _, d := range dimensions {
		overall += d.Weighted
	}
	overall = clamp(overall, 0, 100)

	return Score{
		Overall:    overall,
		Label:      ScoreLabel(overall),
		Dimensions: dimensions,
	}
}

// ScoreLabel maps a numeric score to its qualitative label. Band lower
// bounds are inclusive.
func ScoreLabel(score float64) string {
	switch {
	case score >= 80:
		return "Perfect fit"
	case score >= 60:
		return "Good fit"
	case score >= 40:
		return "Moderate fit"
	case score >= 20:
		return "Stretch"
	default:
		return "Adventure"
	}
}

func makeDimension(name string, rawScore, weight float64) DimensionScore {
	return DimensionScore{
		Name:     name,
		RawScore: rawScore,
		Weight:   weight,
		Weighted: rawScore * weight,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dimension 1: Ingredient Overlap. Points per ingredient by resolved
// tier (tier 1 is the best match), normalized against a perfect
// all-tier-1 list, plus flavor-booster bonuses.
func scoreIngredientOverlap(r *Recipe, cfg *scoring.Config, resolver scoring.Resolver) float64 {
	if len(r.Ingredients) == 0 {
		return 0
	}

	points := 0.0
	for _, ingredient := range r.Ingredients {
		tier, ok := resolver.ResolveTier(ingredient)
		if !ok {
			continue
		}
		switch tier {
		case 1:
			points += 3.0
		case 2:
			points += 2.0
		case 3:
			points += 1.0
		case 0:
			points += 0.5
		}
	}

	maxPossible := float64(len(r.Ingredients)) * 3.0
	score := points / maxPossible * 100.0

	if cfg.FlavorBoosters != nil {
		for _, ingredient := range r.Ingredients {
			lower := strings.ToLower(ingredient)
			for _, keyword := range cfg.FlavorBoosters.High {
				if strings.Contains(lower, strings.ToLower(keyword)) {
					score += 10.0
				}
			}
			for _, keyword := range cfg.FlavorBoosters.Medium {
				if strings.Contains(lower, strings.ToLower(keyword)) {
					score += 5.0
				}
			}
		}
	}

	return clamp(score, 0, 100)
}

// Dimension 2: Protein Alignment. Neutral 50 when the recipe declares
// no protein or the table has no match.
func scoreProteinAlignment(r *Recipe, cfg *scoring.Config) float64 {
	if r.PrimaryProtein == "" {
		return 50.0
	}
	if score, ok := cfg.MatchProtein(r.PrimaryProtein); ok {
		return float64(score)
	}
	return 50.0
}

// Dimension 3: Cuisine Affinity. Highest score any tag produces; falls
// back to the "general" table entry when no tag matches.
func scoreCuisineAffinity(r *Recipe, cfg *scoring.Config) float64 {
	best := -1
	for _, tag := range r.Tags {
		if score, ok := cfg.MatchCuisine(tag); ok && score > best {
			best = score
		}
	}
	if best < 0 {
		return float64(cfg.CuisineScore("general"))
	}
	return float64(best)
}

// Dimension 4: Practical Friction. Starts at 80; tier-0 ingredients
// cost 10, unresolvable ingredients cost 5; floored at 0.
func scorePracticalFriction(r *Recipe, resolver scoring.Resolver) float64 {
	score := 80.0
	for _, ingredient := range r.Ingredients {
		tier, ok := resolver.ResolveTier(ingredient)
		switch {
		case !ok:
			score -= 5.0
		case tier == 0:
			score -= 10.0
		}
	}
	return clamp(score, 0, 100)
}

// Dimension 5: Family Fit. Starts at 60 with bonuses for 4+ servings,
// a sub-30-minute cook time, and an "easy"/"quick" tag.
func scoreFamilyFit(r *Recipe) float64 {
	score := 60.0

	if n, ok := extractFirstNumber(r.Servings); ok && n >= 4 {
		score += 20.0
	}

	if r.CookTime != "" && !strings.Contains(strings.ToLower(r.CookTime), "hour") {
		if minutes, ok := extractFirstNumber(r.CookTime); ok && minutes <= 30 {
			score += 10.0
		}
	}

	for _, tag := range r.Tags {
		lower := strings.ToLower(tag)
		if lower == "easy" || lower == "quick" {
			score += 10.0
			break
		}
	}

	return clamp(score, 0, 100)
}

// extractFirstNumber returns the first maximal run of ASCII digits in
// s, parsed as an unsigned integer. E.g. "6-8 servings" -> 6. A run
// too large for 32 bits reports false rather than wrapping.
func extractFirstNumber(s string) (int, bool) {
	start := -1
	end := len(s)
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			end = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}

	n, err := strconv.ParseUint(s[start:end], 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
