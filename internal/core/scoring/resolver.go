package scoring

import (
	"sort"
	"strings"
)

// Match is a resolved ingredient: the alias-map key it matched and the
// mapping entry itself.
type Match struct {
	Key     string
	Mapping IngredientMapping
}

// Resolver resolves free-text ingredient descriptions ("2 Tbsp. olive
// oil, or as needed") against the household alias map. The two methods
// are two different reductions over the same substring-matching
// substrate and must stay separate: the list generator wants the most
// specific (longest) alias, the scorer wants the strongest (highest)
// tier.
type Resolver interface {
	// ResolveItem returns the entry whose longest alias is contained in
	// the ingredient string. Reports false when no alias matches.
	ResolveItem(ingredient string) (Match, bool)

	// ResolveTier returns the highest tier among all entries with a
	// matching alias. Reports false when no alias matches.
	ResolveTier(ingredient string) (int, bool)
}

// aliasResolver is the map-backed Resolver. Keys are pre-sorted so
// tie-breaks are deterministic across runs.
type aliasResolver struct {
	entries map[string]IngredientMapping
	keys    []string
}

// NewResolver builds a Resolver over the config's ingredient alias map.
func NewResolver(cfg *Config) Resolver {
	keys := make([]string, 0, len(cfg.IngredientMap))
	for k := range cfg.IngredientMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &aliasResolver{entries: cfg.IngredientMap, keys: keys}
}

func (r *aliasResolver) ResolveItem(ingredient string) (Match, bool) {
	lower := strings.ToLower(ingredient)

	var best Match
	bestLen := 0
	for _, key := range r.keys {
		mapping := r.entries[key]
		for _, alias := range mapping.Aliases {
			aliasLower := strings.ToLower(alias)
			if len(aliasLower) > bestLen && strings.Contains(lower, aliasLower) {
				best = Match{Key: key, Mapping: mapping}
				bestLen = len(aliasLower)
			}
		}
	}

	return best, bestLen > 0
}

func (r *aliasResolver) ResolveTier(ingredient string) (int, bool) {
	lower := strings.ToLower(ingredient)

	bestTier := -1
	for _, key := range r.keys {
		mapping := r.entries[key]
		for _, alias := range mapping.Aliases {
			if strings.Contains(lower, strings.ToLower(alias)) && mapping.Tier > bestTier {
				bestTier = mapping.Tier
			}
		}
	}

	if bestTier < 0 {
		return 0, false
	}
	return bestTier, true
}
