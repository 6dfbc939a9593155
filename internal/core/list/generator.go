package list

import (
	"github.com/DSado88/Grocery/internal/core/household"
	"github.com/DSado88/Grocery/internal/core/recipe"
	"github.com/DSado88/Grocery/internal/core/scoring"
)

// Categories assigned to resolved recipe ingredients. "mapped" marks
// items that hit the alias map, "unknown" the fallback. Both sort under
// Other(...) in consolidated output.
const (
	categoryMapped  = household.Category("mapped")
	categoryUnknown = household.Category("unknown")
)

// Generate produces a raw, not yet deduplicated shopping list from the
// selected recipes plus the household's every-order staples. Quantities
// are always 1; the consolidator merges duplicates, and quantity is
// never derived from ingredient text.
func Generate(recipes []*recipe.Recipe, model *household.Model, cfg *scoring.Config) []ShoppingItem {
	var items []ShoppingItem

	for _, staple := range model.Staples() {
		items = append(items, ShoppingItem{
			Name:     staple.Item,
			Quantity: 1,
			Category: staple.Category,
			Source:   SourceStaple(),
		})
	}

	resolver := scoring.NewResolver(cfg)
	for _, r := range recipes {
		for _, ingredient := range r.Ingredients {
			items = append(items, resolveItem(ingredient, r.Name, resolver))
		}
	}

	return items
}

// resolveItem turns a raw ingredient string into a ShoppingItem via the
// alias map's longest-matching alias, falling back to the cleaned raw
// string with the "unknown" category marker.
func resolveItem(ingredient, recipeName string, resolver scoring.Resolver) ShoppingItem {
	if match, ok := resolver.ResolveItem(ingredient); ok {
		name := match.Mapping.ModelItem
		if name == "" {
			name = scoring.CleanIngredientName(ingredient)
		}
		return ShoppingItem{
			Name:     name,
			Quantity: 1,
			Category: categoryMapped,
			Source:   SourceRecipe(recipeName),
		}
	}

	return ShoppingItem{
		Name:     scoring.CleanIngredientName(ingredient),
		Quantity: 1,
		Category: categoryUnknown,
		Source:   SourceRecipe(recipeName),
	}
}
