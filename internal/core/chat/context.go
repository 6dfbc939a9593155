package chat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DSado88/Grocery/internal/core/household"
	"github.com/DSado88/Grocery/internal/core/recipe"
)

// BuildHouseholdContext renders the concise household summary appended
// to the assistant's system prompt: family roster, recurring-item
// counts, recipe stats, top proteins, and where the data files live.
func BuildHouseholdContext(model *household.Model, collection *recipe.Collection, dataDir string) string {
	var ctx strings.Builder

	ctx.WriteString("## Household Context\n\nFamily: ")
	members := make([]string, 0, len(model.Family.Members))
	for _, m := range model.Family.Members {
		if m.Age != nil {
			members = append(members, fmt.Sprintf("%s (age %d)", m.Name, *m.Age))
		} else {
			members = append(members, m.Name)
		}
	}
	ctx.WriteString(strings.Join(members, ", "))
	ctx.WriteByte('\n')

	staples := model.ItemsByTier(household.TierEveryOrder)
	fmt.Fprintf(&ctx, "\nGiant: %d recurring items (%d staples/every-order)\n",
		len(model.GiantRecurring), len(staples))

	if len(model.AmazonRecurring) > 0 {
		fmt.Fprintf(&ctx, "Amazon: %d recurring items\n", len(model.AmazonRecurring))
	}

	fmt.Fprintf(&ctx, "\nRecipes: %d total (%d with ingredients)\n",
		collection.Len(), len(collection.WithIngredients()))

	if top := TopProteins(collection, 5); len(top) > 0 {
		ctx.WriteString("Top proteins: ")
		parts := make([]string, 0, len(top))
		for _, p := range top {
			parts = append(parts, fmt.Sprintf("%s (%d)", p.Name, p.Count))
		}
		ctx.WriteString(strings.Join(parts, ", "))
		ctx.WriteByte('\n')
	}

	fmt.Fprintf(&ctx, "\nData directory: %s\n", dataDir)
	ctx.WriteString("Key files: household-model.yaml, recipe-links.json, recipe-scoring-config.yaml\n")

	return ctx.String()
}

// ProteinCount is one entry of a protein usage tally.
type ProteinCount struct {
	Name  string
	Count int
}

// TopProteins tallies primary proteins across the collection and
// returns the n most common, most-used first. Ties order by name so
// the output is stable.
func TopProteins(collection *recipe.Collection, n int) []ProteinCount {
	counts := make(map[string]int)
	for _, r := range collection.Recipes() {
		if r.PrimaryProtein != "" {
			counts[r.PrimaryProtein]++
		}
	}

	tally := make([]ProteinCount, 0, len(counts))
	for name, count := range counts {
		tally = append(tally, ProteinCount{Name: name, Count: count})
	}
	sort.Slice(tally, func(i, j int) bool {
		if tally[i].Count != tally[j].Count {
			return tally[i].Count > tally[j].Count
		}
		return tally[i].Name < tally[j].Name
	})

	if len(tally) > n {
		tally = tally[:n]
	}
	return tally
}
