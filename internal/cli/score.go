package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DSado88/Grocery/internal/core/recipe"
	"github.com/DSado88/Grocery/internal/pkg/common"
)

func (a *App) newScoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "score <recipe>",
		Short: "Score a recipe against household purchasing patterns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScore(args[0])
		},
	}
}

func (a *App) runScore(recipeName string) error {
	cfg, err := a.loadScoring()
	if err != nil {
		return err
	}
	collection, err := a.loadCollection()
	if err != nil {
		return err
	}

	results := recipe.FindByName(collection.Recipes(), recipeName, a.cfg.Match.Threshold)
	if len(results) == 0 {
		return fmt.Errorf("no recipe found matching %q: %w", recipeName, common.ErrRecipeNotFound)
	}
	matched := &collection.Recipes()[results[0].Index]

	fmt.Fprintf(os.Stderr, "Matched %q -> %q (%.0f%%)\n\n", recipeName, matched.Name, results[0].Similarity*100)

	if !matched.HasIngredients() {
		fmt.Fprintln(os.Stderr, "Warning: this recipe has no ingredient data - scoring will be limited.")
		fmt.Fprintln(os.Stderr)
	}

	result := recipe.ScoreRecipe(matched, cfg)

	fmt.Printf("%s: %.0f/100 - %s\n\n", matched.Name, result.Overall, result.Label)

	for _, dim := range result.Dimensions {
		fmt.Printf("  %-22s %.0f/100  (weight %.0f%%, contributes %.1f)\n",
			dim.Name, dim.RawScore, dim.Weight*100, dim.Weighted)
	}
	fmt.Println()

	if matched.PrimaryProtein != "" {
		fmt.Printf("  Primary protein: %s\n", matched.PrimaryProtein)
	}
	if matched.Servings != "" {
		fmt.Printf("  Servings: %s\n", matched.Servings)
	}
	if matched.CookTime != "" {
		fmt.Printf("  Cook time: %s\n", matched.CookTime)
	}

	return nil
}
