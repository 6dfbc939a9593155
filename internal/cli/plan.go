package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DSado88/Grocery/internal/core/household"
	"github.com/DSado88/Grocery/internal/core/list"
	"github.com/DSado88/Grocery/internal/core/recipe"
)

// OutputFormat selects the shopping list rendering.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatCompact OutputFormat = "compact"
)

// ParseOutputFormat validates a --format value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "compact":
		return FormatCompact, nil
	default:
		return "", fmt.Errorf("unknown format: %s (expected text, json, or compact)", s)
	}
}

func (a *App) newPlanCommand() *cobra.Command {
	var format string
	var noStaples bool

	cmd := &cobra.Command{
		Use:   "plan <recipe>...",
		Short: "Generate a shopping list from recipes + household staples",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ParseOutputFormat(format)
			if err != nil {
				return err
			}
			return a.runPlan(args, outFormat, !noStaples)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, or compact")
	cmd.Flags().BoolVar(&noStaples, "no-staples", false, "exclude household staples from the list")

	return cmd
}

func (a *App) runPlan(recipeNames []string, format OutputFormat, includeStaples bool) error {
	model, err := a.loadHousehold()
	if err != nil {
		return err
	}
	cfg, err := a.loadScoring()
	if err != nil {
		return err
	}
	collection, err := a.loadCollection()
	if err != nil {
		return err
	}

	// Resolve recipe names via fuzzy matching. A miss is a warning, not
	// an error; the remaining names still produce a list.
	var matched []*recipe.Recipe
	for _, name := range recipeNames {
		results := recipe.FindByName(collection.Recipes(), name, a.cfg.Match.Threshold)
		if len(results) == 0 {
			fmt.Fprintf(os.Stderr, "  Warning: no match found for %q\n", name)
			continue
		}
		best := &collection.Recipes()[results[0].Index]
		fmt.Fprintf(os.Stderr, "  Matched %q -> %q (%.0f%%)\n", name, best.Name, results[0].Similarity*100)
		matched = append(matched, best)
	}

	if len(matched) == 0 && !includeStaples {
		fmt.Fprintln(os.Stderr, "No recipes matched and staples disabled. Nothing to generate.")
		return nil
	}

	forGeneration := model
	if !includeStaples {
		forGeneration = &household.Model{}
	}

	items := list.Generate(matched, forGeneration, cfg)
	shoppingList := list.NewShoppingList(list.Consolidate(items))

	if shoppingList.IsEmpty() {
		fmt.Fprintln(os.Stderr, "Shopping list is empty - selected recipes may not have ingredient data.")
		return nil
	}

	switch format {
	case FormatText:
		fmt.Print(shoppingList.FormatText())
	case FormatJSON:
		out, err := shoppingList.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
	case FormatCompact:
		fmt.Print(shoppingList.FormatCompact())
	}

	return nil
}
