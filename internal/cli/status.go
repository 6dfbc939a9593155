package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DSado88/Grocery/internal/core/chat"
	"github.com/DSado88/Grocery/internal/core/household"
)

func (a *App) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show household model and recipe collection stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus()
		},
	}
}

func (a *App) runStatus() error {
	model, err := a.loadHousehold()
	if err != nil {
		return err
	}
	collection, err := a.loadCollection()
	if err != nil {
		return err
	}

	fmt.Println("Family")
	for _, member := range model.Family.Members {
		if member.Age != nil {
			fmt.Printf("  %s (age %d)\n", member.Name, *member.Age)
		} else {
			fmt.Printf("  %s\n", member.Name)
		}
	}
	fmt.Println()

	tier1 := model.ItemsByTier(household.TierEveryOrder)
	tier2 := model.ItemsByTier(household.TierMostOrders)
	tier3 := model.ItemsByTier(household.TierOccasional)
	rare := model.ItemsByTier(household.TierRare)

	fmt.Printf("Giant Recurring Items: %d total\n", len(model.GiantRecurring))
	fmt.Printf("  Every order (tier 1): %d\n", len(tier1))
	fmt.Printf("  Most orders (tier 2): %d\n", len(tier2))
	fmt.Printf("  Occasional  (tier 3): %d\n", len(tier3))
	fmt.Printf("  Rare:                 %d\n", len(rare))
	fmt.Println()

	fmt.Printf("Amazon Recurring Items: %d\n", len(model.AmazonRecurring))
	fmt.Println()

	fmt.Printf("Recipe Collection: %d total (%d with ingredients)\n",
		collection.Len(), len(collection.WithIngredients()))

	if top := chat.TopProteins(collection, 5); len(top) > 0 {
		fmt.Println("  Top proteins:")
		for _, p := range top {
			fmt.Printf("    %s: %d recipes\n", p.Name, p.Count)
		}
	}

	return nil
}
