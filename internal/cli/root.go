// Package cli wires the subcommands: plan, score, status, chat.
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DSado88/Grocery/internal/core/household"
	"github.com/DSado88/Grocery/internal/core/recipe"
	"github.com/DSado88/Grocery/internal/core/scoring"
	"github.com/DSado88/Grocery/internal/infrastructure/config"
)

// App carries the process config into the subcommands.
type App struct {
	cfg *config.Config
}

// NewRootCommand builds the grocery root command with all subcommands
// attached.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	app := &App{cfg: cfg}

	root := &cobra.Command{
		Use:           "grocery",
		Short:         "Cart Blanche grocery automation CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Data.Dir, "data-dir", cfg.Data.Dir,
		"path to the directory containing the YAML/JSON data files")

	root.AddCommand(app.newPlanCommand())
	root.AddCommand(app.newScoreCommand())
	root.AddCommand(app.newStatusCommand())
	root.AddCommand(app.newChatCommand())

	return root
}

func (a *App) householdPath() string {
	return filepath.Join(a.cfg.Data.Dir, a.cfg.Data.HouseholdFile)
}

func (a *App) scoringPath() string {
	return filepath.Join(a.cfg.Data.Dir, a.cfg.Data.ScoringFile)
}

func (a *App) recipesPath() string {
	return filepath.Join(a.cfg.Data.Dir, a.cfg.Data.RecipesFile)
}

func (a *App) loadHousehold() (*household.Model, error) {
	return household.FromFile(a.householdPath())
}

func (a *App) loadScoring() (*scoring.Config, error) {
	return scoring.FromFile(a.scoringPath())
}

func (a *App) loadCollection() (*recipe.Collection, error) {
	return recipe.FromJSONFile(a.recipesPath())
}
