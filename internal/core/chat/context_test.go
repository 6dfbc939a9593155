package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DSado88/Grocery/internal/core/household"
	"github.com/DSado88/Grocery/internal/core/recipe"
)

func contextCollection() *recipe.Collection {
	return recipe.NewCollection([]recipe.Recipe{
		{Name: "A", PrimaryProtein: "chicken", Ingredients: []string{"x"}},
		{Name: "B", PrimaryProtein: "chicken"},
		{Name: "C", PrimaryProtein: "beef"},
		{Name: "D", PrimaryProtein: "tofu"},
		{Name: "E"},
	})
}

func TestTopProteins(t *testing.T) {
	top := TopProteins(contextCollection(), 2)
	require.Len(t, top, 2)
	assert.Equal(t, ProteinCount{Name: "chicken", Count: 2}, top[0])
	// Count ties order by name.
	assert.Equal(t, ProteinCount{Name: "beef", Count: 1}, top[1])
}

func TestTopProteinsFewerThanN(t *testing.T) {
	top := TopProteins(contextCollection(), 10)
	assert.Len(t, top, 3)

	assert.Empty(t, TopProteins(recipe.NewCollection(nil), 5))
}

func TestBuildHouseholdContext(t *testing.T) {
	age := 7
	model := &household.Model{
		Family: household.FamilyProfile{
			Members: []household.FamilyMember{
				{Name: "Dan"},
				{Name: "Maya", Age: &age},
			},
		},
		GiantRecurring: []household.GiantItem{
			{Item: "Cucumber", Frequency: "14/18"},
			{Item: "Capers", Frequency: "1/18"},
		},
		AmazonRecurring: []household.AmazonItem{{Item: "Dishwasher pods"}},
	}

	out := BuildHouseholdContext(model, contextCollection(), "/data")

	assert.Contains(t, out, "Family: Dan, Maya (age 7)")
	assert.Contains(t, out, "Giant: 2 recurring items (1 staples/every-order)")
	assert.Contains(t, out, "Amazon: 1 recurring items")
	assert.Contains(t, out, "Recipes: 5 total (1 with ingredients)")
	assert.Contains(t, out, "Top proteins: chicken (2), beef (1), tofu (1)")
	assert.Contains(t, out, "Data directory: /data")
}
