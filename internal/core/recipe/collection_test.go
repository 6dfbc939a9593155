package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRecipesJSON = `[
  {
    "name": "Chicken Tikka Masala",
    "url": "https://example.com/tikka",
    "tags": ["indian", "easy"],
    "rating": 5,
    "primary_protein": "chicken",
    "servings": "4 servings",
    "ingredients": ["1 lb. chicken thighs", "4 garlic cloves"]
  },
  {
    "name": "Beef Tacos",
    "tags": ["mexican"],
    "primary_protein": "ground beef",
    "ingredients": ["1 lb. ground beef"]
  },
  {
    "name": "Chicken Noodle Soup",
    "primary_protein": "chicken"
  },
  {
    "name": "Garden Salad"
  }
]`

func loadTestCollection(t *testing.T) *Collection {
	t.Helper()
	c, err := FromJSON([]byte(sampleRecipesJSON))
	require.NoError(t, err)
	return c
}

func TestFromJSON(t *testing.T) {
	c := loadTestCollection(t)

	assert.Equal(t, 4, c.Len())
	assert.False(t, c.IsEmpty())

	first := c.Recipes()[0]
	assert.Equal(t, "Chicken Tikka Masala", first.Name)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 5, *first.Rating)
	assert.True(t, first.HasIngredients())
	assert.False(t, c.Recipes()[3].HasIngredients())
}

func TestFromJSONInvalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"name": "not an array"}`))
	assert.Error(t, err)
}

func TestCollectionFindByName(t *testing.T) {
	c := loadTestCollection(t)

	found := c.FindByName("tikka")
	require.NotEmpty(t, found)
	assert.Equal(t, 0, found[0].Index)
	assert.Equal(t, "Chicken Tikka Masala", found[0].Recipe.Name)
	assert.Equal(t, 1.0, found[0].Similarity)

	assert.Empty(t, c.FindByName("zucchini boats"))
}

func TestWithIngredients(t *testing.T) {
	c := loadTestCollection(t)
	withIngredients := c.WithIngredients()
	require.Len(t, withIngredients, 2)
	assert.Equal(t, "Chicken Tikka Masala", withIngredients[0].Name)
	assert.Equal(t, "Beef Tacos", withIngredients[1].Name)
}

func TestFilterByProtein(t *testing.T) {
	c := loadTestCollection(t)

	chicken := c.FilterByProtein("chicken")
	require.Len(t, chicken, 2)

	beef := c.FilterByProtein("BEEF")
	require.Len(t, beef, 1)
	assert.Equal(t, "Beef Tacos", beef[0].Name)

	assert.Empty(t, c.FilterByProtein("tofu"))
}

func TestFilterByTag(t *testing.T) {
	c := loadTestCollection(t)

	easy := c.FilterByTag("Easy")
	require.Len(t, easy, 1)
	assert.Equal(t, "Chicken Tikka Masala", easy[0].Name)

	// Tag match is exact, not substring.
	assert.Empty(t, c.FilterByTag("eas"))
}

func TestScoreAll(t *testing.T) {
	c := loadTestCollection(t)
	scored := c.ScoreAll(testScoringConfig())

	// Only recipes with ingredient data are scored.
	require.Len(t, scored, 2)
	assert.GreaterOrEqual(t, scored[0].Score.Overall, scored[1].Score.Overall)
}
