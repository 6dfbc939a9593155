package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanIngredientName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2 Tbsp. extra-virgin olive oil", "extra-virgin olive oil"},
		{"1/2 cup coconut milk", "coconut milk"},
		{"8 garlic cloves, thinly sliced", "garlic cloves, thinly sliced"},
		{"1.5 pounds ground beef", "ground beef"},
		{"3 tablespoons butter", "butter"},
		{"2 cups basmati rice", "basmati rice"},
		{"12 oz. penne", "penne"},
		{"salt and pepper", "salt and pepper"},
		{"  fresh basil  ", "fresh basil"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanIngredientName(tt.raw))
		})
	}
}

func TestCleanIngredientNameUnitNeedsQuantity(t *testing.T) {
	// A unit word with no leading quantity is part of the name.
	assert.Equal(t, "cup mushrooms", CleanIngredientName("cup mushrooms"))
	assert.Equal(t, "cupcake liners", CleanIngredientName("cupcake liners"))

	// A unit prefix not followed by a space or period stays too.
	assert.Equal(t, "cupcakes", CleanIngredientName("2 cupcakes"))
}

func TestCleanIngredientNameNeverEmpty(t *testing.T) {
	// Stripping everything falls back to the trimmed input.
	assert.Equal(t, "2", CleanIngredientName("2"))
	assert.Equal(t, "1/2 cup", CleanIngredientName("1/2 cup"))
}

func TestCleanIngredientNameIdempotent(t *testing.T) {
	inputs := []string{
		"2 Tbsp. extra-virgin olive oil",
		"1/2 cup coconut milk",
		"8 garlic cloves, thinly sliced",
		"salt and pepper",
	}
	for _, raw := range inputs {
		once := CleanIngredientName(raw)
		assert.Equal(t, once, CleanIngredientName(once), "cleaning %q twice changed the result", raw)
	}
}
