package list

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DSado88/Grocery/internal/core/household"
)

func sampleList() *ShoppingList {
	return NewShoppingList([]ShoppingItem{
		{Name: "Cucumber", Quantity: 1, Category: household.CategoryProduce, Source: SourceStaple()},
		{Name: "Garlic", Quantity: 2, Category: household.CategoryProduce, Source: SourceRecipe("Pasta"), Note: "minced"},
		{Name: "Milk", Quantity: 1, Category: household.CategoryDairy, Source: SourceStaple()},
	})
}

func TestByCategory(t *testing.T) {
	groups := sampleList().ByCategory()
	require.Len(t, groups, 2)

	assert.Equal(t, "Dairy", groups[0].Name)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "Produce", groups[1].Name)
	require.Len(t, groups[1].Items, 2)
}

func TestFormatText(t *testing.T) {
	out := sampleList().FormatText()

	assert.Contains(t, out, "## Produce\n")
	assert.Contains(t, out, "- [ ] Cucumber (1) [staple]\n")
	assert.Contains(t, out, "- [ ] Garlic (2) [Pasta]\n")
	assert.Contains(t, out, "## Dairy\n")

	// Dairy group renders before Produce.
	assert.Less(t, strings.Index(out, "## Dairy"), strings.Index(out, "## Produce"))
}

func TestFormatCompact(t *testing.T) {
	out := sampleList().FormatCompact()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Shopping List (3 items)", lines[0])
	assert.Equal(t, "DAIRY: Milk", lines[1])
	assert.Equal(t, "PRODUCE: Cucumber, Garlic x2", lines[2])
}

func TestFormatJSONRoundTrip(t *testing.T) {
	out, err := sampleList().FormatJSON()
	require.NoError(t, err)

	var items []ShoppingItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 3)
	assert.Equal(t, KindStaple, items[0].Source.Kind)
	assert.Equal(t, KindRecipe, items[1].Source.Kind)
	assert.Equal(t, "Pasta", items[1].Source.RecipeName)
	assert.Equal(t, "minced", items[1].Note)
}

func TestShoppingItemJSONWireShape(t *testing.T) {
	// Recipe-sourced item with an ad-hoc category and no note: the
	// category is externally tagged and the note key is present as null.
	data, err := json.Marshal(ShoppingItem{
		Name:     "Garlic",
		Quantity: 1,
		Category: household.Category("mapped"),
		Source:   SourceRecipe("Pasta"),
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name": "Garlic", "quantity": 1, "category": {"other": "mapped"}, "source": {"recipe": "Pasta"}, "note": null}`,
		string(data))

	// Staple with a known category and a note.
	data, err = json.Marshal(ShoppingItem{
		Name:     "Milk",
		Quantity: 2,
		Category: household.CategoryDairy,
		Source:   SourceStaple(),
		Note:     "2%",
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name": "Milk", "quantity": 2, "category": "dairy", "source": "staple", "note": "2%"}`,
		string(data))

	// Null notes unmarshal back to the empty string.
	var item ShoppingItem
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Garlic", "quantity": 1, "category": {"other": "mapped"}, "source": "staple", "note": null}`), &item))
	assert.Equal(t, "", item.Note)
	assert.Equal(t, household.Category("mapped"), item.Category)
}

func TestItemSourceJSONShape(t *testing.T) {
	staple, err := json.Marshal(SourceStaple())
	require.NoError(t, err)
	assert.JSONEq(t, `"staple"`, string(staple))

	fromRecipe, err := json.Marshal(SourceRecipe("Beef Tacos"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"recipe": "Beef Tacos"}`, string(fromRecipe))

	var s ItemSource
	require.NoError(t, json.Unmarshal([]byte(`"frequency_trigger"`), &s))
	assert.Equal(t, KindFrequencyTrigger, s.Kind)

	assert.Error(t, json.Unmarshal([]byte(`"vibes"`), &s))
}

func TestEmptyList(t *testing.T) {
	empty := NewShoppingList(nil)
	assert.True(t, empty.IsEmpty())
	assert.Zero(t, empty.Len())
	assert.Empty(t, empty.ByCategory())
	assert.Equal(t, "", empty.FormatText())
	assert.Equal(t, "Shopping List (0 items)\n", empty.FormatCompact())

	out, err := empty.FormatJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}
