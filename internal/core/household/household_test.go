package household

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleModelYAML = `
family:
  members:
    - name: Dan
      age: 41
    - name: Sam
meal_plan_source: "NYT Cooking"
stores:
  giant:
    type: grocery
    order_method: pickup
    frequency: weekly
amazon_recurring:
  - item: "Dishwasher pods"
    category: household
    cycle_days: "30"
giant_recurring:
  - item: "Cucumber"
    category: produce
    frequency: "14/18"
    typical_qty: "1"
  - item: "Whole milk"
    category: dairy
    frequency: "9/18"
  - item: "Chicken thighs"
    category: meat
    frequency: "4/18"
  - item: "Capers"
    category: condiments
acme_recurring:
  - item: "Seltzer"
    anything: goes
`

func TestFromYAML(t *testing.T) {
	model, err := FromYAML([]byte(sampleModelYAML))
	require.NoError(t, err)

	require.Len(t, model.Family.Members, 2)
	assert.Equal(t, "Dan", model.Family.Members[0].Name)
	require.NotNil(t, model.Family.Members[0].Age)
	assert.Equal(t, 41, *model.Family.Members[0].Age)
	assert.Nil(t, model.Family.Members[1].Age)

	assert.Equal(t, "NYT Cooking", model.MealPlanSource)

	require.NotNil(t, model.Stores.Giant)
	assert.Equal(t, "pickup", model.Stores.Giant.OrderMethod)
	assert.Nil(t, model.Stores.Amazon)

	require.Len(t, model.AmazonRecurring, 1)
	assert.Equal(t, CategoryHousehold, model.AmazonRecurring[0].Category)

	require.Len(t, model.GiantRecurring, 4)
	assert.Equal(t, CategoryProduce, model.GiantRecurring[0].Category)
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("giant_recurring: not-a-list"))
	assert.Error(t, err)
}

func TestGiantItemTier(t *testing.T) {
	item := GiantItem{Item: "Cucumber", Frequency: "14/18"}
	assert.Equal(t, TierEveryOrder, item.Tier())

	// No frequency data means the item cannot be a staple.
	assert.Equal(t, TierRare, (&GiantItem{Item: "Capers"}).Tier())
}

func TestItemsByTier(t *testing.T) {
	model, err := FromYAML([]byte(sampleModelYAML))
	require.NoError(t, err)

	every := model.ItemsByTier(TierEveryOrder)
	require.Len(t, every, 1)
	assert.Equal(t, "Cucumber", every[0].Item)

	most := model.ItemsByTier(TierMostOrders)
	require.Len(t, most, 1)
	assert.Equal(t, "Whole milk", most[0].Item)

	occasional := model.ItemsByTier(TierOccasional)
	require.Len(t, occasional, 1)
	assert.Equal(t, "Chicken thighs", occasional[0].Item)

	rare := model.ItemsByTier(TierRare)
	require.Len(t, rare, 1)
	assert.Equal(t, "Capers", rare[0].Item)
}

func TestStaples(t *testing.T) {
	model, err := FromYAML([]byte(sampleModelYAML))
	require.NoError(t, err)

	staples := model.Staples()
	require.Len(t, staples, 1)
	assert.Equal(t, "Cucumber", staples[0].Item)

	empty := &Model{}
	assert.Empty(t, empty.Staples())
}
