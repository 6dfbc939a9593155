package household

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Store identifies where an item is usually bought. Values are the
// snake_case keys used in household-model.yaml; unknown stores pass
// through untouched.
type Store string

const (
	StoreGiant      Store = "giant"
	StoreAcme       Store = "acme"
	StoreAmazon     Store = "amazon"
	StoreTraderJoes Store = "trader_joes"
)

// Category is a product category matching the store layout. Values are
// the snake_case keys used in the data documents; categories outside the
// known set are carried as-is.
type Category string

const (
	CategoryProduce    Category = "produce"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryDeli       Category = "deli"
	CategoryFrozen     Category = "frozen"
	CategoryCanned     Category = "canned"
	CategoryBread      Category = "bread"
	CategoryPasta      Category = "pasta"
	CategoryBeverages  Category = "beverages"
	CategorySnacks     Category = "snacks"
	CategoryCondiments Category = "condiments"
	CategoryBaking     Category = "baking"
	CategoryBreakfast  Category = "breakfast"
	CategoryBaby       Category = "baby"
	CategoryHousehold  Category = "household"
	CategoryHealth     Category = "health"
	CategoryPersonal   Category = "personal"
	CategoryPet        Category = "pet"
)

var categoryNames = map[Category]string{
	CategoryProduce:    "Produce",
	CategoryDairy:      "Dairy",
	CategoryMeat:       "Meat",
	CategoryDeli:       "Deli",
	CategoryFrozen:     "Frozen",
	CategoryCanned:     "Canned",
	CategoryBread:      "Bread",
	CategoryPasta:      "Pasta",
	CategoryBeverages:  "Beverages",
	CategorySnacks:     "Snacks",
	CategoryCondiments: "Condiments",
	CategoryBaking:     "Baking",
	CategoryBreakfast:  "Breakfast",
	CategoryBaby:       "Baby",
	CategoryHousehold:  "Household",
	CategoryHealth:     "Health",
	CategoryPersonal:   "Personal",
	CategoryPet:        "Pet",
}

// Display returns the human-readable category name. Categories outside
// the known set display as their raw value.
func (c Category) Display() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// SortKey returns the key consolidated lists are ordered by. Known
// categories sort by display name; ad-hoc categories sort under
// Other("..."), which keeps the output ordering reproducible across runs.
func (c Category) SortKey() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Other(%q)", string(c))
}

// MarshalJSON renders known categories as plain snake_case strings and
// ad-hoc categories in the tagged {"other": name} form, matching the
// data documents' wire shape.
func (c Category) MarshalJSON() ([]byte, error) {
	if _, ok := categoryNames[c]; ok {
		return json.Marshal(string(c))
	}
	return json.Marshal(map[string]string{"other": string(c)})
}

// UnmarshalJSON accepts both shapes produced by MarshalJSON.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Category(s)
		return nil
	}

	var tagged map[string]string
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("invalid category: %w", err)
	}
	name, ok := tagged["other"]
	if !ok {
		return fmt.Errorf("invalid category object")
	}
	*c = Category(name)
	return nil
}

// FrequencyTier classifies a recurring item by purchase history
// (N out of 18 store orders).
type FrequencyTier int

const (
	// TierEveryOrder: 12-18/18 orders. Auto-add to every list.
	TierEveryOrder FrequencyTier = iota
	// TierMostOrders: 7-11/18 orders. Add most weeks.
	TierMostOrders
	// TierOccasional: 3-6/18 orders. Add as needed.
	TierOccasional
	// TierRare: appeared fewer than 3 times.
	TierRare
)

func (t FrequencyTier) String() string {
	switch t {
	case TierEveryOrder:
		return "EveryOrder"
	case TierMostOrders:
		return "MostOrders"
	case TierOccasional:
		return "Occasional"
	default:
		return "Rare"
	}
}

// TierFromFrequency classifies an item based on how many of the total
// orders it appeared in. Boundaries: 12/18, 7/18, 3/18.
func TierFromFrequency(appearances, totalOrders uint) FrequencyTier {
	if totalOrders == 0 {
		return TierRare
	}
	ratio := float64(appearances) / float64(totalOrders)
	switch {
	case ratio >= 12.0/18.0:
		return TierEveryOrder
	case ratio >= 7.0/18.0:
		return TierMostOrders
	case ratio >= 3.0/18.0:
		return TierOccasional
	default:
		return TierRare
	}
}

// ParseFrequencyTier parses "14/18" style frequency strings into a tier.
// Anything that does not look like "N/M" classifies as Rare.
func ParseFrequencyTier(freq string) FrequencyTier {
	parts := strings.Split(freq, "/")
	if len(parts) != 2 {
		return TierRare
	}
	appearances, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 8)
	if err != nil {
		appearances = 0
	}
	total, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 8)
	if err != nil {
		total = 0
	}
	return TierFromFrequency(uint(appearances), uint(total))
}
