// Package recipe holds the recipe archive: the record type, the
// collection loaded from JSON, fuzzy name matching and scoring.
package recipe

// Recipe is one entry in the archive (recipe-links.json schema).
// Parsed once, read-only thereafter. Every field but the name is
// optional and defaults when absent.
type Recipe struct {
	Name           string   `json:"name"`
	URL            string   `json:"url,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Rating         *int     `json:"rating,omitempty"`
	NeedsFixing    bool     `json:"needs_fixing,omitempty"`
	LastMade       string   `json:"last_made,omitempty"`
	TimesMade      int      `json:"times_made,omitempty"`
	Feedback       []string `json:"feedback,omitempty"`
	Source         string   `json:"source,omitempty"`
	Ingredients    []string `json:"ingredients,omitempty"`
	CookTime       string   `json:"cook_time,omitempty"`
	Servings       string   `json:"servings,omitempty"`
	PrimaryProtein string   `json:"primary_protein,omitempty"`
}

// HasIngredients reports whether this recipe carries ingredient data
// (needed for list generation and meaningful scoring).
func (r *Recipe) HasIngredients() bool {
	return len(r.Ingredients) > 0
}
