package recipe

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/DSado88/Grocery/internal/core/scoring"
	"github.com/DSado88/Grocery/internal/pkg/common"
)

// Collection is the recipe archive loaded from JSON.
type Collection struct {
	recipes []Recipe
}

// NewCollection wraps an already-parsed recipe slice.
func NewCollection(recipes []Recipe) *Collection {
	return &Collection{recipes: recipes}
}

// FromJSONFile loads a collection from a JSON file on disk.
func FromJSONFile(path string) (*Collection, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewParseError("recipe collection", path, err)
	}
	collection, err := FromJSON(content)
	if err != nil {
		return nil, common.NewParseError("recipe collection", path, err)
	}
	return collection, nil
}

// FromJSON parses a collection from a JSON array of recipes.
func FromJSON(data []byte) (*Collection, error) {
	var recipes []Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, err
	}
	return &Collection{recipes: recipes}, nil
}

// Found is one fuzzy-match hit against the collection.
type Found struct {
	Index      int
	Recipe     *Recipe
	Similarity float64
}

// FindByName fuzzy-matches recipes by name at the default threshold,
// sorted by similarity descending. An empty result is not an error;
// the caller decides how to report a miss.
func (c *Collection) FindByName(query string) []Found {
	matches := FindByName(c.recipes, query, DefaultThreshold)
	found := make([]Found, 0, len(matches))
	for _, m := range matches {
		found = append(found, Found{
			Index:      m.Index,
			Recipe:     &c.recipes[m.Index],
			Similarity: m.Similarity,
		})
	}
	return found
}

// WithIngredients returns all recipes that have ingredient data.
func (c *Collection) WithIngredients() []*Recipe {
	var out []*Recipe
	for i := range c.recipes {
		if c.recipes[i].HasIngredients() {
			out = append(out, &c.recipes[i])
		}
	}
	return out
}

// FilterByProtein returns recipes whose primary protein contains the
// given string, case-insensitively.
func (c *Collection) FilterByProtein(protein string) []*Recipe {
	lower := strings.ToLower(protein)
	var out []*Recipe
	for i := range c.recipes {
		if c.recipes[i].PrimaryProtein != "" && strings.Contains(strings.ToLower(c.recipes[i].PrimaryProtein), lower) {
			out = append(out, &c.recipes[i])
		}
	}
	return out
}

// FilterByTag returns recipes carrying the given tag, matched
// case-insensitively and exactly.
func (c *Collection) FilterByTag(tag string) []*Recipe {
	lower := strings.ToLower(tag)
	var out []*Recipe
	for i := range c.recipes {
		for _, t := range c.recipes[i].Tags {
			if strings.ToLower(t) == lower {
				out = append(out, &c.recipes[i])
				break
			}
		}
	}
	return out
}

// Scored pairs a collection index with its score.
type Scored struct {
	Index int
	Score Score
}

// ScoreAll scores every recipe that has ingredients, sorted by overall
// score descending.
func (c *Collection) ScoreAll(cfg *scoring.Config) []Scored {
	var scored []Scored
	for i := range c.recipes {
		if !c.recipes[i].HasIngredients() {
			continue
		}
		scored = append(scored, Scored{Index: i, Score: ScoreRecipe(&c.recipes[i], cfg)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.Overall > scored[j].Score.Overall
	})

	return scored
}

// Len is the number of recipes in the collection.
func (c *Collection) Len() int {
	return len(c.recipes)
}

// IsEmpty reports whether the collection has no recipes.
func (c *Collection) IsEmpty() bool {
	return len(c.recipes) == 0
}

// Recipes exposes the underlying recipe slice.
func (c *Collection) Recipes() []Recipe {
	return c.recipes
}
