// Package list turns selected recipes and household staples into a
// consolidated shopping list and renders it.
package list

import (
	"encoding/json"
	"fmt"

	"github.com/DSado88/Grocery/internal/core/household"
)

// SourceKind discriminates where a shopping item came from.
type SourceKind int

const (
	// KindRecipe: from a recipe's ingredient list.
	KindRecipe SourceKind = iota
	// KindStaple: weekly staple, auto-added.
	KindStaple
	// KindUserRequest: user explicitly requested.
	KindUserRequest
	// KindFrequencyTrigger: household model frequency trigger.
	KindFrequencyTrigger
)

// ItemSource is the tagged origin of a shopping item. RecipeName is set
// only for KindRecipe.
type ItemSource struct {
	Kind       SourceKind
	RecipeName string
}

// SourceRecipe tags an item as coming from the named recipe.
func SourceRecipe(name string) ItemSource {
	return ItemSource{Kind: KindRecipe, RecipeName: name}
}

// SourceStaple tags an item as a household staple.
func SourceStaple() ItemSource {
	return ItemSource{Kind: KindStaple}
}

// SourceUserRequest tags an item as user-requested.
func SourceUserRequest() ItemSource {
	return ItemSource{Kind: KindUserRequest}
}

// SourceFrequencyTrigger tags an item as added by a frequency trigger.
func SourceFrequencyTrigger() ItemSource {
	return ItemSource{Kind: KindFrequencyTrigger}
}

// Label is the short source tag used in rendered output.
func (s ItemSource) Label() string {
	switch s.Kind {
	case KindRecipe:
		return s.RecipeName
	case KindStaple:
		return "staple"
	case KindUserRequest:
		return "requested"
	default:
		return "frequency"
	}
}

// MarshalJSON keeps the wire shape of the original documents: plain
// strings for the unit variants, {"recipe": name} for recipe items.
func (s ItemSource) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case KindRecipe:
		return json.Marshal(map[string]string{"recipe": s.RecipeName})
	case KindStaple:
		return json.Marshal("staple")
	case KindUserRequest:
		return json.Marshal("user_request")
	case KindFrequencyTrigger:
		return json.Marshal("frequency_trigger")
	}
	return nil, fmt.Errorf("unknown item source kind %d", s.Kind)
}

// UnmarshalJSON accepts both shapes produced by MarshalJSON.
func (s *ItemSource) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		switch tag {
		case "staple":
			*s = SourceStaple()
		case "user_request":
			*s = SourceUserRequest()
		case "frequency_trigger":
			*s = SourceFrequencyTrigger()
		default:
			return fmt.Errorf("unknown item source %q", tag)
		}
		return nil
	}

	var tagged map[string]string
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("invalid item source: %w", err)
	}
	name, ok := tagged["recipe"]
	if !ok {
		return fmt.Errorf("invalid item source object")
	}
	*s = SourceRecipe(name)
	return nil
}

// ShoppingItem is one generated list entry. Created by the generator,
// merged by the consolidator, discarded after formatting.
type ShoppingItem struct {
	Name     string
	Quantity int
	Category household.Category
	Source   ItemSource
	Note     string
}

// wireItem is the JSON shape of a shopping item. The note key is always
// present, null when there is no note.
type wireItem struct {
	Name     string             `json:"name"`
	Quantity int                `json:"quantity"`
	Category household.Category `json:"category"`
	Source   ItemSource         `json:"source"`
	Note     *string            `json:"note"`
}

func (i ShoppingItem) MarshalJSON() ([]byte, error) {
	w := wireItem{
		Name:     i.Name,
		Quantity: i.Quantity,
		Category: i.Category,
		Source:   i.Source,
	}
	if i.Note != "" {
		w.Note = &i.Note
	}
	return json.Marshal(w)
}

func (i *ShoppingItem) UnmarshalJSON(data []byte) error {
	var w wireItem
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*i = ShoppingItem{
		Name:     w.Name,
		Quantity: w.Quantity,
		Category: w.Category,
		Source:   w.Source,
	}
	if w.Note != nil {
		i.Note = *w.Note
	}
	return nil
}
