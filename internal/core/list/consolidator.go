package list

import (
	"sort"
	"strings"
)

// Consolidate merges shopping items that share a name
// (case-insensitive) into one record per distinct name:
//
//   - category: first seen wins
//   - quantity: maximum across merged items
//   - source: Staple outranks every other source, order of arrival
//     irrelevant
//   - notes: concatenated in encounter order, joined by "; "
//
// The result is fully re-sorted by category sort key, then by name.
// Consolidation is idempotent: a second pass over already-merged items
// finds no duplicate names and so never re-joins notes.
func Consolidate(items []ShoppingItem) []ShoppingItem {
	merged := make(map[string]*ShoppingItem)
	var order []string

	for _, item := range items {
		key := strings.ToLower(item.Name)

		existing, ok := merged[key]
		if !ok {
			copied := item
			merged[key] = &copied
			order = append(order, key)
			continue
		}

		if item.Quantity > existing.Quantity {
			existing.Quantity = item.Quantity
		}
		if item.Source.Kind == KindStaple {
			existing.Source = SourceStaple()
		}
		if item.Note != "" {
			if existing.Note == "" {
				existing.Note = item.Note
			} else {
				existing.Note += "; " + item.Note
			}
		}
	}

	result := make([]ShoppingItem, 0, len(merged))
	for _, key := range order {
		result = append(result, *merged[key])
	}

	sort.SliceStable(result, func(i, j int) bool {
		ci, cj := result[i].Category.SortKey(), result[j].Category.SortKey()
		if ci != cj {
			return ci < cj
		}
		return result[i].Name < result[j].Name
	})

	return result
}
