package list

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ShoppingList is a finalized, consolidated list ready for output.
type ShoppingList struct {
	Items []ShoppingItem
}

// NewShoppingList wraps consolidated items.
func NewShoppingList(items []ShoppingItem) *ShoppingList {
	return &ShoppingList{Items: items}
}

// Len is the total number of items.
func (l *ShoppingList) Len() int {
	return len(l.Items)
}

// IsEmpty reports whether the list has no items.
func (l *ShoppingList) IsEmpty() bool {
	return len(l.Items) == 0
}

// CategoryGroup is one display category with its items.
type CategoryGroup struct {
	Name  string
	Items []ShoppingItem
}

// ByCategory groups items under their human-readable category name,
// with groups ordered lexicographically by name. The exact grouping
// and ordering is part of the output compatibility contract.
func (l *ShoppingList) ByCategory() []CategoryGroup {
	grouped := make(map[string][]ShoppingItem)
	for _, item := range l.Items {
		key := item.Category.Display()
		grouped[key] = append(grouped[key], item)
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]CategoryGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, CategoryGroup{Name: name, Items: grouped[name]})
	}
	return groups
}

// FormatText renders the list as markdown-style text: one checkbox line
// per item under "## <Category>" headers.
func (l *ShoppingList) FormatText() string {
	var out strings.Builder
	for _, group := range l.ByCategory() {
		fmt.Fprintf(&out, "## %s\n", group.Name)
		for _, item := range group.Items {
			fmt.Fprintf(&out, "- [ ] %s (%d) [%s]\n", item.Name, item.Quantity, item.Source.Label())
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// FormatJSON renders the raw item list as pretty-printed JSON. An
// empty list renders as [], never null.
func (l *ShoppingList) FormatJSON() (string, error) {
	items := l.Items
	if items == nil {
		items = []ShoppingItem{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode shopping list: %w", err)
	}
	return string(data), nil
}

// FormatCompact renders one line per category: uppercased name, then
// comma-joined items with quantities above 1 suffixed " x<qty>".
// Compact enough to paste into a single message.
func (l *ShoppingList) FormatCompact() string {
	var out strings.Builder
	fmt.Fprintf(&out, "Shopping List (%d items)\n", len(l.Items))

	for _, group := range l.ByCategory() {
		names := make([]string, 0, len(group.Items))
		for _, item := range group.Items {
			if item.Quantity > 1 {
				names = append(names, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
			} else {
				names = append(names, item.Name)
			}
		}
		fmt.Fprintf(&out, "%s: %s\n", strings.ToUpper(group.Name), strings.Join(names, ", "))
	}

	return out.String()
}
