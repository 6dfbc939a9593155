package scoring

import "strings"

// Cooking units recognized after a leading quantity, longest first so
// "tablespoons" wins over "tablespoon".
var units = []string{
	"tablespoons", "tablespoon", "teaspoons", "teaspoon",
	"tbsp.", "tbsp", "tsp.", "tsp",
	"cups", "cup", "ounces", "ounce", "oz.",
	"pounds", "pound", "lbs.", "lbs", "lb.",
	"inches", "inch", "\"",
}

// CleanIngredientName strips a leading quantity and unit from a raw
// ingredient string.
//
//	"2 Tbsp. extra-virgin olive oil" -> "extra-virgin olive oil"
//	"1/2 cup coconut milk"           -> "coconut milk"
//	"8 garlic cloves, thinly sliced" -> "garlic cloves, thinly sliced"
//	"salt and pepper"                -> "salt and pepper"
//
// If stripping would leave nothing, the trimmed input is returned
// unchanged rather than an empty name.
func CleanIngredientName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	pos := 0

	// Skip leading digits, fractions, decimals.
	for pos < len(trimmed) && (isASCIIDigit(trimmed[pos]) || trimmed[pos] == '/' || trimmed[pos] == '.') {
		pos++
	}

	// Only look for a unit when a quantity was actually consumed.
	if pos > 0 {
		for pos < len(trimmed) && trimmed[pos] == ' ' {
			pos++
		}

		if unitEnd := skipUnit(trimmed[pos:]); unitEnd > 0 {
			pos += unitEnd
			for pos < len(trimmed) && trimmed[pos] == ' ' {
				pos++
			}
		}
	}

	result := trimmed[pos:]
	if result == "" {
		return trimmed
	}
	return result
}

// skipUnit reports how many bytes of s a leading cooking unit occupies,
// or 0 when s does not start with one. The unit must be followed by a
// space, a period, or the end of the string.
func skipUnit(s string) int {
	lower := strings.ToLower(s)
	for _, unit := range units {
		if !strings.HasPrefix(lower, unit) {
			continue
		}
		after := s[len(unit):]
		if after == "" || after[0] == ' ' || after[0] == '.' {
			if after != "" && after[0] == '.' {
				return len(unit) + 1
			}
			return len(unit)
		}
	}
	return 0
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
