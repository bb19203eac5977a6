package analysis

import (
	"strconv"
	"strings"

	"github.com/kjhallgren/cookscale/ast"
)

// extractTemperatures splits a text run around every match of the
// converter-supplied temperature regex, appending each recognized
// quantity to the recipe's inline-quantity table. Capture group 1 is
// the number, group 3 is the unit text.
func (c *collector) extractTemperatures(t ast.Text) []Item {
	regex, err := c.converter.TemperatureRegex()
	if err != nil || regex == nil {
		return []Item{{Kind: ItemText, Text: t.Raw}}
	}

	var items []Item
	rest := t.Raw
	for {
		loc := regex.FindStringSubmatchIndex(rest)
		if loc == nil || len(loc) < 8 {
			break
		}
		before := rest[:loc[0]]
		matched := rest[loc[0]:loc[1]]
		numText := rest[loc[2]:loc[3]]
		unitText := strings.TrimSpace(rest[loc[6]:loc[7]])

		value, perr := strconv.ParseFloat(strings.ReplaceAll(numText, ",", "."), 64)
		if perr != nil {
			if before != "" {
				items = append(items, Item{Kind: ItemText, Text: before})
			}
			items = append(items, Item{Kind: ItemText, Text: matched})
			rest = rest[loc[1]:]
			continue
		}

		if before != "" {
			items = append(items, Item{Kind: ItemText, Text: before})
		}
		q := Quantity{Value: ScalableValue{Kind: ValueFixed, Fixed: ast.NumberValue(value)}, Unit: unitText}
		c.recipe.InlineQuantities = append(c.recipe.InlineQuantities, q)
		items = append(items, Item{Kind: ItemInlineQuantity, Index: len(c.recipe.InlineQuantities) - 1})
		rest = rest[loc[1]:]
	}
	if rest != "" {
		items = append(items, Item{Kind: ItemText, Text: rest})
	}
	return items
}
