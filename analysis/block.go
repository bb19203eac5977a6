package analysis

import (
	"strings"
	"unicode"

	"github.com/kjhallgren/cookscale/event"
)

// finalizeBlock runs the block assembler on End.
func (c *collector) finalizeBlock(kind event.BlockKind) {
	if c.mode.define == DefineText || kind == event.BlockText {
		c.buildTextBlock()
	} else {
		c.buildStep()
	}
	c.buffer = nil
}

func (c *collector) buildStep() {
	var items []Item
	for _, ev := range c.buffer {
		switch ev.Kind {
		case event.KindText:
			if c.mode.define == DefineComponents {
				if containsAlnum(ev.Text.Raw) {
					c.report.Warn(diagTextComponentsSuppressed(ev.Text.Sp))
				}
				continue
			}
			if c.extensions.Has(ExtTemperature) {
				if regex, err := c.converter.TemperatureRegex(); err == nil && regex != nil {
					items = append(items, c.extractTemperatures(ev.Text)...)
					continue
				}
			}
			items = append(items, Item{Kind: ItemText, Text: ev.Text.Raw})
		case event.KindIngredient:
			c.ingestIngredient(*ev.Ingredient)
			items = append(items, Item{Kind: ItemIngredient, Index: len(c.recipe.Ingredients) - 1})
		case event.KindCookware:
			c.ingestCookware(*ev.Cookware)
			items = append(items, Item{Kind: ItemCookware, Index: len(c.recipe.Cookware) - 1})
		case event.KindTimer:
			c.ingestTimer(*ev.Timer)
			items = append(items, Item{Kind: ItemTimer, Index: len(c.recipe.Timers) - 1})
		}
	}

	if c.mode.define != DefineComponents {
		c.stepCounter++
		step := &Step{Items: items, Number: c.stepCounter}
		c.current.Content = append(c.current.Content, Content{Kind: ContentStep, Step: step})
	}
}

func (c *collector) buildTextBlock() {
	var sb strings.Builder
	for _, ev := range c.buffer {
		switch ev.Kind {
		case event.KindText:
			sb.WriteString(ev.Text.Raw)
		case event.KindIngredient:
			c.report.Warn(diagComponentInTextBlock(ev.Ingredient.Span))
		case event.KindCookware:
			c.report.Warn(diagComponentInTextBlock(ev.Cookware.Span))
		case event.KindTimer:
			c.report.Warn(diagComponentInTextBlock(ev.Timer.Span))
		}
	}
	if text := sb.String(); text != "" {
		c.current.Content = append(c.current.Content, Content{Kind: ContentText, Text: text})
	}
}

func containsAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// currentSectionStepCount reports how many steps have already been
// appended to the section currently being assembled, for the
// intermediate-reference resolver.
func (c *collector) currentSectionStepCount() int {
	n := 0
	for _, content := range c.current.Content {
		if content.IsStep() {
			n++
		}
	}
	return n
}
