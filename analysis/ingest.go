package analysis

import (
	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/convert"
	"github.com/kjhallgren/cookscale/token"
)

func textOrEmpty(t *ast.Text) string {
	if t == nil {
		return ""
	}
	return t.TextTrimmed()
}

func (c *collector) ingredientNameAt(i int) string           { return c.recipe.Ingredients[i].Name }
func (c *collector) ingredientModifiersAt(i int) ast.Modifiers { return c.recipe.Ingredients[i].Modifiers }
func (c *collector) ingredientSpanAt(i int) token.Span        { return c.ingredientSpans[i] }
func (c *collector) ingredientIsDefinitionAt(i int) bool {
	return c.recipe.Ingredients[i].Relation.Kind == RelationDefinition
}

func (c *collector) cookwareNameAt(i int) string            { return c.recipe.Cookware[i].Name }
func (c *collector) cookwareModifiersAt(i int) ast.Modifiers { return c.recipe.Cookware[i].Modifiers }
func (c *collector) cookwareSpanAt(i int) token.Span         { return c.cookwareSpans[i] }
func (c *collector) cookwareIsDefinitionAt(i int) bool {
	return c.recipe.Cookware[i].Relation.Kind == RelationDefinition
}

func (c *collector) appendIngredient(ing *Ingredient, sp token.Span) int {
	idx := len(c.recipe.Ingredients)
	c.recipe.Ingredients = append(c.recipe.Ingredients, ing)
	c.ingredientSpans = append(c.ingredientSpans, sp)
	return idx
}

func (c *collector) appendCookware(cw *Cookware, sp token.Span) int {
	idx := len(c.recipe.Cookware)
	c.recipe.Cookware = append(c.recipe.Cookware, cw)
	c.cookwareSpans = append(c.cookwareSpans, sp)
	return idx
}

// ingestIngredient builds an Ingredient from a parser event and runs it
// through either the intermediate-reference resolver or the generic
// component resolver.
func (c *collector) ingestIngredient(loc ast.Located[ast.Ingredient]) {
	ai := loc.Value
	name := ai.Name.TextTrimmed()
	modifiers := ai.Modifiers.Value
	modSpan := ai.Modifiers.Span
	quantity := lowerQuantity(c.report, ai.Quantity, c.mode.autoScaleIngredients, c.recipe.Metadata.Servings, c.servingsSpan)

	if ai.IntermediateData != nil {
		if modifiers.Intersects(ast.ModRecipe | ast.ModHidden | ast.ModNew) {
			c.report.Error(diagIntermediateBadModifiers(ai.IntermediateData.Span, modifiers.Names()))
		}
		target, n, ok := resolveIntermediateRef(c.report, ai.IntermediateData.Value, ai.IntermediateData.Span, c.currentSectionStepCount(), len(c.sections))
		ing := &Ingredient{Name: name, Alias: textOrEmpty(ai.Alias), Note: textOrEmpty(ai.Note), Quantity: quantity, Modifiers: modifiers}
		if ok {
			ing.Relation = referenceRelation(n, target)
		} else {
			ing.Relation = definitionRelation(c.mode.define != DefineComponents)
		}
		c.appendIngredient(ing, loc.Span)
		return
	}

	newMods, decision := resolveReference(c.report, c.mode, name, modifiers, modSpan,
		ast.ModHidden|ast.ModOpt|ast.ModRecipe,
		len(c.recipe.Ingredients), c.ingredientNameAt, c.ingredientModifiersAt, c.ingredientSpanAt, c.ingredientIsDefinitionAt)

	ing := &Ingredient{Name: name, Alias: textOrEmpty(ai.Alias), Note: textOrEmpty(ai.Note), Quantity: quantity, Modifiers: newMods}

	if decision.Found {
		def := c.recipe.Ingredients[decision.TargetIndex]
		defSpan := c.ingredientSpanAt(decision.TargetIndex)

		if ing.Note != "" {
			c.report.Error(diagNoteInReference(loc.Span))
		}
		if c.extensions.Has(ExtAdvancedUnits) && quantity != nil {
			c.checkUnitCompatibility(decision.TargetIndex, quantity, loc.Span)
		}
		if def.Quantity != nil && quantity != nil {
			if !def.Relation.DefinedInStep {
				c.report.Error(diagConflictingReferenceQuantities(loc.Span, defSpan))
			}
			if def.Quantity.Value.IsText() != quantity.Value.IsText() {
				c.report.Warn(diagTextNumberMismatch(loc.Span, defSpan))
			}
		}

		ing.Relation = referenceRelation(decision.TargetIndex, TargetIngredientOrCookware)
		def.Relation.ReferencedFrom = append(def.Relation.ReferencedFrom, len(c.recipe.Ingredients))
	} else {
		ing.Relation = definitionRelation(c.mode.define != DefineComponents)
	}

	c.appendIngredient(ing, loc.Span)

	if modifiers.Contains(ast.ModRecipe) && !modifiers.Contains(ast.ModRef) && c.refChecker != nil {
		if res := c.refChecker(name); !res.Found {
			c.report.Warn(diagRecipeNotFound(name, loc.Span, res.Hints))
		}
	}
}

// checkUnitCompatibility compares the new reference's unit against the
// definition and every already-recorded reference to it.
func (c *collector) checkUnitCompatibility(defIdx int, newQuantity *Quantity, newSpan token.Span) {
	def := c.recipe.Ingredients[defIdx]
	check := func(existing *Quantity, existingSpan token.Span) {
		if existing == nil {
			return
		}
		if incompat := c.converter.Compatible(newQuantity.Unit, existing.Unit); incompat != nil {
			c.report.Warn(diagIncompatibleUnits(newSpan, existingSpan, incompat, newQuantity.Unit, existing.Unit))
		}
	}
	check(def.Quantity, c.ingredientSpanAt(defIdx))
	for _, r := range def.Relation.ReferencedFrom {
		existing := c.recipe.Ingredients[r]
		check(existing.Quantity, c.ingredientSpanAt(r))
	}
}

// ingestCookware mirrors ingestIngredient without intermediate references
// or the unit-compatibility, note-in-reference, reference-quantity and
// recipe-link checks, which are ingredient-specific.
func (c *collector) ingestCookware(loc ast.Located[ast.Cookware]) {
	ac := loc.Value
	name := ac.Name.TextTrimmed()
	modifiers := ac.Modifiers.Value
	modSpan := ac.Modifiers.Span
	quantity := lowerQuantity(c.report, ac.Quantity, false, c.recipe.Metadata.Servings, c.servingsSpan)

	newMods, decision := resolveReference(c.report, c.mode, name, modifiers, modSpan,
		ast.ModHidden|ast.ModOpt,
		len(c.recipe.Cookware), c.cookwareNameAt, c.cookwareModifiersAt, c.cookwareSpanAt, c.cookwareIsDefinitionAt)

	cw := &Cookware{Name: name, Alias: textOrEmpty(ac.Alias), Note: textOrEmpty(ac.Note), Quantity: quantity, Modifiers: newMods}

	if decision.Found {
		def := c.recipe.Cookware[decision.TargetIndex]
		cw.Relation = referenceRelation(decision.TargetIndex, TargetIngredientOrCookware)
		def.Relation.ReferencedFrom = append(def.Relation.ReferencedFrom, len(c.recipe.Cookware))
	} else {
		cw.Relation = definitionRelation(c.mode.define != DefineComponents)
	}

	c.appendCookware(cw, loc.Span)
}

// ingestTimer builds a Timer. Timers never participate in reference
// resolution.
func (c *collector) ingestTimer(loc ast.Located[ast.Timer]) {
	at := loc.Value
	name := textOrEmpty(at.Name)
	quantity := lowerQuantity(c.report, at.Quantity, false, c.recipe.Metadata.Servings, c.servingsSpan)

	if c.extensions.Has(ExtAdvancedUnits) && quantity != nil {
		switch {
		case quantity.Value.IsText():
			c.report.Error(diagTimerTextValue(loc.Span))
		case quantity.Unit != "":
			info := c.converter.UnitInfo(quantity.Unit)
			if !info.Known {
				c.report.Error(diagTimerUnknownUnit(quantity.Unit, loc.Span))
			} else if info.PhysicalQuantity != convert.Time {
				c.report.Error(diagTimerNonTimeUnit(quantity.Unit, loc.Span))
			}
		}
	}

	c.recipe.Timers = append(c.recipe.Timers, &Timer{Name: name, Quantity: quantity})
}
