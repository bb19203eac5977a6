package parser

import (
	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/event"
	"github.com/kjhallgren/cookscale/token"
)

// parseIngredient handles `@name`, `@@recipe`, and every modifier,
// intermediate-reference, quantity, alias and note variant of an
// ingredient component.
func (p *Parser) parseIngredient() event.Event {
	sigil := p.cur
	isRecipeRef := sigil.Type == token.RECIPE_REF
	start := sigil.Span
	p.advance()

	modifiers := p.readModifiers(sigil.Span)
	if isRecipeRef {
		modifiers.Value |= ast.ModRecipe
	}

	intermediate := p.tryReadIntermediateData()

	name := p.readName()
	alias := p.tryReadAlias()
	quantity := p.tryReadQuantity()
	note := p.tryReadNote()

	end := name.Sp
	if quantity != nil {
		end = quantity.Span
	}
	if note != nil {
		end = note.Sp
	}

	ai := ast.Ingredient{
		Name:             name,
		Alias:            alias,
		Note:             note,
		Quantity:         quantity,
		Modifiers:        modifiers,
		IntermediateData: intermediate,
	}
	return event.IngredientEvent(ast.At(ai, token.Cover(start, end)))
}

func (p *Parser) parseCookware() event.Event {
	sigil := p.cur
	start := sigil.Span
	p.advance()

	modifiers := p.readModifiers(sigil.Span)
	name := p.readName()
	alias := p.tryReadAlias()
	quantity := p.tryReadQuantity()
	note := p.tryReadNote()

	end := name.Sp
	if quantity != nil {
		end = quantity.Span
	}
	if note != nil {
		end = note.Sp
	}

	ac := ast.Cookware{Name: name, Alias: alias, Note: note, Quantity: quantity, Modifiers: modifiers}
	return event.CookwareEvent(ast.At(ac, token.Cover(start, end)))
}

func (p *Parser) parseTimer() event.Event {
	sigil := p.cur
	start := sigil.Span
	p.advance()

	name := p.readName()
	quantity := p.tryReadQuantity()

	var namePtr *ast.Text
	if name.Raw != "" {
		namePtr = &name
	}

	end := name.Sp
	if quantity != nil {
		end = quantity.Span
	}

	at := ast.Timer{Name: namePtr, Quantity: quantity}
	return event.TimerEvent(ast.At(at, token.Cover(start, end)))
}
