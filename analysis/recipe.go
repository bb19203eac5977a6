// Package analysis implements the semantic analysis pass: an
// event-driven walker that turns a lexer/parser event stream into a
// validated ScalableRecipe plus a diag.Report. This file defines the
// output data model.
package analysis

import "github.com/kjhallgren/cookscale/ast"

// Extensions is a bitset of optional analyzer features. The empty set
// is the strict minimum.
type Extensions uint16

const ExtNone Extensions = 0

const (
	ExtTemperature Extensions = 1 << iota
	ExtModes
	ExtAdvancedUnits
	ExtCookwareAmounts
	ExtRecipeNotes
)

func (e Extensions) Has(bit Extensions) bool { return e&bit == bit }

// Metadata is the recipe's free-form key/value map plus the typed slot
// for recognized keys.
type Metadata struct {
	Map      map[string]string
	Servings []int
	order    []string
}

func NewMetadata() *Metadata {
	return &Metadata{Map: make(map[string]string)}
}

// Insert records a raw metadata entry, preserving first-seen order.
func (m *Metadata) Insert(key, value string) {
	if _, exists := m.Map[key]; !exists {
		m.order = append(m.order, key)
	}
	m.Map[key] = value
}

// Ordered returns the metadata keys in insertion order.
func (m *Metadata) Ordered() []string { return m.order }

// ScalableRecipe is the analyzer's output.
type ScalableRecipe struct {
	Metadata         *Metadata
	Sections         []*Section
	Ingredients      []*Ingredient
	Cookware         []*Cookware
	Timers           []*Timer
	InlineQuantities []Quantity
}

// Section is an ordered sequence of steps and text blocks.
type Section struct {
	Name    string
	Content []Content
}

func (s *Section) IsEmpty() bool { return len(s.Content) == 0 }

// ContentKind tags a Content's payload.
type ContentKind int

const (
	ContentStep ContentKind = iota
	ContentText
)

type Content struct {
	Kind ContentKind
	Step *Step
	Text string
}

func (c Content) IsStep() bool { return c.Kind == ContentStep }
func (c Content) IsText() bool { return c.Kind == ContentText }

// Step is an ordered sequence of items plus the step-counter value at
// the time it was emitted.
type Step struct {
	Items  []Item
	Number int
}

// ItemKind tags an Item's payload.
type ItemKind int

const (
	ItemText ItemKind = iota
	ItemIngredient
	ItemCookware
	ItemTimer
	ItemInlineQuantity
)

type Item struct {
	Kind  ItemKind
	Text  string
	Index int // into the table matching Kind, for non-text kinds
}

// RelationKind tags a ComponentRelation's payload.
type RelationKind int

const (
	RelationDefinition RelationKind = iota
	RelationReference
)

// ReferenceTarget is what an ingredient Reference relation points at:
// another ingredient, or (via an intermediate reference) a step or
// section.
type ReferenceTarget int

const (
	TargetIngredientOrCookware ReferenceTarget = iota
	TargetStep
	TargetSection
)

// ComponentRelation is either a Definition (tracking back-references)
// or a Reference to an earlier Definition.
type ComponentRelation struct {
	Kind RelationKind

	// Definition
	ReferencedFrom []int
	DefinedInStep  bool

	// Reference
	ReferencesTo int
	Target       ReferenceTarget
}

func definitionRelation(definedInStep bool) ComponentRelation {
	return ComponentRelation{Kind: RelationDefinition, DefinedInStep: definedInStep}
}

func referenceRelation(to int, target ReferenceTarget) ComponentRelation {
	return ComponentRelation{Kind: RelationReference, ReferencesTo: to, Target: target}
}

// Ingredient is an `@name{qty%unit}(note)` component.
type Ingredient struct {
	Name      string
	Alias     string
	Note      string
	Quantity  *Quantity
	Modifiers ast.Modifiers
	Relation  ComponentRelation
}

// Cookware is a `#name{qty}(note)` component; its quantity shares
// Ingredient's shape but its unit, if any, carries no physical-quantity
// semantics -- it is never passed through the Converter.
type Cookware struct {
	Name      string
	Alias     string
	Note      string
	Quantity  *Quantity
	Modifiers ast.Modifiers
	Relation  ComponentRelation
}

// Timer is a `~name{qty%unit}` component. Timers never participate in
// reference resolution.
type Timer struct {
	Name     string
	Quantity *Quantity
}

// ValueKind tags a ScalableValue's shape.
type ValueKind int

const (
	ValueFixed ValueKind = iota
	ValueLinear
	ValueByServings
)

// ScalableValue is a lowered quantity value.
type ScalableValue struct {
	Kind     ValueKind
	Fixed    ast.Value
	ByServings []ast.Value
}

func (v ScalableValue) IsText() bool {
	switch v.Kind {
	case ValueByServings:
		return len(v.ByServings) > 0 && v.ByServings[0].IsText()
	default:
		return v.Fixed.IsText()
	}
}

// Quantity pairs a scalable value with its optional (trimmed) unit
// string.
type Quantity struct {
	Value ScalableValue
	Unit  string
}

func (q Quantity) HasUnit() bool { return q.Unit != "" }
