package analysis

import (
	"iter"
	"strings"

	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/convert"
	"github.com/kjhallgren/cookscale/diag"
	"github.com/kjhallgren/cookscale/event"
	"github.com/kjhallgren/cookscale/metaparse"
	"github.com/kjhallgren/cookscale/refcheck"
	"github.com/kjhallgren/cookscale/token"
)

// collector carries all per-document analysis state: the output
// recipe under construction, the diagnostic sink, mode flags, and the
// external collaborators, rolled into one struct the way a
// single-pass walker naturally accumulates its working state.
type collector struct {
	extensions Extensions
	converter  convert.Converter
	refChecker refcheck.Checker

	report *diag.Report
	mode   *modeState
	recipe *ScalableRecipe

	ingredientSpans []token.Span
	cookwareSpans   []token.Span
	servingsSpan    token.Span

	sections    []*Section
	current     *Section
	stepCounter int
	buffer      []event.Event
}

// Analyze runs the semantic analysis pass over an event stream. It
// returns the resulting recipe and the accumulated diagnostics; the
// recipe is nil iff a parse-stage error was observed.
func Analyze(events iter.Seq[event.Event], converter convert.Converter, refChecker refcheck.Checker, extensions Extensions) (*ScalableRecipe, *diag.Report) {
	c := &collector{
		extensions: extensions,
		converter:  converter,
		refChecker: refChecker,
		report:     &diag.Report{},
		mode:       newModeState(),
		recipe:     &ScalableRecipe{Metadata: NewMetadata()},
		current:    &Section{},
	}

	aborted := false
	for ev := range events {
		if aborted {
			if ev.Kind == event.KindError || ev.Kind == event.KindWarning {
				pushParseDiagnostic(c.report, ev.Diagnostic)
			}
			continue
		}

		switch ev.Kind {
		case event.KindMetadata:
			c.ingestMetadata(ev)
		case event.KindSection:
			c.startSection(ev.SectionName)
		case event.KindStart:
			c.buffer = nil
		case event.KindEnd:
			c.finalizeBlock(ev.Block)
		case event.KindText, event.KindIngredient, event.KindCookware, event.KindTimer:
			c.buffer = append(c.buffer, ev)
		case event.KindWarning:
			pushParseDiagnostic(c.report, ev.Diagnostic)
		case event.KindError:
			pushParseDiagnostic(c.report, ev.Diagnostic)
			aborted = true
			c.report.Retain(func(d *diag.Diagnostic) bool { return d.Stage == diag.StageParse })
		}
	}

	if aborted {
		return nil, c.report
	}

	if !c.current.IsEmpty() {
		c.sections = append(c.sections, c.current)
	}
	c.recipe.Sections = c.sections
	return c.recipe, c.report
}

// pushParseDiagnostic records an event-carried diagnostic, forcing its
// stage to Parse: these diagnostics always originate upstream of the
// analyzer (the lexer/parser), never from the analyzer's own checks.
func pushParseDiagnostic(report *diag.Report, d *diag.Diagnostic) {
	if d == nil {
		return
	}
	d.Stage = diag.StageParse
	report.Push(d)
}

func (c *collector) startSection(name *ast.Text) {
	if !c.current.IsEmpty() {
		c.sections = append(c.sections, c.current)
	}
	c.stepCounter = 0
	sectionName := ""
	if name != nil {
		sectionName = name.TextTrimmed()
	}
	c.current = &Section{Name: sectionName}
}

// ingestMetadata routes a metadata event through mode state or the
// typed-metadata parser, or falls through to the plain map.
func (c *collector) ingestMetadata(ev event.Event) {
	key := ev.Key.TextTrimmed()
	value := ev.Value.TextOuterTrimmed()

	if kind, isModeKey := modeKey(key); isModeKey {
		if c.extensions.Has(ExtModes) {
			if !c.mode.applyModeDirective(kind, value) {
				c.report.Error(diagUnknownModeValue(kind, value, ev.Value.Sp))
			}
			return
		}
	} else if strings.HasPrefix(key, "[") && strings.HasSuffix(key, "]") {
		c.report.Warn(diagUnknownModeKey(key, ev.Key.Sp))
	}

	if typed, ok, werr := metaparse.Parse(key, value); ok {
		if werr != nil {
			c.report.Warn(diag.Warn("could not parse metadata value for "+key+": "+werr.Error(), diag.Label{Span: ev.Value.Sp}))
		} else if len(typed.Servings) > 0 {
			c.recipe.Metadata.Servings = typed.Servings
			c.servingsSpan = ev.Value.Sp
		}
	}

	c.recipe.Metadata.Insert(key, value)
}
