package parser

import (
	"strings"

	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/format"
	"github.com/kjhallgren/cookscale/token"
)

// tryReadQuantity reads a `{...}` block: empty braces, a single value
// with an optional `%unit` and trailing `*` auto-scale marker, or a
// pipe-separated "many" list (one value per serving).
func (p *Parser) tryReadQuantity() *ast.Located[ast.Quantity] {
	if p.cur.Type != token.LBRACE {
		return nil
	}
	start := p.cur.Span
	p.advance()

	if p.cur.Type == token.RBRACE {
		end := p.cur.Span
		p.advance()
		q := ast.Quantity{Value: ast.QuantityValue{Single: ast.TextValue("")}}
		return &ast.Located[ast.Quantity]{Value: q, Span: token.Cover(start, end)}
	}

	qv, unit := p.readQuantityBody()
	end := p.cur.Span
	if p.cur.Type == token.RBRACE {
		p.advance()
	}
	q := ast.Quantity{Value: qv, Unit: unit}
	return &ast.Located[ast.Quantity]{Value: q, Span: token.Cover(start, end)}
}

type valueSegment struct {
	text       string
	unit       *ast.Text
	autoScale  bool
	markerSpan token.Span
}

func (p *Parser) readQuantityBody() (ast.QuantityValue, *ast.Text) {
	segments := []valueSegment{p.readValueSegment()}
	for p.cur.Type == token.PIPE {
		p.advance()
		segments = append(segments, p.readValueSegment())
	}

	if len(segments) > 1 {
		values := make([]ast.Value, len(segments))
		for i, s := range segments {
			values[i] = parseValueText(s.text)
		}
		return ast.QuantityValue{Many: values, IsMany: true}, nil
	}

	s := segments[0]
	return ast.QuantityValue{Single: parseValueText(s.text), AutoScale: s.autoScale, MarkerSpan: s.markerSpan}, s.unit
}

func (p *Parser) readValueSegment() valueSegment {
	var valBuf, unitBuf strings.Builder
	var valSpan, unitSpan token.Span
	haveVal, haveUnit, inUnit, autoScale := false, false, false, false
	var markerSpan token.Span

segLoop:
	for {
		switch p.cur.Type {
		case token.PIPE, token.RBRACE, token.NEWLINE, token.EOF:
			break segLoop
		case token.PERCENT:
			inUnit = true
			p.advance()
		case token.ASTERISK:
			autoScale = true
			markerSpan = p.cur.Span
			p.advance()
		default:
			if inUnit {
				if !haveUnit {
					unitSpan, haveUnit = p.cur.Span, true
				} else {
					unitSpan = token.Cover(unitSpan, p.cur.Span)
				}
				unitBuf.WriteString(p.cur.Literal)
			} else {
				if !haveVal {
					valSpan, haveVal = p.cur.Span, true
				} else {
					valSpan = token.Cover(valSpan, p.cur.Span)
				}
				valBuf.WriteString(p.cur.Literal)
			}
			p.advance()
		}
	}

	var unit *ast.Text
	if haveUnit {
		unit = &ast.Text{Raw: strings.TrimSpace(unitBuf.String()), Sp: unitSpan}
	}
	return valueSegment{text: strings.TrimSpace(valBuf.String()), unit: unit, autoScale: autoScale, markerSpan: markerSpan}
}

// parseValueText lowers a quantity value's raw text into a number,
// range, or free-text ast.Value, using format.ParseFraction for each
// numeric part.
func parseValueText(s string) ast.Value {
	if s == "" {
		return ast.TextValue("")
	}
	if i := strings.IndexByte(s[1:], '-'); i >= 0 {
		idx := i + 1
		left, right := strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+1:])
		if lv, ok := format.ParseFraction(left); ok {
			if rv, ok := format.ParseFraction(right); ok {
				return ast.RangeValue(lv, rv)
			}
		}
	}
	if v, ok := format.ParseFraction(s); ok {
		return ast.NumberValue(v)
	}
	return ast.TextValue(s)
}
