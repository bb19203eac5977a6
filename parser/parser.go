// Package parser turns a lexer.Lexer token stream into the
// event.Event stream package analysis consumes: YAML frontmatter and
// `>>` metadata lines, `=`/`== ==` section headers, and the three
// tagged component kinds with their modifiers, quantities, notes and
// intermediate references. Every block of running text (instructions
// or a standalone ingredient list) is wrapped in Start(Step)/End(Step);
// whether it ends up rendered as a step or as plain text is left to
// the consumer, driven by its own mode state.
package parser

import (
	"strings"

	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/event"
	"github.com/kjhallgren/cookscale/lexer"
	"github.com/kjhallgren/cookscale/token"
)

type Parser struct {
	l   *lexer.Lexer
	cur token.Token
}

func New(input string) *Parser {
	p := &Parser{l: lexer.New(input)}
	p.cur = p.l.NextToken()
	return p
}

func (p *Parser) advance() { p.cur = p.l.NextToken() }

// ParseString runs the full parse and returns the event stream.
func ParseString(input string) []event.Event {
	return New(input).Parse()
}

func (p *Parser) Parse() []event.Event {
	var events []event.Event

	if p.cur.Type == token.YAML_FRONTMATTER {
		events = append(events, parseYAMLFrontmatter(p.cur)...)
		p.advance()
	}

	for {
		p.skipBlankLines()
		switch p.cur.Type {
		case token.EOF:
			return events
		case token.METADATA:
			events = append(events, p.parseMetadataLine())
		case token.SECTION:
			events = append(events, p.parseSectionHeader())
		default:
			events = append(events, p.parseBlock()...)
		}
	}
}

func (p *Parser) skipBlankLines() {
	for p.cur.Type == token.NEWLINE {
		p.advance()
	}
}

// parseMetadataLine handles a `>> key: value` line.
func (p *Parser) parseMetadataLine() event.Event {
	p.advance() // consume >>

	var keyBuf strings.Builder
	keySpan := p.cur.Span
	for p.cur.Type != token.COLON && p.cur.Type != token.NEWLINE && p.cur.Type != token.EOF {
		keyBuf.WriteString(p.cur.Literal)
		keySpan = token.Cover(keySpan, p.cur.Span)
		p.advance()
	}
	if p.cur.Type == token.COLON {
		p.advance()
	}

	var valBuf strings.Builder
	valSpan := p.cur.Span
	for p.cur.Type != token.NEWLINE && p.cur.Type != token.EOF {
		valBuf.WriteString(p.cur.Literal)
		valSpan = token.Cover(valSpan, p.cur.Span)
		p.advance()
	}

	key := ast.Text{Raw: keyBuf.String(), Sp: keySpan}
	value := ast.Text{Raw: valBuf.String(), Sp: valSpan}
	return event.Metadata(key, value)
}

// parseSectionHeader handles `= name` or `== name ==`.
func (p *Parser) parseSectionHeader() event.Event {
	for p.cur.Type == token.SECTION {
		p.advance()
	}
	var nameBuf strings.Builder
	nameSpan := p.cur.Span
	for p.cur.Type != token.NEWLINE && p.cur.Type != token.EOF {
		if p.cur.Type == token.SECTION {
			p.advance()
			continue
		}
		nameBuf.WriteString(p.cur.Literal)
		nameSpan = token.Cover(nameSpan, p.cur.Span)
		p.advance()
	}
	name := strings.TrimSpace(nameBuf.String())
	if name == "" {
		return event.Section(nil)
	}
	t := ast.Text{Raw: name, Sp: nameSpan}
	return event.Section(&t)
}

// parseBlock consumes one paragraph, ended by a blank line, EOF or a
// `=` token (which the caller then reads as a section header), emitting
// Start(Step), its Text/Ingredient/Cookware/Timer events, and End(Step).
func (p *Parser) parseBlock() []event.Event {
	events := []event.Event{event.Start(event.BlockStep)}

	var textBuf strings.Builder
	var textSpan token.Span
	haveText := false
	flushText := func() {
		if haveText && textBuf.Len() > 0 {
			events = append(events, event.Text(ast.Text{Raw: textBuf.String(), Sp: textSpan}))
		}
		textBuf.Reset()
		haveText = false
	}
	appendText := func(tok token.Token) {
		if !haveText {
			textSpan = tok.Span
			haveText = true
		} else {
			textSpan = token.Cover(textSpan, tok.Span)
		}
		textBuf.WriteString(tok.Literal)
	}

	for {
		switch p.cur.Type {
		case token.EOF, token.SECTION:
			flushText()
			events = append(events, event.End(event.BlockStep))
			return events
		case token.NEWLINE:
			if p.blockEndsHere() {
				flushText()
				events = append(events, event.End(event.BlockStep))
				p.advance()
				return events
			}
			appendText(p.cur)
			p.advance()
		case token.COMMENT, token.BLOCK_COMMENT:
			p.advance()
		case token.INGREDIENT, token.RECIPE_REF:
			flushText()
			events = append(events, p.parseIngredient())
		case token.COOKWARE:
			flushText()
			events = append(events, p.parseCookware())
		case token.COOKTIME:
			flushText()
			events = append(events, p.parseTimer())
		default:
			appendText(p.cur)
			p.advance()
		}
	}
}

// blockEndsHere reports whether the current NEWLINE is immediately
// followed by another NEWLINE (a blank line) or by EOF, which ends the
// block.
// It only peeks; the caller is responsible for advancing past p.cur.
func (p *Parser) blockEndsHere() bool {
	next := p.l.PeekToken()
	return next.Type == token.NEWLINE || next.Type == token.EOF
}

func modifierToken(t token.Type) (ast.Modifiers, bool) {
	switch t {
	case token.REF:
		return ast.ModRef, true
	case token.NEW:
		return ast.ModNew, true
	case token.HIDDEN:
		return ast.ModHidden, true
	case token.OPT:
		return ast.ModOpt, true
	default:
		return ast.ModNone, false
	}
}

// readModifiers consumes any modifier sigils immediately after a
// component's leading sigil, returning their union plus the covering
// span (which includes the leading sigil span).
func (p *Parser) readModifiers(sigilSpan token.Span) ast.Located[ast.Modifiers] {
	mods := ast.ModNone
	sp := sigilSpan
	for {
		bit, ok := modifierToken(p.cur.Type)
		if !ok {
			break
		}
		mods |= bit
		sp = token.Cover(sp, p.cur.Span)
		p.advance()
	}
	return ast.At(mods, sp)
}

func isNameContentToken(t token.Type) bool {
	switch t {
	case token.IDENT, token.INT, token.PERIOD, token.DIVIDE, token.HIDDEN:
		return true
	default:
		return false
	}
}

// readName reads a component's name. A single word always counts; a run
// of further whitespace-separated words is only absorbed into the name
// when it is eventually terminated by `{`, `(` or `|` (a genuine
// multi-word name followed by a quantity, note or alias). Otherwise the
// extra words are put back so the caller reads them as running text --
// "@salt more text" must not swallow "more text" into salt's name.
func (p *Parser) readName() ast.Text {
	if !isNameContentToken(p.cur.Type) {
		return ast.Text{}
	}
	sp := p.cur.Span
	var buf strings.Builder
	buf.WriteString(p.cur.Literal)
	p.advance()

	var pending []token.Token
	for p.cur.Type == token.WHITESPACE {
		pending = append(pending, p.cur)
		p.advance()
		if !isNameContentToken(p.cur.Type) {
			break
		}
		for isNameContentToken(p.cur.Type) {
			pending = append(pending, p.cur)
			p.advance()
		}
	}

	if p.cur.Type == token.LBRACE || p.cur.Type == token.PIPE || p.cur.Type == token.LPAREN {
		for _, tok := range pending {
			sp = token.Cover(sp, tok.Span)
			buf.WriteString(tok.Literal)
		}
		return ast.Text{Raw: buf.String(), Sp: sp}
	}

	// Not a multi-word name: restore the lexer to right after the first
	// word by pushing the disqualifying token and everything tentatively
	// consumed back, in reverse order, then resuming at the first of them.
	if len(pending) == 0 {
		return ast.Text{Raw: buf.String(), Sp: sp}
	}
	rest := append(pending[1:], p.cur)
	for i := len(rest) - 1; i >= 0; i-- {
		p.l.PutBackToken(rest[i])
	}
	p.cur = pending[0]
	return ast.Text{Raw: buf.String(), Sp: sp}
}

func (p *Parser) tryReadAlias() *ast.Text {
	if p.cur.Type != token.PIPE {
		return nil
	}
	p.advance()
	name := p.readName()
	return &name
}

func (p *Parser) tryReadNote() *ast.Text {
	if p.cur.Type != token.LPAREN {
		return nil
	}
	p.advance()
	var buf strings.Builder
	var sp token.Span
	have := false
	for p.cur.Type != token.RPAREN && p.cur.Type != token.NEWLINE && p.cur.Type != token.EOF {
		if !have {
			sp = p.cur.Span
			have = true
		} else {
			sp = token.Cover(sp, p.cur.Span)
		}
		buf.WriteString(p.cur.Literal)
		p.advance()
	}
	if p.cur.Type == token.RPAREN {
		p.advance()
	}
	text := strings.TrimSpace(buf.String())
	if text == "" {
		return nil
	}
	return &ast.Text{Raw: text, Sp: sp}
}

func (p *Parser) tryReadIntermediateData() *ast.Located[ast.IntermediateData] {
	if p.cur.Type != token.LPAREN {
		return nil
	}
	save := p.cur
	p.advance()
	if p.cur.Type != token.SECTION {
		return p.putBackParen(save)
	}
	start := save.Span
	p.advance() // consume '='

	refMode := ast.RefNumber
	if p.cur.Type == token.TILDE_REL {
		refMode = ast.RefRelative
		p.advance()
	}
	if p.cur.Type != token.INT {
		// Malformed "(=...)": the '(' and '=' (and possibly '~')
		// already read are not put back. This is not valid Cooklang
		// either way; give up on the note/intermediate-ref distinction
		// and let the caller continue from wherever the cursor sits.
		return nil
	}
	val := parseIntLiteral(p.cur.Literal)
	p.advance()

	target := ast.TargetStep
	for p.cur.Type == token.WHITESPACE {
		p.advance()
	}
	if p.cur.Type == token.IDENT && strings.EqualFold(p.cur.Literal, "section") {
		target = ast.TargetSection
		p.advance()
	}
	for p.cur.Type == token.WHITESPACE {
		p.advance()
	}
	end := p.cur.Span
	if p.cur.Type == token.RPAREN {
		p.advance()
	}
	data := ast.IntermediateData{Val: val, RefMode: refMode, TargetKind: target}
	return &ast.Located[ast.IntermediateData]{Value: data, Span: token.Cover(start, end)}
}

// putBackParen is reached when the `(` didn't introduce an
// intermediate-reference; it pushes the token read after the `(` back
// onto the lexer and makes the LPAREN current again, so tryReadNote
// can re-scan it.
func (p *Parser) putBackParen(lparen token.Token) *ast.Located[ast.IntermediateData] {
	p.l.PutBackToken(p.cur)
	p.cur = lparen
	return nil
}

func parseIntLiteral(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
