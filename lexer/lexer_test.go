package lexer_test

import (
	"testing"

	"github.com/kjhallgren/cookscale/lexer"
	"github.com/kjhallgren/cookscale/token"
)

func collect(input string) []token.Token {
	l := lexer.New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func assertTypes(t *testing.T, input string, want []token.Type) {
	t.Helper()
	got := types(collect(input))
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%q: token %d = %v, want %v (full: %v)", input, i, got[i], want[i], got)
		}
	}
}

func TestLexerIngredientSigil(t *testing.T) {
	assertTypes(t, "@salt", []token.Type{token.INGREDIENT, token.IDENT, token.EOF})
}

func TestLexerRecipeRefSigil(t *testing.T) {
	assertTypes(t, "@@lasagna", []token.Type{token.RECIPE_REF, token.IDENT, token.EOF})
}

func TestLexerCookwareSigil(t *testing.T) {
	assertTypes(t, "#pot", []token.Type{token.COOKWARE, token.IDENT, token.EOF})
}

func TestLexerTimerSigil(t *testing.T) {
	assertTypes(t, "~{10%minutes}", []token.Type{
		token.COOKTIME, token.LBRACE, token.INT, token.PERCENT, token.IDENT, token.RBRACE, token.EOF,
	})
}

func TestLexerNamedTimer(t *testing.T) {
	assertTypes(t, "~rest", []token.Type{token.COOKTIME, token.IDENT, token.EOF})
}

func TestLexerRelativeIntermediateRef(t *testing.T) {
	assertTypes(t, "~2", []token.Type{token.TILDE_REL, token.INT, token.EOF})
}

func TestLexerModifierSigils(t *testing.T) {
	assertTypes(t, "@&salt", []token.Type{token.INGREDIENT, token.REF, token.IDENT, token.EOF})
	assertTypes(t, "@+salt", []token.Type{token.INGREDIENT, token.NEW, token.IDENT, token.EOF})
	assertTypes(t, "@?salt", []token.Type{token.INGREDIENT, token.OPT, token.IDENT, token.EOF})
}

func TestLexerMetadataLine(t *testing.T) {
	assertTypes(t, ">> servings: 4", []token.Type{
		token.METADATA, token.WHITESPACE, token.IDENT, token.COLON, token.WHITESPACE, token.INT, token.EOF,
	})
}

func TestLexerSectionHeader(t *testing.T) {
	// Each '=' lexes as its own SECTION token; the parser is the one
	// that collapses a run of them into one header marker.
	assertTypes(t, "== sauce ==", []token.Type{
		token.SECTION, token.SECTION, token.WHITESPACE, token.IDENT, token.WHITESPACE,
		token.SECTION, token.SECTION, token.EOF,
	})
}

func TestLexerLineComment(t *testing.T) {
	toks := collect("-- a note\n@salt")
	if toks[0].Type != token.COMMENT || toks[0].Literal != "a note" {
		t.Errorf("comment token = %+v", toks[0])
	}
}

func TestLexerBlockComment(t *testing.T) {
	toks := collect("[- skip this -]@salt")
	if toks[0].Type != token.BLOCK_COMMENT || toks[0].Literal != " skip this " {
		t.Errorf("block comment token = %+v", toks[0])
	}
}

func TestLexerYAMLFrontmatter(t *testing.T) {
	toks := collect("---\ntitle: Soup\n---\n@salt")
	if toks[0].Type != token.YAML_FRONTMATTER {
		t.Fatalf("expected YAML_FRONTMATTER first, got %+v", toks[0])
	}
	if toks[0].Literal != "title: Soup\n" {
		t.Errorf("frontmatter content = %q", toks[0].Literal)
	}
}

func TestLexerAsteriskIsAutoScaleMarker(t *testing.T) {
	assertTypes(t, "@thing{2*}", []token.Type{
		token.INGREDIENT, token.IDENT, token.LBRACE, token.INT, token.ASTERISK, token.RBRACE, token.EOF,
	})
}

func TestLexerPipeSeparatesAlias(t *testing.T) {
	assertTypes(t, "@flour|white flour", []token.Type{
		token.INGREDIENT, token.IDENT, token.PIPE, token.IDENT, token.WHITESPACE, token.IDENT, token.EOF,
	})
}

func TestLexerPeekTokenIsSideEffectFree(t *testing.T) {
	l := lexer.New("@salt{1%g}")
	peeked := l.PeekToken()
	next := l.NextToken()
	if peeked != next {
		t.Fatalf("PeekToken() %+v did not match following NextToken() %+v", peeked, next)
	}
	// PeekToken must not have consumed anything: the rest of the stream
	// should be unaffected by how many times it was called.
	l2 := lexer.New("@salt{1%g}")
	l2.PeekToken()
	l2.PeekToken()
	l2.PeekToken()
	if got := l2.NextToken(); got != next {
		t.Fatalf("repeated PeekToken() calls altered lexer state: got %+v, want %+v", got, next)
	}
}

func TestLexerPutBackToken(t *testing.T) {
	l := lexer.New("@salt")
	first := l.NextToken()
	l.PutBackToken(first)
	again := l.NextToken()
	if again != first {
		t.Errorf("PutBackToken did not restore the token: got %+v, want %+v", again, first)
	}
}

func TestLexerBareAmpersandLexesAsRef(t *testing.T) {
	// '&' always lexes as REF regardless of context; whether it's a
	// component modifier or just stray text is the parser's call.
	assertTypes(t, "&pepper", []token.Type{token.REF, token.IDENT, token.EOF})
}
