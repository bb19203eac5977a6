package parser

import (
	"strings"

	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/event"
	"github.com/kjhallgren/cookscale/token"
)

// parseYAMLFrontmatter turns a `---`-delimited frontmatter block into
// one Metadata event per top-level "key: value" line. This is a plain
// line splitter rather than a full YAML document parse -- frontmatter
// in practice is a flat key/value block, and a real parse would need a
// full mapping type the rest of the pipeline has no use for.
func parseYAMLFrontmatter(tok token.Token) []event.Event {
	var events []event.Event
	for _, line := range strings.Split(tok.Literal, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		events = append(events, event.Metadata(
			ast.Text{Raw: key, Sp: tok.Span},
			ast.Text{Raw: value, Sp: tok.Span},
		))
	}
	return events
}
