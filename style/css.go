package style

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// sanitizeCSS parses the overlay's raw declaration passthrough and returns
// only well-formed declarations. Malformed input is dropped with a debug
// log, never propagated - a typo in custom CSS must not affect the rest of
// the block's presentation.
func (c *Compositor) sanitizeCSS(raw string) []Decl {
	input := parse.NewInput(bytes.NewReader([]byte(raw)))
	parser := css.NewParser(input, true)

	var out []Decl
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				c.log.Debug("Dropping malformed custom CSS", zap.Error(err))
			}
			return out
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			property := strings.TrimSpace(string(data))
			var val strings.Builder
			for _, tok := range parser.Values() {
				val.Write(tok.Data)
			}
			value := strings.TrimSpace(val.String())
			if property == "" || value == "" {
				continue
			}
			out = append(out, Decl{Property: property, Value: value})
		default:
			// inline parsing yields nothing else we care about
		}
	}
}
