package repls

import (
	"fmt"
	"io"

	"github.com/jasonahills/monkey-interpreter/monkeylang"
)

// PrintTokens drains a token stream to w, one token per line, stopping at
// the terminal EOF token.
type PrintTokens func(w io.Writer, stream monkeylang.TokenStream) error

func (Module) PrintTokens() PrintTokens {
	return func(w io.Writer, stream monkeylang.TokenStream) error {
		for {
			token, err := stream.Current()
			if err != nil {
				return err
			}
			if token.Kind == monkeylang.TokenEOF {
				return nil
			}
			if _, err := fmt.Fprintln(w, token); err != nil {
				return err
			}
			stream.Consume()
		}
	}
}
