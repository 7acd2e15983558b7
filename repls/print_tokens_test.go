package repls

import (
	"bytes"
	"testing"

	"github.com/jasonahills/monkey-interpreter/modes"
	"github.com/jasonahills/monkey-interpreter/monkeylang"
	"github.com/reusee/dscope"
)

func TestPrintTokens(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		printTokens PrintTokens,
	) {

		t.Run("tokenizer stream", func(t *testing.T) {
			buf := new(bytes.Buffer)
			err := printTokens(buf, monkeylang.NewTokenizer("let x = 42;"))
			if err != nil {
				t.Fatal(err)
			}
			expected := "let\nidentifier(x)\nassign\nint(42)\nsemicolon\n"
			if buf.String() != expected {
				t.Fatalf("got %q", buf.String())
			}
		})

		t.Run("slice stream", func(t *testing.T) {
			buf := new(bytes.Buffer)
			err := printTokens(buf, monkeylang.NewSliceTokenStream([]*monkeylang.Token{
				{Kind: monkeylang.TokenLBrace},
				{Kind: monkeylang.TokenRBrace},
			}))
			if err != nil {
				t.Fatal(err)
			}
			if buf.String() != "lbrace\nrbrace\n" {
				t.Fatalf("got %q", buf.String())
			}
		})

		t.Run("empty input", func(t *testing.T) {
			buf := new(bytes.Buffer)
			err := printTokens(buf, monkeylang.NewTokenizer("   \n\t"))
			if err != nil {
				t.Fatal(err)
			}
			if buf.Len() != 0 {
				t.Fatalf("got %q", buf.String())
			}
		})

	})
}
