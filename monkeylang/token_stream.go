package monkeylang

// TokenStream is the pull contract consumed by the parser: Current scans
// and memoizes one token without advancing, Consume discards it. A stream
// ends with a TokenEOF token that Current keeps returning.
type TokenStream interface {
	Current() (*Token, error)
	Consume()
}

var _ TokenStream = new(Tokenizer)
var _ TokenStream = new(SliceTokenStream)

// SliceTokenStream replays an already-scanned token slice.
type SliceTokenStream struct {
	tokens []*Token
	idx    int
}

func NewSliceTokenStream(tokens []*Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() (*Token, error) {
	if s.idx >= len(s.tokens) {
		return &Token{Kind: TokenEOF}, nil
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}

// Collect drains a stream up to its EOF token.
func Collect(stream TokenStream) ([]*Token, error) {
	var tokens []*Token
	for {
		tok, err := stream.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
		stream.Consume()
	}
}
