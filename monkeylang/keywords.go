package monkeylang

var keywords = map[string]TokenKind{
	"fn":     TokenFunction,
	"let":    TokenLet,
	"true":   TokenTrue,
	"false":  TokenFalse,
	"if":     TokenIf,
	"else":   TokenElse,
	"return": TokenReturn,
}

// KeywordKind reports whether text spells a reserved word and which token
// kind it maps to. Lookup happens once per accumulated identifier, so a
// reserved spelling can never come out as a plain identifier.
func KeywordKind(text string) (TokenKind, bool) {
	kind, ok := keywords[text]
	return kind, ok
}
