package monkeylang

import (
	"strconv"
	"unicode"
)

// Tokenizer scans Monkey source text into a stream of tokens. It owns a
// cursor over the decoded source and never rewinds: the grammar needs at
// most one character of lookahead, served by peek without consuming.
type Tokenizer struct {
	source  []rune
	idx     int
	current *Token
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		source: []rune(source),
	}
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		t.current = t.parseNext()
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

// All iterates the remaining tokens in order, stopping before the terminal
// EOF token. Breaking out leaves the unconsumed token current.
func (t *Tokenizer) All(yield func(*Token) bool) {
	for {
		tok, err := t.Current()
		if err != nil || tok.Kind == TokenEOF {
			return
		}
		if !yield(tok) {
			return
		}
		t.Consume()
	}
}

func (t *Tokenizer) parseNext() *Token {
	t.skipWhitespace()

	if t.idx >= len(t.source) {
		return &Token{Kind: TokenEOF}
	}

	r := t.source[t.idx]
	t.idx++

	switch r {
	case ';':
		return &Token{Kind: TokenSemicolon}
	case '(':
		return &Token{Kind: TokenLParen}
	case ')':
		return &Token{Kind: TokenRParen}
	case ',':
		return &Token{Kind: TokenComma}
	case '+':
		return &Token{Kind: TokenPlus}
	case '-':
		return &Token{Kind: TokenMinus}
	case '*':
		return &Token{Kind: TokenAsterisk}
	case '/':
		return &Token{Kind: TokenSlash}
	case '>':
		return &Token{Kind: TokenGreater}
	case '<':
		return &Token{Kind: TokenLess}
	case '{':
		return &Token{Kind: TokenLBrace}
	case '}':
		return &Token{Kind: TokenRBrace}
	case '=':
		if t.peek() == '=' {
			t.idx++
			return &Token{Kind: TokenEq}
		}
		return &Token{Kind: TokenAssign}
	case '!':
		// Bare ! is not an operator in Monkey, only != is.
		if t.peek() == '=' {
			t.idx++
			return &Token{Kind: TokenNotEq}
		}
		return &Token{Kind: TokenInvalid, Text: string(r)}
	}

	if isLetter(r) {
		text := t.accumulate(isLetter, r)
		if kind, ok := KeywordKind(text); ok {
			return &Token{Kind: kind}
		}
		return &Token{Kind: TokenIdentifier, Text: text}
	}

	if isDigit(r) {
		text := t.accumulate(isDigit, r)
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			// Digit run too large for uint32. The run is already
			// consumed, so scanning continues after it.
			return &Token{Kind: TokenInvalid, Text: text}
		}
		return &Token{Kind: TokenInt, Text: text, Int: uint32(n)}
	}

	return &Token{Kind: TokenInvalid, Text: string(r)}
}

func (t *Tokenizer) skipWhitespace() {
	for t.idx < len(t.source) && unicode.IsSpace(t.source[t.idx]) {
		t.idx++
	}
}

func (t *Tokenizer) peek() rune {
	if t.idx >= len(t.source) {
		return 0
	}
	return t.source[t.idx]
}

func (t *Tokenizer) accumulate(test func(rune) bool, start rune) string {
	runes := []rune{start}
	for t.idx < len(t.source) && test(t.source[t.idx]) {
		runes = append(runes, t.source[t.idx])
		t.idx++
	}
	return string(runes)
}

// Identifiers are ASCII letters and underscore only. Digits do not
// continue an identifier: foo1 scans as identifier foo then int 1.
func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
