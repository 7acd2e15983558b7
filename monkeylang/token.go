package monkeylang

import "fmt"

type Token struct {
	Kind TokenKind
	Text string
	Int  uint32
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF

	TokenIdentifier
	TokenInt

	TokenAssign
	TokenPlus
	TokenMinus
	TokenAsterisk
	TokenSlash
	TokenGreater
	TokenLess
	TokenComma
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenEq
	TokenNotEq

	TokenFunction
	TokenLet
	TokenTrue
	TokenFalse
	TokenIf
	TokenElse
	TokenReturn
)

var kindNames = [...]string{
	TokenInvalid:    "invalid",
	TokenEOF:        "eof",
	TokenIdentifier: "identifier",
	TokenInt:        "int",
	TokenAssign:     "assign",
	TokenPlus:       "plus",
	TokenMinus:      "minus",
	TokenAsterisk:   "asterisk",
	TokenSlash:      "slash",
	TokenGreater:    "greater",
	TokenLess:       "less",
	TokenComma:      "comma",
	TokenSemicolon:  "semicolon",
	TokenLParen:     "lparen",
	TokenRParen:     "rparen",
	TokenLBrace:     "lbrace",
	TokenRBrace:     "rbrace",
	TokenEq:         "eq",
	TokenNotEq:      "noteq",
	TokenFunction:   "function",
	TokenLet:        "let",
	TokenTrue:       "true",
	TokenFalse:      "false",
	TokenIf:         "if",
	TokenElse:       "else",
	TokenReturn:     "return",
}

func (k TokenKind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("TokenKind(%d)", k)
	}
	return kindNames[k]
}

func (t *Token) String() string {
	switch t.Kind {
	case TokenIdentifier:
		return fmt.Sprintf("identifier(%s)", t.Text)
	case TokenInt:
		return fmt.Sprintf("int(%d)", t.Int)
	case TokenInvalid:
		return fmt.Sprintf("invalid(%q)", t.Text)
	}
	return t.Kind.String()
}
