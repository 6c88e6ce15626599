package calc

import "fmt"

// TokenKind identifies a lexical token of an arithmetic expression.
type TokenKind int

const (
	TokEOF TokenKind = iota
	TokNumber
	TokPlus
	TokMinus
	TokStar
	TokSlash
)

func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "end of input"
	case TokNumber:
		return "number"
	case TokPlus:
		return "'+'"
	case TokMinus:
		return "'-'"
	case TokStar:
		return "'*'"
	case TokSlash:
		return "'/'"
	}
	return "unknown"
}

// Token is one lexeme. Pos is the byte offset into the scanned text.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// Tokenize splits text into numbers and operators, ending with a TokEOF token.
// Numbers take the forms 12, 1.5, 1. and .5; a second '.' is an error.
// Spaces are skipped. Anything else is an ErrParse.
func Tokenize(text string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '+':
			toks = append(toks, Token{Kind: TokPlus, Text: "+", Pos: i})
			i++
		case c == '-':
			toks = append(toks, Token{Kind: TokMinus, Text: "-", Pos: i})
			i++
		case c == '*':
			toks = append(toks, Token{Kind: TokStar, Text: "*", Pos: i})
			i++
		case c == '/':
			toks = append(toks, Token{Kind: TokSlash, Text: "/", Pos: i})
			i++
		case isDigit(c) || c == '.':
			tok, next, err := scanNumber(text, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrParse, c, i)
		}
	}
	toks = append(toks, Token{Kind: TokEOF, Pos: len(text)})
	return toks, nil
}

func scanNumber(text string, start int) (Token, int, error) {
	i := start
	digits := 0
	for i < len(text) && isDigit(text[i]) {
		i++
		digits++
	}
	if i < len(text) && text[i] == '.' {
		i++
		for i < len(text) && isDigit(text[i]) {
			i++
			digits++
		}
		if i < len(text) && text[i] == '.' {
			return Token{}, 0, fmt.Errorf("%w: second decimal point at %d", ErrParse, i)
		}
	}
	if digits == 0 {
		return Token{}, 0, fmt.Errorf("%w: expected digit at %d", ErrParse, start)
	}
	return Token{Kind: TokNumber, Text: text[start:i], Pos: start}, i, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
