package game

import (
	"encoding/json"
	"fmt"
)

// TokenKind enumerates what can occupy a galaxy map cell. The zero value is
// an empty, playable cell.
type TokenKind int

const (
	TokenEmpty TokenKind = iota
	TokenStar
	TokenBlackHole
	TokenDestroyed
	TokenOutpost
	TokenCompany
	TokenMarker
)

// Token is the content of one galaxy map cell. Index carries the company id
// for TokenCompany and the 1-based presentation index for TokenMarker; it is
// zero for every other kind, which keeps Token comparable with ==.
type Token struct {
	Kind  TokenKind
	Index int
}

// The cell variants without a payload.
var (
	Empty     = Token{Kind: TokenEmpty}
	Star      = Token{Kind: TokenStar}
	BlackHole = Token{Kind: TokenBlackHole}
	Destroyed = Token{Kind: TokenDestroyed}
	Outpost   = Token{Kind: TokenOutpost}
)

// CompanyToken returns the cell token for company id.
func CompanyToken(id int) Token {
	return Token{Kind: TokenCompany, Index: id}
}

// MarkerToken returns the display overlay token for a 1-based option index.
func MarkerToken(index int) Token {
	return Token{Kind: TokenMarker, Index: index}
}

// CompanyID extracts the company id from a company token.
func (t Token) CompanyID() (int, bool) {
	if t.Kind != TokenCompany {
		return 0, false
	}
	return t.Index, true
}

// String renders the single-character token alphabet used by the flattened
// map serialization: '.' empty, '*' star, '@' black hole, ' ' destroyed,
// '+' outpost, 'A'.. company id, '1'..'9' marker index.
func (t Token) String() string {
	switch t.Kind {
	case TokenEmpty:
		return "."
	case TokenStar:
		return "*"
	case TokenBlackHole:
		return "@"
	case TokenDestroyed:
		return " "
	case TokenOutpost:
		return "+"
	case TokenCompany:
		return string(rune('A' + t.Index))
	case TokenMarker:
		return string(rune('0' + t.Index))
	}
	return "?"
}

// ParseToken reverses Token.String.
func ParseToken(s string) (Token, error) {
	if len(s) != 1 {
		return Token{}, fmt.Errorf("token %q: want a single character", s)
	}
	switch c := s[0]; {
	case c == '.':
		return Empty, nil
	case c == '*':
		return Star, nil
	case c == '@':
		return BlackHole, nil
	case c == ' ':
		return Destroyed, nil
	case c == '+':
		return Outpost, nil
	case c >= 'A' && c <= 'Z':
		return CompanyToken(int(c - 'A')), nil
	case c >= '1' && c <= '9':
		return MarkerToken(int(c - '0')), nil
	default:
		return Token{}, fmt.Errorf("token %q: unknown character", s)
	}
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseToken(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
