package chess

import (
	"fmt"
	"strings"
)

// Kind is one of the six chess piece types.
type Kind uint8

const (
	Bishop Kind = iota
	Knight
	Pawn
	Queen
	King
	Rook
)

// Kinds returns every kind in declared order. The slice is a fresh copy,
// callers may reorder it.
func Kinds() []Kind {
	return []Kind{Bishop, Knight, Pawn, Queen, King, Rook}
}

func (k Kind) Valid() bool {
	return k <= Rook
}

func (k Kind) String() string {
	switch k {
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Rook:
		return "Rook"
	default:
		return "Invalid"
	}
}

// Rank is the comparison rank of a kind. It is unrelated to both chess
// value and declared order; it exists only to give pieces a total order.
// An invalid kind is a programming error and panics.
func (k Kind) Rank() int {
	switch k {
	case Pawn:
		return 0
	case Knight:
		return 1
	case Bishop:
		return 2
	case Rook:
		return 3
	case Queen:
		return 4
	case King:
		return 5
	default:
		panic(fmt.Sprintf("chess: rank of invalid kind %d", uint8(k)))
	}
}

// ParseError reports a string that matched no piece kind name.
type ParseError struct {
	Input string // normalized (trimmed, lowercased) input
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown piece kind: %q", e.Input)
}

// ParseKind parses a piece kind from its English name. Matching is
// case-insensitive and ignores surrounding whitespace; nothing fuzzier.
func ParseKind(s string) (Kind, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "bishop":
		return Bishop, nil
	case "knight":
		return Knight, nil
	case "pawn":
		return Pawn, nil
	case "queen":
		return Queen, nil
	case "king":
		return King, nil
	case "rook":
		return Rook, nil
	default:
		return 0, &ParseError{Input: v}
	}
}

// Piece is a (kind, color) pair.
type Piece struct {
	Kind  Kind
	White bool
}

// AllVariants returns the twelve piece variants: each kind in declared
// order, black before white. This is the order the texture cache loads in.
func AllVariants() []Piece {
	v := make([]Piece, 0, 12)
	for _, k := range Kinds() {
		v = append(v, Piece{Kind: k, White: false})
		v = append(v, Piece{Kind: k, White: true})
	}
	return v
}

// FileName derives the canonical asset file name, e.g. "white_pawn.png".
func (p Piece) FileName() string {
	color := "black"
	if p.White {
		color = "white"
	}
	return fmt.Sprintf("%s_%s.png", color, strings.ToLower(p.Kind.String()))
}

func (p Piece) String() string {
	color := "black"
	if p.White {
		color = "white"
	}
	return color + " " + strings.ToLower(p.Kind.String())
}

// Compare orders pieces by color first (black before white), then by kind
// rank. Returns -1, 0 or 1.
func (p Piece) Compare(o Piece) int {
	if p.White != o.White {
		if o.White {
			return -1
		}
		return 1
	}
	switch pr, or := p.Kind.Rank(), o.Kind.Rank(); {
	case pr < or:
		return -1
	case pr > or:
		return 1
	default:
		return 0
	}
}

func (p Piece) Less(o Piece) bool {
	return p.Compare(o) < 0
}
