package movegen

import (
	"golang.org/x/exp/slices"

	"github.com/daystram/chessmoves/board"
)

// Direction is a (rank, file) displacement applied from an origin square.
type Direction struct {
	DRank, DFile int8
}

// Rule describes how a piece type moves: each direction is applied once, or
// repeatedly until blocked when Repeats is set.
type Rule struct {
	Repeats    bool
	Directions []Direction
}

// Equal compares rules field by field, directions in order.
func (r Rule) Equal(o Rule) bool {
	return r.Repeats == o.Repeats && slices.Equal(r.Directions, o.Directions)
}

var (
	diagonals = []Direction{{1, -1}, {-1, 1}, {-1, -1}, {1, 1}}
	laterals  = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	jumps     = []Direction{
		{2, 1}, {2, -1},
		{-2, 1}, {-2, -1},
		{1, 2}, {1, -2},
		{-1, 2}, {-1, -2},
	}

	rules = map[board.PieceType]Rule{
		board.PieceBishop: {Repeats: true, Directions: diagonals},
		board.PieceRook:   {Repeats: true, Directions: laterals},
		board.PieceQueen:  {Repeats: true, Directions: concat(diagonals, laterals)},
		board.PieceKnight: {Repeats: false, Directions: jumps},
		board.PieceKing:   {Repeats: false, Directions: concat(diagonals, laterals)},
	}
)

func concat(dirs ...[]Direction) []Direction {
	var out []Direction
	for _, d := range dirs {
		out = append(out, d...)
	}
	return out
}

// RuleFor returns the movement rule of p. Pawns have no generic rule.
func RuleFor(p board.PieceType) (Rule, bool) {
	switch p {
	case board.PieceBishop, board.PieceRook, board.PieceQueen, board.PieceKnight, board.PieceKing:
		r := rules[p]
		return Rule{Repeats: r.Repeats, Directions: slices.Clone(r.Directions)}, true
	case board.PiecePawn, board.PieceUnknown:
	}
	return Rule{}, false
}
