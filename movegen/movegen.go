// Package movegen generates pseudo-legal destinations for a single piece:
// bounds, occupancy and capture rules are honoured, king safety is not.
package movegen

import (
	"errors"
	"fmt"

	"github.com/daystram/chessmoves/board"
	"github.com/daystram/chessmoves/position"
)

var (
	// ErrInvalidOrigin is returned when the origin square holds no piece.
	ErrInvalidOrigin = errors.New("invalid origin")

	// ErrUnsupportedPiece is returned for a piece type outside the six chess pieces.
	ErrUnsupportedPiece = errors.New("unsupported piece")
)

// BoardView is the read-only board surface the generator queries.
type BoardView interface {
	IsValidPosition(pos position.Pos) bool
	PieceAt(pos position.Pos) (board.Piece, bool)
}

// OccupancyView is a BoardView that can also list the squares of a side.
type OccupancyView interface {
	BoardView
	Occupied(s board.Side) []position.Pos
}

// Generate returns the pseudo-legal moves of the piece on origin, ordered by
// direction and then by distance. Pawn moves come in advance, double advance,
// capture order.
func Generate(b BoardView, origin position.Pos) ([]board.Move, error) {
	if !b.IsValidPosition(origin) {
		return nil, fmt.Errorf("%w: %v is off the board", ErrInvalidOrigin, origin)
	}
	p, ok := b.PieceAt(origin)
	if !ok {
		return nil, fmt.Errorf("%w: %v is empty", ErrInvalidOrigin, origin)
	}
	if p.Side.Opposite() == board.SideUnknown {
		return nil, fmt.Errorf("%w: %v has no side", ErrInvalidOrigin, origin)
	}

	if !p.Type.IsValid() {
		return nil, fmt.Errorf("%w: type %d at %v", ErrUnsupportedPiece, p.Type, origin)
	}

	switch p.Type {
	case board.PiecePawn:
		return pawnMoves(b, origin, p.Side), nil
	case board.PieceBishop, board.PieceKnight, board.PieceRook, board.PieceQueen, board.PieceKing:
		rule, _ := RuleFor(p.Type)
		return Project(b, origin, p.Side, rule), nil
	case board.PieceUnknown:
	}
	return nil, fmt.Errorf("%w: type %d at %v", ErrUnsupportedPiece, p.Type, origin)
}

// GenerateSide returns the pseudo-legal moves of every piece of s.
func GenerateSide(b OccupancyView, s board.Side) ([]board.Move, error) {
	var mvs []board.Move
	for _, origin := range b.Occupied(s) {
		m, err := Generate(b, origin)
		if err != nil {
			return nil, err
		}
		mvs = append(mvs, m...)
	}
	return mvs, nil
}

// Project casts every direction of rule from origin for a piece of side s.
// A ray stops at the board edge or at the first occupied square, which is
// included only when it holds an opposing piece.
func Project(b BoardView, origin position.Pos, s board.Side, rule Rule) []board.Move {
	var mvs []board.Move
	for _, d := range rule.Directions {
		if d == (Direction{}) {
			continue
		}
		for to := origin.Offset(d.DRank, d.DFile); b.IsValidPosition(to); to = to.Offset(d.DRank, d.DFile) {
			target, occupied := b.PieceAt(to)
			if occupied && target.Side == s {
				break
			}
			mvs = append(mvs, board.Move{From: origin, To: to})
			if occupied || !rule.Repeats {
				break
			}
		}
	}
	return mvs
}
