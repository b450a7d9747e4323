package board

import "github.com/daystram/chessmoves/position"

// Move is a pseudo-legal destination for the piece standing on From.
// Promotion is PieceUnknown unless a pawn reaches its far rank.
type Move struct {
	From, To  position.Pos
	Promotion PieceType
}

func (m Move) String() string {
	return m.UCI()
}

func (m Move) IsPromotion() bool {
	return m.Promotion != PieceUnknown
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation() + m.Promotion.SymbolAlgebra(SideBlack)
}
