package movegen

import (
	"github.com/daystram/chessmoves/board"
	"github.com/daystram/chessmoves/position"
)

// pawnForward is the rank step of s; White advances up the board.
func pawnForward(s board.Side) int8 {
	if s == board.SideWhite {
		return 1
	}
	return -1
}

func pawnStartRank(s board.Side) int8 {
	if s == board.SideWhite {
		return 2
	}
	return position.MaxComponentScalar - 1
}

func pawnFarRank(s board.Side) int8 {
	if s == board.SideWhite {
		return position.MaxComponentScalar
	}
	return 1
}

func pawnMoves(b BoardView, origin position.Pos, s board.Side) []board.Move {
	var mvs []board.Move
	dir := pawnForward(s)

	single := origin.Offset(dir, 0)
	if isEmpty(b, single) {
		mvs = appendPawnMove(mvs, origin, single, s)

		if origin.Rank == pawnStartRank(s) {
			double := single.Offset(dir, 0)
			if isEmpty(b, double) {
				mvs = appendPawnMove(mvs, origin, double, s)
			}
		}
	}

	for _, dFile := range []int8{-1, 1} {
		to := origin.Offset(dir, dFile)
		if !b.IsValidPosition(to) {
			continue
		}
		if target, ok := b.PieceAt(to); ok && target.Side != s {
			mvs = appendPawnMove(mvs, origin, to, s)
		}
	}
	return mvs
}

func isEmpty(b BoardView, pos position.Pos) bool {
	if !b.IsValidPosition(pos) {
		return false
	}
	_, occupied := b.PieceAt(pos)
	return !occupied
}

// appendPawnMove adds one move, or one per promotion candidate when to lies
// on the far rank of s.
func appendPawnMove(mvs []board.Move, from, to position.Pos, s board.Side) []board.Move {
	if to.Rank != pawnFarRank(s) {
		return append(mvs, board.Move{From: from, To: to})
	}
	for _, p := range board.PawnPromoteCandidates {
		mvs = append(mvs, board.Move{From: from, To: to, Promotion: p})
	}
	return mvs
}
