package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daystram/chessmoves/board"
	"github.com/daystram/chessmoves/movegen"
	"github.com/daystram/chessmoves/position"
)

func newMovesCmd() *cobra.Command {
	var draw bool
	cmd := &cobra.Command{
		Use:   "moves <square> [fen...]",
		Short: "List the pseudo-legal moves of the piece on a square",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fen := board.DefaultStartingPositionFEN
			if len(args) > 1 {
				fen = strings.Join(args[1:], " ")
			}
			return moves(fen, args[0], draw)
		},
	}
	cmd.Flags().BoolVar(&draw, "draw", false, "draw the board with destinations highlighted")
	return cmd
}

func moves(fen, square string, draw bool) error {
	log.Println("============ moves")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	origin, err := position.NewPosFromNotation(square)
	if err != nil {
		return err
	}
	mvs, err := movegen.Generate(b, origin)
	if err != nil {
		return err
	}

	p, _ := b.PieceAt(origin)
	fmt.Printf("%s on %s: %d moves\n", p, origin, len(mvs))
	if draw {
		dst := make([]position.Pos, 0, len(mvs))
		for _, mv := range mvs {
			dst = append(dst, mv.To)
		}
		fmt.Println(b.Draw(dst...))
	}
	dumpMoves(b, mvs)
	return nil
}

func dumpMoves(b *board.Board, mvs []board.Move) {
	width := len(fmt.Sprint(len(mvs)))
	for i, mv := range mvs {
		_, capture := b.PieceAt(mv.To)
		fmt.Printf("option %*d: [%s] %s => %s (cap=%v) (pro=%s)\n",
			width, i+1, mv.UCI(), mv.From, mv.To, capture, mv.Promotion)
	}
}
