package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/chessmoves/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = int(Width) * int(Height)

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	EmptyBoardFEN              = "8/8/8/8/8/8/8/8 w - - 0 1"
)

var (
	ErrInvalidFEN      = errors.New("invalid fen")
	ErrInvalidPosition = errors.New("invalid position")
)

// Board is a mailbox snapshot of piece placement. Rank 1 is White's back rank.
type Board struct {
	cells [TotalCells]Piece
	turn  Side
}

type boardConfig struct {
	fen    string
	pieces map[position.Pos]Piece
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// WithPieces places pieces after the FEN has been applied.
func WithPieces(pieces map[position.Pos]Piece) BoardOption {
	return func(cfg *boardConfig) {
		if cfg.pieces == nil {
			cfg.pieces = make(map[position.Pos]Piece, len(pieces))
		}
		for pos, p := range pieces {
			cfg.pieces[pos] = p
		}
	}
}

// NewBoard creates an empty board with White to move unless a FEN is given.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: EmptyBoardFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	for pos, p := range cfg.pieces {
		if err := b.Set(pos, p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func index(pos position.Pos) int {
	return int(pos.Rank-1)*int(Width) + int(pos.File-1)
}

func (b *Board) IsValidPosition(pos position.Pos) bool {
	return pos.IsValid()
}

func (b *Board) PieceAt(pos position.Pos) (Piece, bool) {
	if !b.IsValidPosition(pos) {
		return Piece{}, false
	}
	p := b.cells[index(pos)]
	return p, !p.IsEmpty()
}

func (b *Board) Set(pos position.Pos, p Piece) error {
	if !b.IsValidPosition(pos) {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	if !p.IsEmpty() && (!p.Type.IsValid() || p.Side.Opposite() == SideUnknown) {
		return fmt.Errorf("%w: bad piece %d/%d at %v", ErrInvalidPosition, p.Side, p.Type, pos)
	}
	b.cells[index(pos)] = p
	return nil
}

func (b *Board) Clear(pos position.Pos) {
	if b.IsValidPosition(pos) {
		b.cells[index(pos)] = Piece{}
	}
}

func (b *Board) Turn() Side {
	return b.turn
}

// Occupied lists the squares held by s, rank by rank from a1.
func (b *Board) Occupied(s Side) []position.Pos {
	var out []position.Pos
	for i, p := range b.cells {
		if !p.IsEmpty() && p.Side == s {
			out = append(out, position.New(int8(i/int(Width))+1, int8(i%int(Width))+1))
		}
	}
	return out
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height; y >= 1; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := int8(1); x <= Width; x++ {
			sym := " "
			if p, ok := b.PieceAt(position.New(y, x)); ok {
				sym = p.SymbolFEN()
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := int8(1); x <= Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NotationComponentX(x)))
	}
	return builder.String()
}
