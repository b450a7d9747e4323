package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/chessmoves/position"
)

// UnmarshalFEN loads the placement and side-to-move fields of fen into b.
// The placement field may stand alone, in which case White moves. Castling,
// en passant and clock fields are checked for shape only.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Fields(fen)
	if len(segments) == 0 || len(segments) > 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var cells [TotalCells]Piece
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := int8(1); y <= Height; y++ {
		row := rows[Height-y]
		x := int8(1)
		for _, cell := range row {
			if '1' <= cell && cell <= '8' {
				skip := int8(cell - '0')
				if skip < 1 || x+skip-1 > Width {
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				x += skip
				continue
			}
			p, ok := PieceFromFEN(cell)
			if !ok {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if x > Width {
				return fmt.Errorf("%w: too many cells on rank %d", ErrInvalidFEN, y)
			}
			cells[index(position.New(y, x))] = p
			x++
		}
		if x != Width+1 {
			return fmt.Errorf("%w: missing cells on rank %d", ErrInvalidFEN, y)
		}
	}

	turn := SideWhite
	if len(segments) > 1 {
		switch segments[1] {
		case "w":
			turn = SideWhite
		case "b":
			turn = SideBlack
		default:
			return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
		}
	}

	if len(segments) > 2 {
		if err := checkCastleRights(segments[2]); err != nil {
			return err
		}
	}
	if len(segments) > 3 && segments[3] != "-" {
		if _, err := position.NewPosFromNotation(segments[3]); err != nil {
			return fmt.Errorf("%w: %v", fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN), err)
		}
	}
	if len(segments) > 4 {
		if _, err := strconv.ParseUint(segments[4], 10, 16); err != nil {
			return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
		}
	}
	if len(segments) > 5 {
		if _, err := strconv.ParseUint(segments[5], 10, 16); err != nil {
			return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
		}
	}

	b.cells = cells
	b.turn = turn
	return nil
}

func checkCastleRights(field string) error {
	if len(field) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	for i, e := range field {
		switch e {
		case 'K', 'k', 'Q', 'q':
		default:
			if i == 0 && e == '-' && len(field) == 1 {
				return nil
			}
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}
	return nil
}

// MarshalFEN writes the placement and side-to-move fields of b.
func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	for y := Height; y >= 1; y-- {
		var skip uint8
		for x := int8(1); x <= Width; x++ {
			p, ok := b.PieceAt(position.New(y, x))
			if !ok {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN())
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y > 1 {
			_, _ = builder.WriteRune('/')
		}
	}
	_, _ = builder.WriteRune(' ')
	_, _ = builder.WriteString(b.turn.SymbolFEN())
	return builder.String(), nil
}
