package board

type PieceType uint8

const (
	PieceUnknown PieceType = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []PieceType{PieceQueen, PieceRook, PieceBishop, PieceKnight}

func (p PieceType) String() string {
	return p.Name()
}

// IsValid reports whether p is one of the six chess piece types.
func (p PieceType) IsValid() bool {
	return PiecePawn <= p && p <= PieceKing
}

func (p PieceType) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	case PieceUnknown:
	}
	return ""
}

func (p PieceType) SymbolAlgebra(s Side) string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(s)
}

func (p PieceType) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	case PieceUnknown:
		return ""
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p PieceType) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideUnknown:
		return ""
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		case PieceUnknown:
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		case PieceUnknown:
		}
	}
	return ""
}

// Piece is a piece type owned by a side. The zero value is an empty cell.
type Piece struct {
	Side Side
	Type PieceType
}

func NewPiece(s Side, p PieceType) Piece {
	return Piece{Side: s, Type: p}
}

// PieceFromFEN decodes a single FEN placement symbol.
func PieceFromFEN(sym rune) (Piece, bool) {
	switch sym {
	case 'P':
		return Piece{SideWhite, PiecePawn}, true
	case 'B':
		return Piece{SideWhite, PieceBishop}, true
	case 'N':
		return Piece{SideWhite, PieceKnight}, true
	case 'R':
		return Piece{SideWhite, PieceRook}, true
	case 'Q':
		return Piece{SideWhite, PieceQueen}, true
	case 'K':
		return Piece{SideWhite, PieceKing}, true
	case 'p':
		return Piece{SideBlack, PiecePawn}, true
	case 'b':
		return Piece{SideBlack, PieceBishop}, true
	case 'n':
		return Piece{SideBlack, PieceKnight}, true
	case 'r':
		return Piece{SideBlack, PieceRook}, true
	case 'q':
		return Piece{SideBlack, PieceQueen}, true
	case 'k':
		return Piece{SideBlack, PieceKing}, true
	default:
		return Piece{}, false
	}
}

func (p Piece) IsEmpty() bool {
	return p.Side == SideUnknown || p.Type == PieceUnknown
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Side.String() + " " + p.Type.Name()
}

func (p Piece) SymbolFEN() string {
	return p.Type.SymbolFEN(p.Side)
}
