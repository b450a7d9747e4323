package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	case SideUnknown:
	}
	return ""
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	case SideUnknown:
	}
	return SideUnknown
}

// SymbolFEN returns the side-to-move field of a FEN record.
func (s Side) SymbolFEN() string {
	switch s {
	case SideWhite:
		return "w"
	case SideBlack:
		return "b"
	case SideUnknown:
	}
	return "-"
}
