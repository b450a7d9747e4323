package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar int8 = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square addressed by 1-based rank and file. Values outside
// [1, MaxComponentScalar] are representable so rays can step off the board.
type Pos struct {
	Rank, File int8
}

func New(rank, file int8) Pos {
	return Pos{Rank: rank, File: file}
}

func NewPosFromNotation(n string) (Pos, error) {
	rank, file, err := notationToRankFile(n)
	if err != nil {
		return Pos{}, fmt.Errorf("%w: %q", err, n)
	}
	return Pos{Rank: rank, File: file}, nil
}

func (p Pos) Offset(dRank, dFile int8) Pos {
	return Pos{Rank: p.Rank + dRank, File: p.File + dFile}
}

func (p Pos) IsValid() bool {
	return 1 <= p.Rank && p.Rank <= MaxComponentScalar &&
		1 <= p.File && p.File <= MaxComponentScalar
}

func (p Pos) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("(%d,%d)", p.Rank, p.File)
	}
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return NotationComponentX(p.File) + NotationComponentY(p.Rank)
}

func notationToRankFile(n string) (int8, int8, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	file, err := notationToFile(n[0])
	if err != nil {
		return 0, 0, err
	}
	rank, err := notationToRank(n[1])
	if err != nil {
		return 0, 0, err
	}
	return rank, file, nil
}

func notationToFile(x byte) (int8, error) {
	if x < 'a' || 'a'+byte(MaxComponentScalar) <= x {
		return 0, ErrInvalidNotation
	}
	return int8(x-'a') + 1, nil
}

func notationToRank(y byte) (int8, error) {
	if y < '1' || '1'+byte(MaxComponentScalar) <= y {
		return 0, ErrInvalidNotation
	}
	return int8(y-'1') + 1, nil
}

// NotationComponentX returns the file letter of a 1-based file.
func NotationComponentX(file int8) string {
	if file < 1 || MaxComponentScalar < file {
		return ""
	}
	return string(rune('a' + file - 1))
}

// NotationComponentY returns the rank digit of a 1-based rank.
func NotationComponentY(rank int8) string {
	if rank < 1 || MaxComponentScalar < rank {
		return ""
	}
	return string(rune('0' + rank))
}
