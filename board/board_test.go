package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/daystram/chessmoves/position"
)

func TestNewBoardWithPieces(t *testing.T) {
	t.Parallel()
	e4 := position.New(4, 5)
	b, err := NewBoard(WithPieces(map[position.Pos]Piece{
		e4: NewPiece(SideBlack, PieceQueen),
	}))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	got, ok := b.PieceAt(e4)
	if !ok {
		t.Fatalf("expected piece at %v", e4)
	}
	if want := NewPiece(SideBlack, PieceQueen); got != want {
		t.Errorf("unexpected result: got=%v want=%v", got, want)
	}
	if _, ok := b.PieceAt(position.New(4, 4)); ok {
		t.Errorf("expected empty square at d4")
	}
	if b.Turn() != SideWhite {
		t.Errorf("unexpected turn: got=%v want=%v", b.Turn(), SideWhite)
	}
}

func TestBoardSet(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pos     position.Pos
		piece   Piece
		wantErr error
	}{
		{name: "ok", pos: position.New(1, 1), piece: NewPiece(SideWhite, PieceRook)},
		{name: "ok empty", pos: position.New(1, 1), piece: Piece{}},
		{name: "off board", pos: position.New(0, 1), piece: NewPiece(SideWhite, PieceRook), wantErr: ErrInvalidPosition},
		{name: "bad type", pos: position.New(2, 2), piece: NewPiece(SideWhite, PieceType(42)), wantErr: ErrInvalidPosition},
		{name: "bad side", pos: position.New(2, 2), piece: NewPiece(Side(9), PieceRook), wantErr: ErrInvalidPosition},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoard()
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			err = b.Set(tt.pos, tt.piece)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, _ := b.PieceAt(tt.pos)
			if got != tt.piece {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.piece)
			}
		})
	}
}

func TestBoardPieceAtOffBoard(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN(DefaultStartingPositionFEN))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	for _, pos := range []position.Pos{position.New(0, 0), position.New(9, 1), position.New(1, -1)} {
		if b.IsValidPosition(pos) {
			t.Errorf("expected %v to be invalid", pos)
		}
		if _, ok := b.PieceAt(pos); ok {
			t.Errorf("expected no piece at %v", pos)
		}
	}
}

func TestBoardOccupied(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN(DefaultStartingPositionFEN))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	white := b.Occupied(SideWhite)
	if len(white) != 16 {
		t.Fatalf("unexpected count: got=%d want=%d", len(white), 16)
	}
	if white[0] != position.New(1, 1) || white[15] != position.New(2, 8) {
		t.Errorf("unexpected order: first=%v last=%v", white[0], white[15])
	}
	black := b.Occupied(SideBlack)
	if len(black) != 16 || black[0] != position.New(7, 1) {
		t.Errorf("unexpected black squares: %v", black)
	}
}

func TestBoardClone(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN(DefaultStartingPositionFEN))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	bb := b.Clone()
	bb.Clear(position.New(2, 5))
	if _, ok := b.PieceAt(position.New(2, 5)); !ok {
		t.Errorf("clone shares cells with original")
	}
}

func TestBoardDraw(t *testing.T) {
	color.NoColor = true

	b, err := NewBoard(WithFEN("8/8/8/8/4N3/8/8/8"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	out := b.Draw(position.New(6, 6))
	if !strings.Contains(out, "♘") {
		t.Errorf("missing knight symbol:\n%s", out)
	}
	if !strings.Contains(out, "·") {
		t.Errorf("missing highlight marker:\n%s", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != int(Height)+1 {
		t.Errorf("unexpected line count: got=%d want=%d", len(lines), Height+1)
	}
}

func TestBoardDump(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN(DefaultStartingPositionFEN))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	out := b.Dump()
	if !strings.Contains(out, " 8 | r | n | b | q | k | b | n | r |") {
		t.Errorf("unexpected dump:\n%s", out)
	}
}

func TestMoveUCI(t *testing.T) {
	t.Parallel()
	tests := []struct {
		move Move
		want string
	}{
		{move: Move{From: position.New(2, 5), To: position.New(4, 5)}, want: "e2e4"},
		{move: Move{From: position.New(7, 1), To: position.New(8, 1), Promotion: PieceQueen}, want: "a7a8q"},
		{move: Move{From: position.New(2, 8), To: position.New(1, 7), Promotion: PieceKnight}, want: "h2g1n"},
	}
	for _, tt := range tests {
		if got := tt.move.UCI(); got != tt.want {
			t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
		}
	}
}

func TestPieceSymbols(t *testing.T) {
	t.Parallel()
	tests := []struct {
		piece       Piece
		wantFEN     string
		wantUnicode string
		wantString  string
	}{
		{piece: NewPiece(SideWhite, PieceKnight), wantFEN: "N", wantUnicode: "♘", wantString: "White Knight"},
		{piece: NewPiece(SideBlack, PieceQueen), wantFEN: "q", wantUnicode: "♛", wantString: "Black Queen"},
		{piece: NewPiece(SideWhite, PieceUnknown)},
		{piece: NewPiece(SideUnknown, PieceRook), wantFEN: "R"},
		{piece: NewPiece(SideBlack, PieceType(42)), wantString: "Black "},
	}

	for _, tt := range tests {
		if got := tt.piece.SymbolFEN(); got != tt.wantFEN {
			t.Errorf("%d/%d: unexpected FEN symbol: got=%q want=%q", tt.piece.Side, tt.piece.Type, got, tt.wantFEN)
		}
		if got := tt.piece.Type.SymbolUnicode(tt.piece.Side, false); got != tt.wantUnicode {
			t.Errorf("%d/%d: unexpected unicode symbol: got=%q want=%q", tt.piece.Side, tt.piece.Type, got, tt.wantUnicode)
		}
		if got := tt.piece.String(); got != tt.wantString {
			t.Errorf("%d/%d: unexpected name: got=%q want=%q", tt.piece.Side, tt.piece.Type, got, tt.wantString)
		}
	}
	if got := Side(9).Opposite(); got != SideUnknown {
		t.Errorf("unexpected opposite: got=%v want=%v", got, SideUnknown)
	}
	if got := SideUnknown.SymbolFEN(); got != "-" {
		t.Errorf("unexpected turn symbol: got=%q want=%q", got, "-")
	}
}
