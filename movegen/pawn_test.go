package movegen

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/daystram/chessmoves/board"
)

func TestGeneratePawn(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		fen    string
		origin string
		want   []string
	}{
		{
			name:   "white single and double advance",
			fen:    "8/8/8/8/8/8/3P4/8",
			origin: "d2",
			want:   []string{"d2d3", "d2d4"},
		},
		{
			name:   "black single and double advance",
			fen:    "8/3p4/8/8/8/8/8/8 b",
			origin: "d7",
			want:   []string{"d7d6", "d7d5"},
		},
		{
			name:   "white single advance off starting rank",
			fen:    "8/8/8/8/8/3P4/8/8",
			origin: "d3",
			want:   []string{"d3d4"},
		},
		{
			name:   "black single advance off starting rank",
			fen:    "8/8/3p4/8/8/8/8/8 b",
			origin: "d6",
			want:   []string{"d6d5"},
		},
		{
			name:   "white blocked directly",
			fen:    "8/8/8/8/8/3n4/3P4/8",
			origin: "d2",
			want:   []string{},
		},
		{
			name:   "white double advance blocked",
			fen:    "8/8/8/8/3N4/8/3P4/8",
			origin: "d2",
			want:   []string{"d2d3"},
		},
		{
			name:   "black blocked by teammate",
			fen:    "8/3p4/3b4/8/8/8/8/8 b",
			origin: "d7",
			want:   []string{},
		},
		{
			name:   "white promotion on advance",
			fen:    "8/3P4/8/8/8/8/8/8",
			origin: "d7",
			want:   []string{"d7d8q", "d7d8r", "d7d8b", "d7d8n"},
		},
		{
			name:   "black promotion on advance",
			fen:    "8/8/8/8/8/8/3p4/8 b",
			origin: "d2",
			want:   []string{"d2d1q", "d2d1r", "d2d1b", "d2d1n"},
		},
		{
			name:   "white captures only",
			fen:    "8/8/8/2pPp3/3P4/8/8/8",
			origin: "d4",
			want:   []string{"d4c5", "d4e5"},
		},
		{
			name:   "white ignores teammates on diagonals",
			fen:    "8/8/8/2P1P3/3P4/8/8/8",
			origin: "d4",
			want:   []string{"d4d5"},
		},
		{
			name:   "black captures and advances from starting rank",
			fen:    "8/3p4/2P1N3/8/8/8/8/8 b",
			origin: "d7",
			want:   []string{"d7d6", "d7d5", "d7c6", "d7e6"},
		},
		{
			name:   "white capture promotions on both diagonals",
			fen:    "rNn5/1P6/8/8/8/8/8/8",
			origin: "b7",
			want: []string{
				"b7a8q", "b7a8r", "b7a8b", "b7a8n",
				"b7c8q", "b7c8r", "b7c8b", "b7c8n",
			},
		},
		{
			name:   "white edge file capture promotion",
			fen:    "1r6/P7/8/8/8/8/8/8",
			origin: "a7",
			want: []string{
				"a7a8q", "a7a8r", "a7a8b", "a7a8n",
				"a7b8q", "a7b8r", "a7b8b", "a7b8n",
			},
		},
		{
			name:   "black edge file promotion",
			fen:    "8/8/8/8/8/6P1/7p/8 b",
			origin: "h2",
			want: []string{
				"h2h1q", "h2h1r", "h2h1b", "h2h1n",
			},
		},
		{
			name:   "white on last rank has nowhere to go",
			fen:    "3P4/8/8/8/8/8/8/8",
			origin: "d8",
			want:   []string{},
		},
		{
			name:   "starting position pawn",
			fen:    board.DefaultStartingPositionFEN,
			origin: "e2",
			want:   []string{"e2e3", "e2e4"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			mvs, err := Generate(b, mustPos(t, tt.origin))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got, want := sortedUCI(mvs), sorted(tt.want); !slices.Equal(got, want) {
				t.Errorf("unexpected result: got=%v want=%v", got, want)
			}
		})
	}
}

func TestGeneratePawnOrder(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "8/8/8/8/8/2n1b3/3P4/8")
	mvs, err := Generate(b, mustPos(t, "d2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"d2d3", "d2d4", "d2c3", "d2e3"}
	if got := toUCI(mvs); !slices.Equal(got, want) {
		t.Errorf("unexpected result: got=%v want=%v", got, want)
	}
}

// The capture promotion decision is made on the capture square itself, so a
// blocked advance does not suppress promotions on the diagonals.
func TestPawnCapturePromotionUsesDestinationRank(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "2qr4/3P4/8/8/8/8/8/8")
	mvs, err := Generate(b, mustPos(t, "d7"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mvs) != 4 {
		t.Fatalf("unexpected count: got=%d want=%d (%v)", len(mvs), 4, toUCI(mvs))
	}
	var promotions []board.PieceType
	for _, mv := range mvs {
		if mv.To != mustPos(t, "c8") {
			t.Errorf("unexpected destination: %v", mv)
		}
		if mv.To.Rank != 8 {
			t.Errorf("unexpected rank: %v", mv)
		}
		promotions = append(promotions, mv.Promotion)
	}
	if !slices.Equal(promotions, board.PawnPromoteCandidates) {
		t.Errorf("unexpected promotions: got=%v want=%v", promotions, board.PawnPromoteCandidates)
	}
}
