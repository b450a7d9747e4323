package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessmoves/board"
	"github.com/daystram/chessmoves/movegen"
	"github.com/daystram/chessmoves/position"
)

// Stats tallies the pseudo-legal moves of one side.
type Stats struct {
	Moves      uint64
	Captures   uint64
	Promotions uint64
}

// Count tallies the moves of the side to move in fen. When verbose, one line
// per origin square is sent to out; the summary line is sent whenever out is
// not nil.
func Count(fen string, parallel, verbose bool, out chan string) (Stats, error) {
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return Stats{}, err
	}

	var run countFunc
	if parallel {
		run = runCountParallel
	} else {
		run = runCount
	}

	var st Stats
	start := time.Now()
	if err := run(b, verbose, out, &st); err != nil {
		return Stats{}, err
	}
	end := time.Now()

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("side=%s moves=%d rate=%dn/s cap=%d pro=%d (%.3fs elapsed)",
				b.Turn(), st.Moves, int(float64(st.Moves)/end.Sub(start).Seconds()), st.Captures, st.Promotions, end.Sub(start).Seconds())
	}
	return st, nil
}

type countFunc func(b *board.Board, verbose bool, out chan string, st *Stats) error

func runCount(b *board.Board, verbose bool, out chan string, st *Stats) error {
	mvs, err := movegen.GenerateSide(b, b.Turn())
	if err != nil {
		return err
	}
	tally(b, mvs, &st.Moves, &st.Captures, &st.Promotions)
	if verbose && out != nil {
		perOrigin := make(map[position.Pos]int)
		for _, mv := range mvs {
			perOrigin[mv.From]++
		}
		for _, origin := range b.Occupied(b.Turn()) {
			out <- fmt.Sprintf("%s: %d", origin, perOrigin[origin])
		}
	}
	return nil
}

// runCountParallel generates every origin in its own goroutine against the
// same board, which is never written while the goroutines run.
func runCountParallel(b *board.Board, verbose bool, out chan string, st *Stats) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, origin := range b.Occupied(b.Turn()) {
		origin := origin
		wg.Add(1)
		go func() {
			defer wg.Done()
			mvs, err := movegen.Generate(b, origin)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			var moves, captures, promotions uint64
			tally(b, mvs, &moves, &captures, &promotions)
			atomic.AddUint64(&st.Moves, moves)
			atomic.AddUint64(&st.Captures, captures)
			atomic.AddUint64(&st.Promotions, promotions)
			if verbose && out != nil {
				out <- fmt.Sprintf("%s: %d", origin, len(mvs))
			}
		}()
	}
	wg.Wait()
	return firstErr
}

func tally(b movegen.BoardView, mvs []board.Move, moves, captures, promotions *uint64) {
	for _, mv := range mvs {
		*moves++
		if isCapture(b, mv.To) {
			*captures++
		}
		if mv.IsPromotion() {
			*promotions++
		}
	}
}

func isCapture(b movegen.BoardView, to position.Pos) bool {
	_, ok := b.PieceAt(to)
	return ok
}
