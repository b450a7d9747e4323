package main

import (
	"log"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/daystram/chessmoves/bench"
	"github.com/daystram/chessmoves/board"
	"github.com/daystram/chessmoves/internal/config"
)

func newCountCmd(cfg *config.Configuration) *cobra.Command {
	var verbose bool
	parallel := cfg.Parallel
	cmd := &cobra.Command{
		Use:   "count [fen...]",
		Short: "Count the pseudo-legal moves of the side to move",
		RunE: func(cmd *cobra.Command, args []string) error {
			fen := board.DefaultStartingPositionFEN
			if len(args) > 0 {
				fen = strings.Join(args, " ")
			}
			return count(fen, parallel, verbose)
		},
	}
	cmd.Flags().BoolVar(&parallel, "parallel", parallel, "generate each origin square concurrently")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print per-square counts")
	return cmd
}

func count(fen string, parallel, verbose bool) error {
	log.Println("============ count")
	out := make(chan string)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for line := range out {
			log.Println(line)
		}
	}()

	_, err := bench.Count(fen, parallel, verbose, out)
	close(out)
	wg.Wait()
	return err
}
