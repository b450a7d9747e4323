package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/daystram/chessmoves/internal/config"
	"github.com/daystram/chessmoves/internal/scenario"
)

func newVerifyCmd(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [scenarios.yaml]",
		Short: "Check the generator against a scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Scenarios
			if len(args) == 1 {
				path = args[0]
			}
			return verify(path)
		},
	}
}

func verify(path string) error {
	log.Println("============ verify")
	var (
		f   *scenario.File
		err error
	)
	if path == "" {
		f, err = scenario.Default()
	} else {
		f, err = scenario.Load(path)
	}
	if err != nil {
		return err
	}

	results, err := scenario.RunAll(f)
	if err != nil {
		return err
	}
	failed := 0
	for _, res := range results {
		fmt.Println(res)
		if !res.Passed() {
			failed++
		}
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}
