package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/daystram/chessmoves/internal/config"
)

const (
	exitOK = iota
	exitErr
)

var profile bool

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func newRootCmd(cfg *config.Configuration) *cobra.Command {
	root := &cobra.Command{
		Use:           "chessmoves",
		Short:         "Pseudo-legal chess move generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if profile {
				runProfiler(cfg.PprofAddr)
			}
		},
	}
	root.PersistentFlags().BoolVar(&profile, "profile", false, "serve pprof endpoint")

	root.AddCommand(
		newMovesCmd(),
		newCountCmd(cfg),
		newVerifyCmd(cfg),
	)
	return root
}

func runProfiler(addr string) {
	go func() {
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}
