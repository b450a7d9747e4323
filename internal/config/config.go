package config

import (
	"github.com/kelseyhightower/envconfig"
)

const prefix = "CHESSMOVES"

type Configuration struct {
	NoColor   bool   `envconfig:"NO_COLOR" default:"false"`
	Scenarios string `envconfig:"SCENARIOS"`
	PprofAddr string `envconfig:"PPROF_ADDR" default:"localhost:6060"`
	Parallel  bool   `envconfig:"PARALLEL" default:"true"`
}

// InitConfig reads CHESSMOVES_* variables, falling back to the defaults above.
// An empty Scenarios path selects the built-in scenario set.
func InitConfig() (*Configuration, error) {
	cfg := &Configuration{}
	if err := envconfig.Process(prefix, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
