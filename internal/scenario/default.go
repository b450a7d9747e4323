package scenario

import (
	_ "embed"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

// Default returns the scenarios shipped with the module.
func Default() (*File, error) {
	return Parse(defaultScenarios)
}
