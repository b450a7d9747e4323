package scenario

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"

	"github.com/daystram/chessmoves/board"
	"github.com/daystram/chessmoves/movegen"
	"github.com/daystram/chessmoves/position"
)

var (
	ErrInvalidScenario = errors.New("invalid scenario")
)

// Scenario pins the destinations of the piece on Origin. When Error is set
// the generator must fail with that error kind instead.
type Scenario struct {
	Name   string   `yaml:"name"`
	FEN    string   `yaml:"fen"`
	Origin string   `yaml:"origin"`
	Moves  []string `yaml:"moves"`
	Error  string   `yaml:"error,omitempty"`
}

type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

var errorKinds = map[string]error{
	"invalid_origin":    movegen.ErrInvalidOrigin,
	"unsupported_piece": movegen.ErrUnsupportedPiece,
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	for i, s := range f.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: scenario #%d has no name", ErrInvalidScenario, i)
		}
		if _, ok := errorKinds[s.Error]; s.Error != "" && !ok {
			return nil, fmt.Errorf("%w: %s: unknown error kind %q", ErrInvalidScenario, s.Name, s.Error)
		}
	}
	return &f, nil
}

// Result is the outcome of one scenario. Moves are compared as sorted sets
// of UCI strings.
type Result struct {
	Scenario   Scenario
	Got        []string
	Missing    []string
	Unexpected []string
	Err        error
}

func (r Result) Passed() bool {
	return r.Err == nil && len(r.Missing) == 0 && len(r.Unexpected) == 0
}

func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("FAIL %s: %v", r.Scenario.Name, r.Err)
	case !r.Passed():
		return fmt.Sprintf("FAIL %s: missing=%v unexpected=%v", r.Scenario.Name, r.Missing, r.Unexpected)
	default:
		return fmt.Sprintf("ok   %s (%d moves)", r.Scenario.Name, len(r.Got))
	}
}

// Run evaluates s. Setup problems such as a bad FEN are returned as errors;
// generator behaviour that disagrees with s is reported in the Result.
func Run(s Scenario) (Result, error) {
	b, err := board.NewBoard(board.WithFEN(s.FEN))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrInvalidScenario, s.Name, err)
	}
	origin, err := position.NewPosFromNotation(s.Origin)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrInvalidScenario, s.Name, err)
	}

	res := Result{Scenario: s}
	mvs, genErr := movegen.Generate(b, origin)
	if s.Error != "" {
		if !errors.Is(genErr, errorKinds[s.Error]) {
			res.Err = fmt.Errorf("want %s error, got %v", s.Error, genErr)
		}
		return res, nil
	}
	if genErr != nil {
		res.Err = genErr
		return res, nil
	}

	res.Got = make([]string, 0, len(mvs))
	for _, mv := range mvs {
		res.Got = append(res.Got, mv.UCI())
	}
	slices.Sort(res.Got)
	want := slices.Clone(s.Moves)
	slices.Sort(want)

	for _, w := range want {
		if _, found := slices.BinarySearch(res.Got, w); !found {
			res.Missing = append(res.Missing, w)
		}
	}
	for _, g := range res.Got {
		if _, found := slices.BinarySearch(want, g); !found {
			res.Unexpected = append(res.Unexpected, g)
		}
	}
	return res, nil
}

func RunAll(f *File) ([]Result, error) {
	results := make([]Result, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		res, err := Run(s)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
