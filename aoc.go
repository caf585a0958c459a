// Package aoc2023 solves the Advent of Code 2023 puzzles.
//
// # Basic Usage
//
// Solve every implemented day against its embedded input:
//
//	s, err := aoc2023.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	answers, err := s.SolveAll()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range answers {
//	    fmt.Printf("day %d part %d: %d\n", a.Day, a.Part, a.Value)
//	}
//
// # Personal Inputs
//
// The embedded inputs are the published examples. Point the solver at a
// directory holding day01.txt, day02.txt, ... to solve your own:
//
//	s, err := aoc2023.New(aoc2023.WithInputs(os.DirFS("inputs")))
package aoc2023

import (
	"fmt"
	"io/fs"

	"github.com/praetorian-inc/aoc2023/pkg/catalog"
	"github.com/praetorian-inc/aoc2023/pkg/puzzle"
	"github.com/praetorian-inc/aoc2023/pkg/runner"
	"github.com/praetorian-inc/aoc2023/pkg/solvers"
	"github.com/praetorian-inc/aoc2023/pkg/types"
	"go.uber.org/zap"
)

// Re-export commonly used types for convenience.
type (
	// Answer is the result of one solved part.
	Answer = types.Answer

	// Part selects part 1 or part 2 of a puzzle.
	Part = types.Part

	// PuzzleInfo describes a puzzle in the catalog.
	PuzzleInfo = types.PuzzleInfo

	// ParseError reports a malformed input line.
	ParseError = puzzle.ParseError
)

// Re-export part constants.
const (
	Part1 = types.Part1
	Part2 = types.Part2
)

// Solver runs the registered daily puzzles.
type Solver struct {
	runner  *runner.Runner
	puzzles []puzzle.Puzzle
}

// solverConfig holds solver configuration.
type solverConfig struct {
	logger *zap.Logger
	inputs fs.FS
}

// Option configures a Solver.
type Option func(*solverConfig)

// WithLogger logs every solved part at debug level and every failure at
// error level. The default logs nothing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *solverConfig) {
		c.logger = logger
	}
}

// WithInputs reads dayNN.txt from fsys instead of the embedded inputs.
// Every registered day must have a file.
func WithInputs(fsys fs.FS) Option {
	return func(c *solverConfig) {
		c.inputs = fsys
	}
}

// New creates a Solver over every registered day.
func New(opts ...Option) (*Solver, error) {
	config := &solverConfig{}
	for _, opt := range opts {
		opt(config)
	}

	puzzles := solvers.All()
	if config.inputs != nil {
		var err error
		puzzles, err = runner.ResolveInputs(puzzles, config.inputs)
		if err != nil {
			return nil, fmt.Errorf("loading inputs: %w", err)
		}
	}

	return &Solver{
		runner:  runner.New(runner.Config{Logger: config.logger}),
		puzzles: puzzles,
	}, nil
}

// Days returns the implemented days in order.
func (s *Solver) Days() []int {
	days := make([]int, len(s.puzzles))
	for i, p := range s.puzzles {
		days[i] = p.Day
	}
	return days
}

// Solve runs both parts of day against input.
//
// Example:
//
//	answers, err := s.Solve(3, schematic)
//	// answers[0] is part 1, answers[1] is part 2
func (s *Solver) Solve(day int, input string) ([]Answer, error) {
	p, ok := s.lookup(day)
	if !ok {
		return nil, fmt.Errorf("day %d is not implemented", day)
	}
	p.Input = input

	var sink runner.Collector
	if err := s.runner.Run([]puzzle.Puzzle{p}, &sink); err != nil {
		return sink.Answers, err
	}
	return sink.Answers, nil
}

// SolvePart runs a single part of day against input.
func (s *Solver) SolvePart(day int, part Part, input string) (Answer, error) {
	p, ok := s.lookup(day)
	if !ok {
		return Answer{}, fmt.Errorf("day %d is not implemented", day)
	}
	return s.runner.Solve(p, part, input)
}

// SolveAll runs every day against its input. On failure the answers
// produced before the error are returned with it.
func (s *Solver) SolveAll() ([]Answer, error) {
	var sink runner.Collector
	err := s.runner.Run(s.puzzles, &sink)
	return sink.Answers, err
}

func (s *Solver) lookup(day int) (puzzle.Puzzle, bool) {
	for _, p := range s.puzzles {
		if p.Day == day {
			return p, true
		}
	}
	return puzzle.Puzzle{}, false
}

// Catalog returns the builtin puzzle catalog.
func Catalog() ([]*PuzzleInfo, error) {
	return catalog.NewLoader().LoadBuiltin()
}
