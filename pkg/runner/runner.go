// Package runner drives the daily solvers one after another, timing each
// part and stopping at the first failure.
package runner

import (
	"fmt"
	"time"

	"github.com/praetorian-inc/aoc2023/pkg/puzzle"
	"github.com/praetorian-inc/aoc2023/pkg/types"
	"go.uber.org/zap"
)

// Sink receives results as soon as they are produced.
type Sink interface {
	// BeginDay is called before the first part of a day is solved.
	BeginDay(day int) error

	// Answer is called once per solved part, part 1 before part 2.
	Answer(a types.Answer) error
}

// Config holds runner configuration.
type Config struct {
	Logger *zap.Logger // nil means no logging
}

// Runner solves puzzles sequentially.
type Runner struct {
	logger *zap.Logger
	now    func() time.Time
}

// New creates a runner.
func New(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		logger: logger,
		now:    time.Now,
	}
}

// Run solves both parts of every puzzle in order and streams the answers to
// sink. The first error aborts the run; days after it are not attempted.
func (r *Runner) Run(puzzles []puzzle.Puzzle, sink Sink) error {
	for _, p := range puzzles {
		if err := sink.BeginDay(p.Day); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		for _, part := range []types.Part{types.Part1, types.Part2} {
			a, err := r.Solve(p, part, p.Input)
			if err != nil {
				return err
			}
			if err := sink.Answer(a); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
	}
	return nil
}

// Solve runs a single part of p against input and times it.
func (r *Runner) Solve(p puzzle.Puzzle, part types.Part, input string) (types.Answer, error) {
	solve := p.Solver.Part1
	if part == types.Part2 {
		solve = p.Solver.Part2
	}

	start := r.now()
	value, err := solve(input)
	elapsed := r.now().Sub(start)

	if err != nil {
		r.logger.Error("solve failed",
			zap.Int("day", p.Day),
			zap.Int("part", int(part)),
			zap.Error(err))
		return types.Answer{}, fmt.Errorf("day %02d part %d: %w", p.Day, part, err)
	}

	r.logger.Debug("solved",
		zap.Int("day", p.Day),
		zap.Int("part", int(part)),
		zap.Int("value", value),
		zap.Duration("elapsed", elapsed))

	return types.Answer{
		Day:     p.Day,
		Part:    part,
		Value:   value,
		Elapsed: elapsed,
	}, nil
}

// Collector is a Sink that keeps every answer in memory.
type Collector struct {
	Days    []int
	Answers []types.Answer
}

// BeginDay records the day.
func (c *Collector) BeginDay(day int) error {
	c.Days = append(c.Days, day)
	return nil
}

// Answer records the answer.
func (c *Collector) Answer(a types.Answer) error {
	c.Answers = append(c.Answers, a)
	return nil
}
