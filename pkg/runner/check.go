package runner

import (
	"github.com/praetorian-inc/aoc2023/pkg/puzzle"
	"github.com/praetorian-inc/aoc2023/pkg/types"
)

// CheckSamples runs every sample of info that has an expected answer
// through p. Unlike Run it does not stop at the first failure, so one call
// reports on every sample.
func (r *Runner) CheckSamples(p puzzle.Puzzle, info *types.PuzzleInfo) []types.SampleResult {
	var results []types.SampleResult
	for _, s := range info.Samples {
		for _, part := range []types.Part{types.Part1, types.Part2} {
			want, ok := s.Want(part)
			if !ok {
				continue
			}

			res := types.SampleResult{
				PuzzleID: info.ID,
				Sample:   s.Name,
				Part:     part,
				Want:     want,
			}
			a, err := r.Solve(p, part, s.Input)
			res.Got, res.Elapsed, res.Err = a.Value, a.Elapsed, err
			results = append(results, res)
		}
	}
	return results
}
