package report

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of solving one report.
type Result struct {
	Values  []int32
	Pairs   []Pair
	First   Pair
	Product int64
}

// Solve parses content, finds the pairs summing to target and multiplies the
// first one.
func Solve(content string, target int32, opts ...FindOption) (*Result, error) {
	values, err := Parse(content)
	if err != nil {
		return nil, err
	}
	pairs, err := FindPairs(values, target, opts...)
	if err != nil {
		return nil, err
	}
	return &Result{
		Values:  values,
		Pairs:   pairs,
		First:   pairs[0],
		Product: pairs[0].Product(),
	}, nil
}

// FileResult pairs a solved report with the path it was read from.
type FileResult struct {
	Path string
	*Result
}

// SolveFiles reads and solves every report, at most limit at a time
// (limit <= 0 means unbounded). Results keep the order of paths. The first
// failure cancels the remaining work and is returned with its path.
func SolveFiles(ctx context.Context, paths []string, target int32, limit int, opts ...FindOption) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := ReadFile(path)
			if err != nil {
				return err
			}
			res, err := Solve(content, target, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = FileResult{Path: path, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
