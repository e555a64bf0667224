package report

import (
	"context"
	"fmt"
	"io"

	"github.com/elchead/knapsack-solver/pkg/knapsack"
	"github.com/elchead/knapsack-solver/pkg/solver"
	"github.com/pkg/errors"
)

type Reporter interface {
	Report(ctx context.Context, k knapsack.Knapsack, sol solver.Solution) error
}

// TextReporter writes one line per solution:
// id n capacity strategy price weight elapsed_ms bits...
type TextReporter struct {
	W io.Writer
}

func (r TextReporter) Report(_ context.Context, k knapsack.Knapsack, sol solver.Solution) error {
	_, err := fmt.Fprintf(r.W, "%d %d %d %s %d %d %.4f %s\n",
		sol.KnapsackID, k.Len(), k.Capacity, sol.Strategy, sol.Price, sol.Weight, sol.Elapsed, sol.Mask.Bits(k.Len()))
	return errors.Wrap(err, "write solution")
}

type MultiReporter []Reporter

func (m MultiReporter) Report(ctx context.Context, k knapsack.Knapsack, sol solver.Solution) error {
	var firstErr error
	for _, r := range m {
		if err := r.Report(ctx, k, sol); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Comparison relates an approximate solution to the optimal one of the same instance.
type Comparison struct {
	KnapsackID    int
	Optimal       uint32
	Approx        uint32
	RelativeError float64
	Speedup       float64
}

func Compare(optimal, approx solver.Solution) Comparison {
	c := Comparison{KnapsackID: optimal.KnapsackID, Optimal: optimal.Price, Approx: approx.Price}
	if optimal.Price > 0 {
		c.RelativeError = (float64(optimal.Price) - float64(approx.Price)) / float64(optimal.Price)
	}
	if approx.Elapsed > 0 {
		c.Speedup = optimal.Elapsed / approx.Elapsed
	}
	return c
}

func (c Comparison) String() string {
	return fmt.Sprintf("knapsack %d: optimum %d, heuristic %d, relative error %.4f, speedup %.1fx",
		c.KnapsackID, c.Optimal, c.Approx, c.RelativeError, c.Speedup)
}
