package solver

import (
	"fmt"
	"strings"

	"github.com/containerd/containerd/log"
	"github.com/elchead/knapsack-solver/pkg/algorithms"
	"github.com/elchead/knapsack-solver/pkg/clock"
	"github.com/elchead/knapsack-solver/pkg/knapsack"
	"github.com/pkg/errors"
)

type Strategy int

const (
	Bruteforce Strategy = iota
	Heuristic
)

var ErrUnknownStrategy = errors.New("unknown strategy")

func Strategies() []Strategy { return []Strategy{Bruteforce, Heuristic} }

func (s Strategy) String() string {
	switch s {
	case Bruteforce:
		return "bruteforce"
	case Heuristic:
		return "heuristic"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bruteforce", "brute", "bf":
		return Bruteforce, nil
	case "heuristic", "greedy":
		return Heuristic, nil
	}
	return Bruteforce, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// Solution is a snapshot of one solve. It does not reference the instance.
type Solution struct {
	KnapsackID int
	Mask       knapsack.Mask
	Price      uint32
	Weight     uint32
	Elapsed    float64 // in ms
	Strategy   Strategy
}

// Items decodes the solution mask against the instance it was solved for.
func (s Solution) Items(k knapsack.Knapsack) []knapsack.Item {
	return knapsack.ItemsFromMask(k, s.Mask)
}

type Solver struct {
	Order algorithms.SortOrder // used by Heuristic
	Now   func() clock.Clock
}

func New() *Solver {
	return &Solver{Order: algorithms.Ascending, Now: clock.Now}
}

func NewWithOrder(order algorithms.SortOrder) *Solver {
	s := New()
	s.Order = order
	return s
}

func Solve(k knapsack.Knapsack, strategy Strategy) (Solution, error) {
	return New().Solve(k, strategy)
}

func (s Solver) Solve(k knapsack.Knapsack, strategy Strategy) (Solution, error) {
	if err := k.Check(); err != nil {
		return Solution{}, errors.Wrap(err, "cannot solve")
	}
	now := s.Now
	if now == nil {
		now = clock.Now
	}

	var weight, price uint32
	var mask knapsack.Mask
	start := now()
	switch strategy {
	case Bruteforce:
		weight, price, mask = algorithms.Bruteforce(k)
	case Heuristic:
		weight, price, mask = algorithms.Heuristic(k, s.Order)
	default:
		return Solution{}, errors.Wrapf(ErrUnknownStrategy, "%d", int(strategy))
	}
	elapsed := clock.Milliseconds(now().Sub(start))

	log.L.Debugf("solved knapsack %d (%d items) with %s in %.3fms: price %d weight %d", k.ID, k.Len(), strategy, elapsed, price, weight)
	return Solution{
		KnapsackID: k.ID,
		Mask:       mask,
		Price:      price,
		Weight:     weight,
		Elapsed:    elapsed,
		Strategy:   strategy,
	}, nil
}

// Validate reports whether the solution's weight respects the capacity of k.
func Validate(sol Solution, k knapsack.Knapsack) bool {
	return sol.Weight <= k.Capacity
}
