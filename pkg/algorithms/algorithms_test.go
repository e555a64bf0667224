package algorithms_test

import (
	"math/rand"
	"testing"

	"github.com/elchead/knapsack-solver/pkg/algorithms"
	"github.com/elchead/knapsack-solver/pkg/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wp struct{ w, p uint16 }

func newKnapsack(t testing.TB, capacity uint32, items ...wp) knapsack.Knapsack {
	t.Helper()
	ks := make([]knapsack.Item, len(items))
	for i, it := range items {
		ks[i] = knapsack.NewItem(it.w, it.p)
	}
	k, err := knapsack.New(1, capacity, ks...)
	require.NoError(t, err)
	return k
}

// recursiveBest explores the include/exclude tree and returns the best
// feasible price. It shares no code with the mask enumeration.
func recursiveBest(capacity uint32, items []knapsack.Item, next int, sumWeight, sumPrice uint32) uint32 {
	if next == len(items) {
		return sumPrice
	}
	best := recursiveBest(capacity, items, next+1, sumWeight, sumPrice)
	if w := sumWeight + uint32(items[next].Weight); w <= capacity {
		if p := recursiveBest(capacity, items, next+1, w, sumPrice+uint32(items[next].Price)); p > best {
			best = p
		}
	}
	return best
}

func randomKnapsack(t testing.TB, rng *rand.Rand, n int) knapsack.Knapsack {
	items := make([]wp, n)
	var total uint32
	for i := range items {
		items[i] = wp{uint16(rng.Intn(50)), uint16(rng.Intn(100))}
		total += uint32(items[i].w)
	}
	return newKnapsack(t, uint32(rng.Int63n(int64(total)+1)), items...)
}

type solveFunc func(knapsack.Knapsack) (uint32, uint32, knapsack.Mask)

var strategies = map[string]solveFunc{
	"bruteforce": algorithms.Bruteforce,
	"heuristic ascending": func(k knapsack.Knapsack) (uint32, uint32, knapsack.Mask) {
		return algorithms.Heuristic(k, algorithms.Ascending)
	},
	"heuristic descending": func(k knapsack.Knapsack) (uint32, uint32, knapsack.Mask) {
		return algorithms.Heuristic(k, algorithms.Descending)
	},
}

func TestScenarios(t *testing.T) {
	for name, solve := range strategies {
		t.Run(name, func(t *testing.T) {
			t.Run("empty instance", func(t *testing.T) {
				w, p, m := solve(newKnapsack(t, 5))
				assert.Zero(t, w)
				assert.Zero(t, p)
				assert.Zero(t, m)
			})
			t.Run("single item exceeds capacity", func(t *testing.T) {
				w, p, m := solve(newKnapsack(t, 2, wp{3, 7}))
				assert.Zero(t, w)
				assert.Zero(t, p)
				assert.Zero(t, m)
			})
			t.Run("single item fits", func(t *testing.T) {
				w, p, m := solve(newKnapsack(t, 5, wp{3, 7}))
				assert.Equal(t, uint32(3), w)
				assert.Equal(t, uint32(7), p)
				assert.Equal(t, knapsack.Mask(1), m)
			})
			t.Run("three items", func(t *testing.T) {
				// {1,2} weighs exactly the capacity and beats {0,1} (w9 p14).
				w, p, m := solve(newKnapsack(t, 10, wp{5, 10}, wp{4, 4}, wp{6, 12}))
				assert.Equal(t, uint32(10), w)
				assert.Equal(t, uint32(16), p)
				assert.Equal(t, knapsack.Mask(0b110), m)
			})
			t.Run("zero weight item with zero capacity", func(t *testing.T) {
				w, p, m := solve(newKnapsack(t, 0, wp{0, 5}, wp{1, 1}))
				assert.Zero(t, w)
				assert.Equal(t, uint32(5), p)
				assert.Equal(t, knapsack.Mask(1), m)
			})
		})
	}
}

func TestBruteforceTieKeepsLowestMask(t *testing.T) {
	_, p, m := algorithms.Bruteforce(newKnapsack(t, 3, wp{3, 5}, wp{3, 5}))
	assert.Equal(t, uint32(5), p)
	assert.Equal(t, knapsack.Mask(0b01), m)
}

func TestBruteforceIsOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		k := randomKnapsack(t, rng, rng.Intn(13))
		w, p, m := algorithms.Bruteforce(k)
		assert.LessOrEqual(t, w, k.Capacity)
		assert.Equal(t, recursiveBest(k.Capacity, k.Items, 0, 0, 0), p)

		mw, mp := knapsack.Fitness(knapsack.ItemsFromMask(k, m))
		assert.Equal(t, w, mw)
		assert.Equal(t, p, mp)
	}
}

func TestHeuristicIsFeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		k := randomKnapsack(t, rng, rng.Intn(knapsack.MaxItems+1))
		for _, order := range []algorithms.SortOrder{algorithms.Ascending, algorithms.Descending} {
			w, p, m := algorithms.Heuristic(k, order)
			assert.LessOrEqual(t, w, k.Capacity)

			mw, mp := knapsack.Fitness(knapsack.ItemsFromMask(k, m))
			assert.Equal(t, w, mw, order.String())
			assert.Equal(t, p, mp, order.String())
			if k.Len() <= 12 {
				assert.LessOrEqual(t, p, recursiveBest(k.Capacity, k.Items, 0, 0, 0))
			}
		}
	}
}

func TestHeuristic(t *testing.T) {
	t.Run("pricier item replaces the last packed one", func(t *testing.T) {
		w, p, m := algorithms.Heuristic(newKnapsack(t, 10, wp{6, 6}, wp{5, 10}), algorithms.Ascending)
		assert.Equal(t, uint32(5), w)
		assert.Equal(t, uint32(10), p)
		assert.Equal(t, knapsack.Mask(0b10), m)
	})
	t.Run("oversized leading item is skipped", func(t *testing.T) {
		w, p, m := algorithms.Heuristic(newKnapsack(t, 4, wp{10, 5}, wp{2, 4}), algorithms.Ascending)
		assert.Equal(t, uint32(2), w)
		assert.Equal(t, uint32(4), p)
		assert.Equal(t, knapsack.Mask(0b10), m)
	})
	t.Run("sort order changes the result", func(t *testing.T) {
		k := newKnapsack(t, 10, wp{1, 1}, wp{9, 9}, wp{5, 50}, wp{5, 40})

		w, p, m := algorithms.Heuristic(k, algorithms.Ascending)
		assert.Equal(t, uint32(6), w)
		assert.Equal(t, uint32(51), p)
		assert.Equal(t, knapsack.Mask(0b0101), m)

		w, p, m = algorithms.Heuristic(k, algorithms.Descending)
		assert.Equal(t, uint32(10), w)
		assert.Equal(t, uint32(90), p)
		assert.Equal(t, knapsack.Mask(0b1100), m)
	})
	t.Run("does not reorder the instance", func(t *testing.T) {
		k := newKnapsack(t, 10, wp{1, 9}, wp{1, 1})
		before := append([]knapsack.Item(nil), k.Items...)
		algorithms.Heuristic(k, algorithms.Ascending)
		assert.Equal(t, before, k.Items)
	})
}

func TestDensity(t *testing.T) {
	assert.Equal(t, uint32(2), algorithms.Density(knapsack.NewItem(4, 9)))
	assert.Equal(t, uint32(0), algorithms.Density(knapsack.NewItem(4, 3)))
	assert.Equal(t, uint32(1<<32-1), algorithms.Density(knapsack.NewItem(0, 3)))
}

func TestParseSortOrder(t *testing.T) {
	for in, want := range map[string]algorithms.SortOrder{
		"asc": algorithms.Ascending, "Ascending": algorithms.Ascending,
		"desc": algorithms.Descending, " descending ": algorithms.Descending,
	} {
		got, err := algorithms.ParseSortOrder(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := algorithms.ParseSortOrder("sideways")
	assert.ErrorIs(t, err, algorithms.ErrUnknownOrder)
	assert.Equal(t, "SortOrder(7)", algorithms.SortOrder(7).String())
}

func BenchmarkBruteforce20(b *testing.B) {
	k := randomKnapsack(b, rand.New(rand.NewSource(3)), 20)
	for i := 0; i < b.N; i++ {
		algorithms.Bruteforce(k)
	}
}

func BenchmarkHeuristic32(b *testing.B) {
	k := randomKnapsack(b, rand.New(rand.NewSource(3)), 32)
	for i := 0; i < b.N; i++ {
		algorithms.Heuristic(k, algorithms.Ascending)
	}
}
