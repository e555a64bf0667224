package algorithms

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/elchead/knapsack-solver/pkg/knapsack"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// SortOrder is the direction in which the heuristic visits items by density.
type SortOrder int

const (
	// Ascending packs the least dense items first.
	Ascending SortOrder = iota
	// Descending is the textbook greedy: most dense items first.
	Descending
)

var ErrUnknownOrder = errors.New("unknown sort order")

func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("SortOrder(%d)", int(o))
	}
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, errors.Wrapf(ErrUnknownOrder, "%q", s)
}

// Density is price per weight using integer division. Zero weight items are
// the densest possible.
func Density(item knapsack.Item) uint32 {
	if item.Weight == 0 {
		return math.MaxUint32
	}
	return uint32(item.Price / item.Weight)
}

func sortByDensity(items []knapsack.Item, order SortOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		if order == Descending {
			return Density(items[i]) > Density(items[j])
		}
		return Density(items[i]) < Density(items[j])
	})
}

// Heuristic packs items greedily in density order. When an item does not fit
// it may replace the previously packed item if it is pricier and the swap
// stays within capacity. Only the last packed item is ever reconsidered.
func Heuristic(k knapsack.Knapsack, order SortOrder) (weight, price uint32, mask knapsack.Mask) {
	items := slices.Clone(k.Items)
	sortByDensity(items, order)

	result := make([]knapsack.Item, 0, len(items))
	var total uint32
	for _, item := range items {
		if uint32(item.Weight)+total <= k.Capacity {
			result = append(result, item)
			total += uint32(item.Weight)
			continue
		}
		if len(result) == 0 {
			continue
		}
		last := result[len(result)-1]
		after := uint32(item.Weight) + total - uint32(last.Weight)
		if last.Price < item.Price && after <= k.Capacity {
			result[len(result)-1] = item
			total = after
		}
	}

	weight, price = knapsack.Fitness(result)
	return weight, price, knapsack.MaskFromItems(result)
}
