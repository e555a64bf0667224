package knapsack

import (
	"fmt"
	"strings"
)

// Mask is a presence mask: bit i selects the item at position i.
type Mask uint32

func (m Mask) Has(pos int) bool {
	return pos >= 0 && pos < MaxItems && m&(1<<uint(pos)) != 0
}

// Bits renders the lowest n bits, position 0 first.
func (m Mask) Bits(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if m.Has(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (m Mask) String() string { return fmt.Sprintf("%#x", uint32(m)) }

// ItemsFromMask returns the items of k selected by mask, in instance order.
// Bits past the last item are ignored.
func ItemsFromMask(k Knapsack, mask Mask) []Item {
	items := make([]Item, 0, len(k.Items))
	for i, item := range k.Items {
		if mask.Has(i) {
			items = append(items, item)
		}
	}
	return items
}

// MaskFromItems sets the bit at each item's ID. The result only decodes back
// to the same items when every ID equals the item's position in its instance.
func MaskFromItems(items []Item) Mask {
	var mask Mask
	for _, item := range items {
		if item.ID >= 0 && item.ID < MaxItems {
			mask |= 1 << uint(item.ID)
		}
	}
	return mask
}

// Fitness returns the total weight and total price of items.
func Fitness(items []Item) (weight, price uint32) {
	for _, item := range items {
		weight += uint32(item.Weight)
		price += uint32(item.Price)
	}
	return
}
