package knapsack

import (
	"github.com/pkg/errors"
)

// MaxItems is the number of bits in a Mask.
const MaxItems = 32

var (
	ErrTooManyItems     = errors.New("knapsack has more items than mask bits")
	ErrIdentityMismatch = errors.New("item id does not match its position")
)

type Item struct {
	ID     int
	Weight uint16
	Price  uint16
}

func NewItem(weight, price uint16) Item {
	return Item{Weight: weight, Price: price}
}

// Knapsack is a problem instance. The order of Items defines bit positions in a Mask.
type Knapsack struct {
	ID       int
	Capacity uint32
	Items    []Item
}

// New builds an instance and renumbers the items so that each ID equals its position.
func New(id int, capacity uint32, items ...Item) (Knapsack, error) {
	if len(items) > MaxItems {
		return Knapsack{}, errors.Wrapf(ErrTooManyItems, "knapsack %d: %d items", id, len(items))
	}
	owned := make([]Item, len(items))
	for i, item := range items {
		item.ID = i
		owned[i] = item
	}
	return Knapsack{ID: id, Capacity: capacity, Items: owned}, nil
}

func (k Knapsack) Len() int { return len(k.Items) }

// Check reports whether k can be solved: it must fit in a Mask and every item
// id must equal its position.
func (k Knapsack) Check() error {
	if len(k.Items) > MaxItems {
		return errors.Wrapf(ErrTooManyItems, "knapsack %d: %d items", k.ID, len(k.Items))
	}
	for i, item := range k.Items {
		if item.ID != i {
			return errors.Wrapf(ErrIdentityMismatch, "knapsack %d: item at %d has id %d", k.ID, i, item.ID)
		}
	}
	return nil
}
