package algorithms

import "github.com/elchead/knapsack-solver/pkg/knapsack"

/*
*	Bruteforce method for calculating Knapsack problem
*	Every mask from 0 to 2^n-1 is evaluated; ties keep the lowest mask.
 */
func Bruteforce(k knapsack.Knapsack) (bestWeight, bestPrice uint32, bestMask knapsack.Mask) {
	end := uint64(1) << uint(len(k.Items))
	for m := uint64(1); m < end; m++ {
		mask := knapsack.Mask(m)
		weight, price := knapsack.Fitness(knapsack.ItemsFromMask(k, mask))
		if weight <= k.Capacity && price > bestPrice {
			bestWeight, bestPrice, bestMask = weight, price, mask
		}
	}
	return
}
