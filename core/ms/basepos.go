// core/ms/basepos.go
package ms

import (
	"math"
	"slices"
)

// ToBasePositions maps relative positions in [0,1) onto distinct integer
// coordinates in [0, locusLen) and returns them in ascending order.
//
// Sites that land on the same base are shifted right, wrapping at the end of
// the locus, until every base holds at most one site. If there are more sites
// than bases, the locus is widened to one base per site.
func ToBasePositions(rel []float64, locusLen int) []int {
	n := len(rel)
	if n == 0 {
		return []int{}
	}
	length := max(locusLen, n)

	counts := make(map[int]int, n)
	for _, p := range rel {
		b := int(math.Floor(p * float64(length)))
		b = min(max(b, 0), length-1)
		counts[b]++
	}

	for hasCollision(counts) {
		for _, b := range sortedKeys(counts) {
			for i := 1; counts[b] > 1; i++ {
				counts[b]--
				counts[(b+i)%length]++
			}
		}
	}
	return sortedKeys(counts)
}

func hasCollision(counts map[int]int) bool {
	for _, c := range counts {
		if c > 1 {
			return true
		}
	}
	return false
}

func sortedKeys(counts map[int]int) []int {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
