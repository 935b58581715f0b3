package grasp

import (
	"math/rand"
	"sort"

	"morproj/model"
)

// TimeMax returns the greater of two Time values. The constructive
// builder uses it for the wait-time and move-cost arithmetic.
func TimeMax(a, b model.Time) model.Time {
	if a > b {
		return a
	}
	return b
}

// AlphaMaxIndex assumes costs is sorted ascending and returns the
// largest index i such that costs[i] <= cMin + (cMax-cMin)*alpha. The
// caller must pass a non-empty slice.
func AlphaMaxIndex(costs []float64, alpha float64) int {
	cMin, cMax := costs[0], costs[len(costs)-1]
	threshold := cMin + (cMax-cMin)*alpha
	// First index whose cost exceeds threshold; everything before it
	// qualifies.
	idx := sort.Search(len(costs), func(i int) bool {
		return costs[i] > threshold
	})
	return idx - 1
}

// SizedRCLChoose picks uniformly at random among list[0:size], clamped
// to list's length. list must be sorted the same way costs was when
// size was derived.
func SizedRCLChoose[T any](rng *rand.Rand, list []T, size int) T {
	if size > len(list) {
		size = len(list)
	}
	if size < 1 {
		size = 1
	}
	return list[rng.Intn(size)]
}

// AlphaRCLChoose selects an element of list uniformly at random from
// its alpha-bounded restricted candidate list: the prefix of length
// max(AlphaMaxIndex(costs, alpha)+1, minSize), clamped to list's
// length. list and costs must be sorted ascending by cost and aligned
// by index.
func AlphaRCLChoose[T any](rng *rand.Rand, list []T, costs []float64, alpha float64, minSize int) T {
	maxIndex := AlphaMaxIndex(costs, alpha) + 1
	size := maxIndex
	if minSize > size {
		size = minSize
	}
	return SizedRCLChoose(rng, list, size)
}

// WeightedChoose samples an element of list with probability
// proportional to its weight in weights (aligned by index). Weights
// must be non-negative and sum to a positive value.
func WeightedChoose[T any](rng *rand.Rand, list []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return list[i]
		}
	}
	return list[len(list)-1]
}

// TransformSolution returns a new Solution with the routes for
// route1.VehicleID and route2.VehicleID replaced by the supplied
// routes, then filters out any route whose RouteCost() is <= 0 (empty
// routes), so evaluated costs stay consistent with the visible route
// count.
func TransformSolution(sol *model.Solution, route1, route2 model.RouteEntry) *model.Solution {
	next := sol.Clone()
	routes := make([]model.RouteEntry, 0, len(next.Routes))
	replaced1, replaced2 := false, false
	for _, r := range next.Routes {
		switch r.VehicleID {
		case route1.VehicleID:
			r = route1
			replaced1 = true
		case route2.VehicleID:
			r = route2
			replaced2 = true
		}
		if r.RouteCost() > 0 {
			routes = append(routes, r)
		}
	}
	if !replaced1 && route1.RouteCost() > 0 {
		routes = append(routes, route1)
	}
	if !replaced2 && route2.RouteCost() > 0 {
		routes = append(routes, route2)
	}
	next.Routes = routes
	return next
}
