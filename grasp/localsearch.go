package grasp

// LocalSearch iterates the Cartesian product of two index sequences,
// calling search for every pair, and keeps the best result according
// to cost. With FirstImprovement set, it returns as soon as search
// reports the first candidate.
type LocalSearch struct {
	FirstImprovement bool
}

// SearchFunc evaluates the pair (i, a) from the first sequence against
// (j, b) from the second, returning a candidate result, its cost, and
// whether a candidate was found at all.
type SearchFunc[A, B, S any] func(i int, a A, j int, b B) (S, float64, bool)

// Iterate runs search over every (values1[i], values2[j]) pair and
// returns the best S found, or the zero value and false if none was.
// A free function rather than a method because Go methods cannot
// declare extra type parameters beyond the receiver's.
func Iterate[A, B, S any](ls LocalSearch, values1 []A, values2 []B, search SearchFunc[A, B, S]) (S, bool) {
	var best S
	var bestCost float64
	found := false

	for i, a := range values1 {
		for j, b := range values2 {
			result, cost, ok := search(i, a, j, b)
			if !ok {
				continue
			}
			if !found || cost < bestCost {
				best = result
				bestCost = cost
				found = true
				if ls.FirstImprovement {
					return best, true
				}
			}
		}
	}
	return best, found
}
