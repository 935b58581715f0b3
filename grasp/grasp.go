package grasp

import "morproj/model"

// LocalSearch runs the configured local-search operators over sol
// repeatedly, up to Config.LocalSearchIters times, stopping early once
// a full pass improves neither route exchange nor insertion. The
// route-pair scan inside each operator follows
// Config.LocalSearchFirstImprovement (shared by both); each operator's
// own position-pair scan follows its own
// Opt2SearchFirstImprovement/InsertionSearchFirstImprovement. See
// SPEC_FULL.md §4.7.
func (g *Grasp) LocalSearch(sol *model.Solution) *model.Solution {
	best := sol
	ls := LocalSearch{FirstImprovement: g.Config.LocalSearchFirstImprovement}

	for iter := 0; iter < g.Config.LocalSearchIters; iter++ {
		shouldBreak := true

		if g.Config.Opt2SearchEnabled {
			if next, ok := opt2LocalSearch(g.Instance, best, ls, g.Config.Opt2SearchFirstImprovement); ok {
				best = next
				shouldBreak = false
			}
		}

		if g.Config.InsertionSearchEnabled {
			if next, ok := insertionLocalSearch(g.Instance, best, ls, g.Config.InsertionSearchSequenceLength, g.Config.InsertionSearchFirstImprovement); ok {
				best = next
				shouldBreak = false
			}
		}

		if shouldBreak {
			break
		}
	}

	return best
}

// Iterate runs one full GRASP iteration: construct, then improve.
func (g *Grasp) Iterate() (*model.Solution, error) {
	sol, err := g.BuildSolution()
	if err != nil {
		return nil, err
	}
	return g.LocalSearch(sol), nil
}
