package grasp

import "morproj/model"

// tryInsertNodes builds the candidate route formed by splicing
// insertIDs into route1 right after position insertAfter, re-timing
// everything from that point on, and checks the result for time
// feasibility and cumulative capacity. Returns false on any failure,
// per SPEC_FULL.md §4.6 step 2 — this is full compare-and-accept
// logic, not the unconditional not-found stub one reference version
// used (see SPEC_FULL.md §9).
func tryInsertNodes(inst *model.ProblemInstance, route1 model.RouteEntry, insertAfter int, insertIDs []int) (model.RouteEntry, bool) {
	prefix := route1.Clients[:insertAfter+1]
	remainderIDs := clientIDsOf(route1.Clients[insertAfter+1:])

	anchorClient, anchorLeave := anchorOf(inst, prefix)
	retimedInsert := retimeFrom(inst, insertIDs, anchorClient, anchorLeave)

	last := retimedInsert[len(retimedInsert)-1]
	retimedRemainder := retimeFrom(inst, remainderIDs, last.ClientID, last.LeaveTime)

	newClients := make([]model.RouteEntryClient, 0, len(prefix)+len(retimedInsert)+len(retimedRemainder))
	newClients = append(newClients, prefix...)
	newClients = append(newClients, retimedInsert...)
	newClients = append(newClients, retimedRemainder...)

	newRoute := model.RouteEntry{VehicleID: route1.VehicleID, Clients: newClients}
	inst.ComputeRouteCosts(&newRoute)

	if newRoute.Demand > inst.Vehicles[newRoute.VehicleID].Capacity {
		return model.RouteEntry{}, false
	}
	if !tailFeasible(inst, newRoute) {
		return model.RouteEntry{}, false
	}
	return newRoute, true
}

// removeClients rebuilds route2 without the clients in excluded,
// re-timing the remainder from the depot.
func removeClients(inst *model.ProblemInstance, route2 model.RouteEntry, excluded map[int]bool) model.RouteEntry {
	keep := make([]int, 0, len(route2.Clients))
	for _, c := range route2.Clients {
		if excluded[c.ClientID] {
			continue
		}
		keep = append(keep, c.ClientID)
	}
	retimed := retimeFrom(inst, keep, inst.Source, inst.Clients[inst.Source].Earliest)
	newRoute := model.RouteEntry{VehicleID: route2.VehicleID, Clients: retimed}
	inst.ComputeRouteCosts(&newRoute)
	return newRoute
}

// insertionSearch scans every relocation of a length-sequenceLength
// run of route2 clients into route1 for a feasible, strictly-improving
// one. With firstImprovement it returns as soon as it finds one;
// otherwise it scans every relocation and returns the cheapest. This
// accept policy is governed by GraspConfig.InsertionSearchFirstImprovement
// — a different knob from LocalSearch.FirstImprovement, which governs
// the outer route-pair scan in insertionLocalSearch.
func insertionSearch(inst *model.ProblemInstance, route1, route2 model.RouteEntry, sequenceLength int, firstImprovement bool) (model.RouteEntry, model.RouteEntry, bool) {
	source := inst.Source
	oldCost := route1.RouteCost() + route2.RouteCost()

	var bestRoute1, bestRoute2 model.RouteEntry
	bestCost := oldCost
	found := false

	for i := 0; i < len(route1.Clients)-1; i++ {
		c1 := route1.Clients[i]
		if c1.ClientID == source {
			continue
		}

		for j := 0; j+sequenceLength <= len(route2.Clients)-1; j++ {
			c2 := route2.Clients[j]
			if c2.ClientID == source {
				continue
			}

			insertIDs := clientIDsOf(route2.Clients[j : j+sequenceLength])
			newRoute1, ok := tryInsertNodes(inst, route1, i, insertIDs)
			if !ok {
				continue
			}

			excluded := make(map[int]bool, sequenceLength)
			for _, id := range insertIDs {
				excluded[id] = true
			}
			newRoute2 := removeClients(inst, route2, excluded)

			cost := newRoute1.RouteCost() + newRoute2.RouteCost()
			if cost < bestCost {
				bestRoute1, bestRoute2, bestCost, found = newRoute1, newRoute2, cost, true
				if firstImprovement {
					return bestRoute1, bestRoute2, true
				}
			}
		}
	}
	return bestRoute1, bestRoute2, found
}

// insertionLocalSearch runs insertionSearch over every pair of
// distinct-vehicle routes in sol, following ls.FirstImprovement for
// the route-pair scan and firstImprovement for the relocation scan
// within each pair.
func insertionLocalSearch(inst *model.ProblemInstance, sol *model.Solution, ls LocalSearch, sequenceLength int, firstImprovement bool) (*model.Solution, bool) {
	return Iterate(ls, sol.Routes, sol.Routes, func(i int, r1 model.RouteEntry, j int, r2 model.RouteEntry) (*model.Solution, float64, bool) {
		if r1.VehicleID == r2.VehicleID {
			return nil, 0, false
		}
		newRoute1, newRoute2, ok := insertionSearch(inst, r1, r2, sequenceLength, firstImprovement)
		if !ok {
			return nil, 0, false
		}
		candidate := TransformSolution(sol, newRoute1, newRoute2)
		inst.EvaluateSolution(candidate)
		return candidate, candidate.Value, true
	})
}
