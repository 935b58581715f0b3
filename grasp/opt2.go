package grasp

import "morproj/model"

// retimeFrom recomputes arrive/leave/wait for a sequence of client ids
// whose predecessor is prevClientID, departing prevLeaveTime. Used to
// re-time the tail adopted from the other route after an exchange or
// insertion.
func retimeFrom(inst *model.ProblemInstance, clientIDs []int, prevClientID int, prevLeaveTime model.Time) []model.RouteEntryClient {
	out := make([]model.RouteEntryClient, len(clientIDs))
	prev := prevClientID
	t := prevLeaveTime
	for i, cid := range clientIDs {
		arc := inst.Distances[prev][cid]
		rec := inst.CreateRouteEntryClient(arc, cid, t)
		out[i] = rec
		prev = cid
		t = rec.LeaveTime
	}
	return out
}

func clientIDsOf(entries []model.RouteEntryClient) []int {
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.ClientID
	}
	return ids
}

// tailFeasible reports whether every consecutive pair in route remains
// time-feasible, i.e. IsMoveFeasible holds between every client and
// the one that follows it.
func tailFeasible(inst *model.ProblemInstance, route model.RouteEntry) bool {
	for i := 1; i < len(route.Clients); i++ {
		prev := route.Clients[i-1]
		cur := route.Clients[i]
		if !inst.IsMoveFeasible(prev.ClientID, cur.ClientID, prev.LeaveTime) {
			return false
		}
	}
	return true
}

// exchangeSubroutes builds the two candidate routes formed by swapping
// route1's suffix after position i with route2's suffix after
// position j. See SPEC_FULL.md §4.5.1.
func exchangeSubroutes(inst *model.ProblemInstance, route1, route2 model.RouteEntry, i, j int) (model.RouteEntry, model.RouteEntry) {
	prefix1 := route1.Clients[:i+1]
	prefix2 := route2.Clients[:j+1]
	suffix1IDs := clientIDsOf(route1.Clients[i+1:])
	suffix2IDs := clientIDsOf(route2.Clients[j+1:])

	anchor1Client, anchor1Leave := anchorOf(inst, prefix1)
	anchor2Client, anchor2Leave := anchorOf(inst, prefix2)

	newClients1 := make([]model.RouteEntryClient, 0, len(prefix1)+len(suffix2IDs))
	newClients1 = append(newClients1, prefix1...)
	newClients1 = append(newClients1, retimeFrom(inst, suffix2IDs, anchor1Client, anchor1Leave)...)

	newClients2 := make([]model.RouteEntryClient, 0, len(prefix2)+len(suffix1IDs))
	newClients2 = append(newClients2, prefix2...)
	newClients2 = append(newClients2, retimeFrom(inst, suffix1IDs, anchor2Client, anchor2Leave)...)

	newRoute1 := model.RouteEntry{VehicleID: route1.VehicleID, Clients: newClients1}
	newRoute2 := model.RouteEntry{VehicleID: route2.VehicleID, Clients: newClients2}
	inst.ComputeRouteCosts(&newRoute1)
	inst.ComputeRouteCosts(&newRoute2)
	return newRoute1, newRoute2
}

// anchorOf returns the client id and leave time to re-time a suffix
// against, given the kept prefix. An empty prefix anchors at the
// depot departing at its earliest window, per SPEC_FULL.md §4.5.1.
func anchorOf(inst *model.ProblemInstance, prefix []model.RouteEntryClient) (int, model.Time) {
	if len(prefix) == 0 {
		return inst.Source, inst.Clients[inst.Source].Earliest
	}
	last := prefix[len(prefix)-1]
	return last.ClientID, last.LeaveTime
}

// opt2Search scans every position-pair exchange between route1 and
// route2 for a feasible, strictly-improving one. With firstImprovement
// it returns as soon as it finds one; otherwise it scans every pair
// and returns the cheapest. found is false when no exchange improves
// on the current pair's combined cost. This accept policy is governed
// by GraspConfig.Opt2SearchFirstImprovement — a different knob from
// LocalSearch.FirstImprovement, which governs the outer route-pair
// scan in opt2LocalSearch.
func opt2Search(inst *model.ProblemInstance, route1, route2 model.RouteEntry, firstImprovement bool) (model.RouteEntry, model.RouteEntry, bool) {
	oldCost := route1.RouteCost() + route2.RouteCost()
	source := inst.Source

	var bestRoute1, bestRoute2 model.RouteEntry
	bestCost := oldCost
	found := false

	for i := 0; i < len(route1.Clients)-1; i++ {
		c1 := route1.Clients[i]
		if c1.ClientID == source {
			continue
		}
		next1 := route1.Clients[i+1]

		for j := 0; j < len(route2.Clients)-1; j++ {
			c2 := route2.Clients[j]
			if c2.ClientID == source {
				continue
			}
			next2 := route2.Clients[j+1]

			if !inst.IsMoveFeasible(c1.ClientID, next2.ClientID, c1.LeaveTime) {
				continue
			}
			if !inst.IsMoveFeasible(c2.ClientID, next1.ClientID, c2.LeaveTime) {
				continue
			}

			newRoute1, newRoute2 := exchangeSubroutes(inst, route1, route2, i, j)
			if newRoute1.Demand > inst.Vehicles[newRoute1.VehicleID].Capacity {
				continue
			}
			if newRoute2.Demand > inst.Vehicles[newRoute2.VehicleID].Capacity {
				continue
			}
			if !tailFeasible(inst, newRoute1) || !tailFeasible(inst, newRoute2) {
				continue
			}

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

// opt2LocalSearch runs opt2Search over every pair of distinct-vehicle
// routes in sol, following ls.FirstImprovement for the route-pair scan
// and firstImprovement for the position-pair scan within each pair.
func opt2LocalSearch(inst *model.ProblemInstance, sol *model.Solution, ls LocalSearch, firstImprovement bool) (*model.Solution, bool) {
	return Iterate(ls, sol.Routes, sol.Routes, func(i int, r1 model.RouteEntry, j int, r2 model.RouteEntry) (*model.Solution, float64, bool) {
		if r1.VehicleID == r2.VehicleID {
			return nil, 0, false
		}
		newRoute1, newRoute2, ok := opt2Search(inst, r1, r2, firstImprovement)
		if !ok {
			return nil, 0, false
		}
		candidate := TransformSolution(sol, newRoute1, newRoute2)
		inst.EvaluateSolution(candidate)
		return candidate, candidate.Value, true
	})
}
