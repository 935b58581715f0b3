package grasp

import "morproj/model"

// trivialInstance mirrors SPEC_FULL.md §8 scenario 1: one vehicle,
// one client, 3 units each way (a 6-unit round trip).
func trivialInstance() *model.ProblemInstance {
	inst := &model.ProblemInstance{
		Name:   "trivial",
		Source: 0,
		Distances: [][]model.Time{
			{0, 3},
			{3, 0},
		},
		VehicleDefinitions: []model.VehicleDefinition{
			{Count: 1, Capacity: 10, FixedCost: 1, VariableCost: 1},
		},
		Clients: []model.Client{
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 5, Earliest: 0, Latest: 1000},
		},
	}
	inst.Init(true)
	return inst
}

// capacitySplitInstance mirrors scenario 2: two vehicles of capacity
// 10, three demand-5 clients that together exceed one vehicle's
// capacity (at most two fit on a vehicle).
func capacitySplitInstance() *model.ProblemInstance {
	dist := make([][]model.Time, 4)
	for i := range dist {
		dist[i] = make([]model.Time, 4)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = 10
			}
		}
	}
	inst := &model.ProblemInstance{
		Name:      "capacity-split",
		Source:    0,
		Distances: dist,
		VehicleDefinitions: []model.VehicleDefinition{
			{Count: 2, Capacity: 10, FixedCost: 1, VariableCost: 1},
		},
		Clients: []model.Client{
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 5, Earliest: 0, Latest: 1000},
			{Demand: 5, Earliest: 0, Latest: 1000},
			{Demand: 5, Earliest: 0, Latest: 1000},
		},
	}
	inst.Init(true)
	return inst
}

// timeWindowOrderingInstance mirrors scenario 3: A (window [0,5]) and
// B (window [20,25]) are each 1 time unit from the depot and from each
// other; visiting B first makes the later trip to A infeasible.
func timeWindowOrderingInstance() *model.ProblemInstance {
	inst := &model.ProblemInstance{
		Name:   "time-window-ordering",
		Source: 0,
		Distances: [][]model.Time{
			{0, 1, 1},
			{1, 0, 1},
			{1, 1, 0},
		},
		VehicleDefinitions: []model.VehicleDefinition{
			{Count: 1, Capacity: 100, FixedCost: 1, VariableCost: 1},
		},
		Clients: []model.Client{
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 0, Earliest: 0, Latest: 5},
			{Demand: 0, Earliest: 20, Latest: 25},
		},
	}
	inst.Init(true)
	return inst
}

// infeasibleInstance mirrors scenario 4: the single vehicle's capacity
// is smaller than the single client's demand, so no move is ever
// feasible.
func infeasibleInstance() *model.ProblemInstance {
	inst := &model.ProblemInstance{
		Name:   "infeasible",
		Source: 0,
		Distances: [][]model.Time{
			{0, 1},
			{1, 0},
		},
		VehicleDefinitions: []model.VehicleDefinition{
			{Count: 1, Capacity: 1, FixedCost: 1, VariableCost: 1},
		},
		Clients: []model.Client{
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 2, Earliest: 0, Latest: 1000},
		},
	}
	inst.Init(true)
	return inst
}
