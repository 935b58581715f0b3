package grasp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"morproj/model"
)

// relocationInstance sets up a route2 client (Q) that sits much closer
// to route1's client (P) than to its own routemates, so relocating it
// into route1 is cheaper overall despite the detour it adds there.
func relocationInstance() *model.ProblemInstance {
	inst := &model.ProblemInstance{
		Name:   "relocation",
		Source: 0,
		Distances: [][]model.Time{
			{0, 1, 10, 1},
			{1, 0, 1, 10},
			{10, 1, 0, 10},
			{1, 10, 10, 0},
		},
		VehicleDefinitions: []model.VehicleDefinition{
			{Count: 2, Capacity: 100, FixedCost: 0, VariableCost: 1},
		},
		Clients: []model.Client{
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 0, Earliest: 0, Latest: 1000},
		},
	}
	inst.Init(true)
	return inst
}

func TestInsertionSearchRelocatesClient(t *testing.T) {
	inst := relocationInstance()
	route1 := buildRoute(inst, 0, []int{0, 1, 0})
	route2 := buildRoute(inst, 1, []int{0, 2, 3, 0})
	oldTotal := route1.RouteCost() + route2.RouteCost()

	newRoute1, newRoute2, ok := insertionSearch(inst, route1, route2, 1, true)
	require.True(t, ok)
	require.Less(t, newRoute1.RouteCost()+newRoute2.RouteCost(), oldTotal)

	require.Equal(t, []int{0, 1, 2, 0}, clientIDsOf(newRoute1.Clients))
	require.Equal(t, []int{0, 3, 0}, clientIDsOf(newRoute2.Clients))
}

// farApartInstance has two clients that are cheap to reach from the
// depot but very expensive to reach from one another, so merging them
// onto a single route is never an improvement.
func farApartInstance() *model.ProblemInstance {
	inst := &model.ProblemInstance{
		Name:   "far-apart",
		Source: 0,
		Distances: [][]model.Time{
			{0, 1, 1},
			{1, 0, 100},
			{1, 100, 0},
		},
		VehicleDefinitions: []model.VehicleDefinition{
			{Count: 2, Capacity: 100, FixedCost: 0, VariableCost: 1},
		},
		Clients: []model.Client{
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 0, Earliest: 0, Latest: 1000},
		},
	}
	inst.Init(true)
	return inst
}

func TestInsertionSearchReportsNoImprovementWhenNothingHelps(t *testing.T) {
	inst := farApartInstance()
	route1 := buildRoute(inst, 0, []int{0, 1, 0})
	route2 := buildRoute(inst, 1, []int{0, 2, 0})

	_, _, ok := insertionSearch(inst, route1, route2, 1, true)
	require.False(t, ok)

	_, _, ok = insertionSearch(inst, route1, route2, 1, false)
	require.False(t, ok)
}

func TestInsertionLocalSearchAppliesRelocation(t *testing.T) {
	inst := relocationInstance()
	sol := &model.Solution{
		Routes: []model.RouteEntry{
			buildRoute(inst, 0, []int{0, 1, 0}),
			buildRoute(inst, 1, []int{0, 2, 3, 0}),
		},
	}
	inst.EvaluateSolution(sol)

	next, ok := insertionLocalSearch(inst, sol, LocalSearch{FirstImprovement: true}, 1, true)
	require.True(t, ok)
	require.Less(t, next.Value, sol.Value)
}

// insertionPolicyInstance sets up route1 depot->A->B->depot and route2
// depot->D->depot with two distinct insert positions for D into
// route1, tuned so the first one insertionSearch visits (after A) is
// only a mild improvement while the second (after B) is strictly
// cheaper.
func insertionPolicyInstance() *model.ProblemInstance {
	inst := &model.ProblemInstance{
		Name:   "insertion-policy",
		Source: 0,
		Distances: [][]model.Time{
			{0, 1, 1, 1},
			{1, 0, 1, 1.5},
			{1, 1, 0, 1},
			{1, 1.5, 1, 0},
		},
		VehicleDefinitions: []model.VehicleDefinition{
			{Count: 2, Capacity: 100, FixedCost: 0, VariableCost: 1},
		},
		Clients: []model.Client{
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 0, Earliest: 0, Latest: 1000},
			{Demand: 0, Earliest: 0, Latest: 1000},
		},
	}
	inst.Init(true)
	return inst
}

func TestInsertionSearchPolicyFirstVsBestImprovement(t *testing.T) {
	inst := insertionPolicyInstance()
	route1 := buildRoute(inst, 0, []int{0, 1, 2, 0})
	route2 := buildRoute(inst, 1, []int{0, 3, 0})
	oldTotal := route1.RouteCost() + route2.RouteCost()
	require.Equal(t, 5.0, oldTotal)

	firstRoute1, firstRoute2, ok := insertionSearch(inst, route1, route2, 1, true)
	require.True(t, ok)
	firstCost := firstRoute1.RouteCost() + firstRoute2.RouteCost()
	require.Equal(t, []int{0, 1, 3, 2, 0}, clientIDsOf(firstRoute1.Clients))
	require.Equal(t, 4.5, firstCost)

	bestRoute1, bestRoute2, ok := insertionSearch(inst, route1, route2, 1, false)
	require.True(t, ok)
	bestCost := bestRoute1.RouteCost() + bestRoute2.RouteCost()
	require.Equal(t, []int{0, 1, 2, 3, 0}, clientIDsOf(bestRoute1.Clients))
	require.Equal(t, 4.0, bestCost)

	require.Less(t, bestCost, firstCost)
}
