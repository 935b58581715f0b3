package grasp

import (
	"math/rand"
	"sort"

	"morproj/config"
	"morproj/model"
)

// Grasp is bound to one immutable ProblemInstance and drives both the
// constructive phase (BuildSolution) and the local-search phase
// (LocalSearch) for a single worker. Instance and Config are read-only
// for the lifetime of a Grasp; RNG is owned exclusively by this
// worker and must never be shared with another goroutine.
type Grasp struct {
	Instance *model.ProblemInstance
	Config   config.GraspConfig
	RNG      *rand.Rand
}

// New binds a Grasp to an already-initialised instance.
func New(instance *model.ProblemInstance, cfg config.GraspConfig, rng *rand.Rand) *Grasp {
	return &Grasp{Instance: instance, Config: cfg, RNG: rng}
}

// BuildSolution runs the randomised-greedy constructive phase: grows
// one GraspRoute per vehicle move-by-move until every client is
// routed or no feasible move remains, in which case it returns
// ErrInfeasibleConstruction.
func (g *Grasp) BuildSolution() (*model.Solution, error) {
	inst := g.Instance
	source := inst.Source
	n := len(inst.Clients)

	routes := make([]*GraspRoute, len(inst.Vehicles))
	for i, v := range inst.Vehicles {
		r := NewGraspRoute(v, source)
		r.Update(source, inst)
		routes[i] = r
	}

	unassigned := make([]bool, n)
	remaining := 0
	for i := 0; i < n; i++ {
		if i == source {
			continue
		}
		unassigned[i] = true
		remaining++
	}

	for remaining > 0 {
		movePool := g.possibleMoves(routes, unassigned)
		if len(movePool) == 0 {
			return nil, ErrInfeasibleConstruction
		}

		sort.Slice(movePool, func(i, j int) bool { return movePool[i].Cost < movePool[j].Cost })
		costs := moveCosts(movePool)
		chosen := AlphaRCLChoose(g.RNG, movePool, costs, g.Config.RCLAlpha, g.Config.RCLMinSize)

		unassigned[chosen.TargetClientID] = false
		remaining--
		routes[chosen.VehicleID].Update(chosen.TargetClientID, inst)
	}

	solRoutes := make([]model.RouteEntry, 0, len(routes))
	for _, r := range routes {
		if len(r.Route) < 2 {
			continue
		}
		r.Update(source, inst)
		vehicle := inst.Vehicles[r.VehicleID]
		solRoutes = append(solRoutes, model.RouteEntry{
			VehicleID:         r.VehicleID,
			Clients:           r.Route,
			RouteFixedCost:    vehicle.FixedCost,
			RouteTime:         r.RouteTime,
			RouteVariableCost: r.RouteTime * vehicle.VariableCost,
			Demand:            vehicle.Capacity - r.CapacityLeft,
		})
	}

	sol := &model.Solution{Routes: solRoutes}
	inst.EvaluateSolution(sol)
	sol.ConstructionValue = sol.Value
	return sol, nil
}

// possibleMoves enumerates, for every active route, the feasible
// candidate moves to still-unassigned clients, applies the
// per-vehicle alpha-bounded frontier cut, and returns the pooled
// result across all vehicles.
func (g *Grasp) possibleMoves(routes []*GraspRoute, unassigned []bool) []GraspRouteMove {
	inst := g.Instance
	var pool []GraspRouteMove

	for _, r := range routes {
		var candidates []GraspRouteMove
		for cid, free := range unassigned {
			if !free {
				continue
			}
			client := inst.Clients[cid]
			if client.Demand > r.CapacityLeft {
				continue
			}
			arc := inst.Distances[r.CurrentClientID][cid]
			wait := TimeMax(0, client.Earliest-(r.CurrentTime+arc))
			if wait > g.Config.MaxWaitTime {
				continue
			}
			if !inst.IsMoveFeasible(r.CurrentClientID, cid, r.CurrentTime) {
				continue
			}
			cost := moveCost(g.Config, inst, inst.Vehicles[r.VehicleID], r.CurrentClientID, cid, r.CurrentTime)
			candidates = append(candidates, GraspRouteMove{VehicleID: r.VehicleID, TargetClientID: cid, Cost: cost})
		}
		if len(candidates) == 0 {
			continue
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].Cost < candidates[j].Cost })
		costs := moveCosts(candidates)
		k := AlphaMaxIndex(costs, g.Config.MovesPerVehicleAlpha) + 1
		if g.Config.MovesPerVehicleMinSize > k {
			k = g.Config.MovesPerVehicleMinSize
		}
		if k > len(candidates) {
			k = len(candidates)
		}
		pool = append(pool, candidates[:k]...)
	}
	return pool
}

// moveCost computes §4.3.1's weighted move cost for assigning
// targetID to vehicle, currently sitting at currentClientID at
// currentTime.
func moveCost(cfg config.GraspConfig, inst *model.ProblemInstance, vehicle model.Vehicle, currentClientID, targetID int, currentTime model.Time) float64 {
	client := inst.Clients[targetID]
	arc := inst.Distances[currentClientID][targetID]
	arrival := TimeMax(currentTime+arc, client.Earliest)
	wait := TimeMax(0, client.Earliest-currentTime-arc)
	closeProximity := TimeMax(0, client.Latest-arrival)
	overtime := TimeMax(0, arrival-client.Latest)

	cost := cfg.DistanceWeight*arc*vehicle.VariableCost +
		cfg.TimeWeight*closeProximity +
		cfg.WaitTimeWeight*wait +
		inst.DeviationPenalty*overtime

	if currentClientID == inst.Source {
		cost += cfg.NewVehiclePenaltyWeight * vehicle.FixedCost
	}
	return cost
}

func moveCosts(moves []GraspRouteMove) []float64 {
	costs := make([]float64, len(moves))
	for i, m := range moves {
		costs[i] = m.Cost
	}
	return costs
}
