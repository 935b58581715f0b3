package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// ProblemInstance is the full VRPTW input: a client set, a travel-time
// matrix, and the vehicle definitions to expand into a flat fleet.
// Constructed once, initialised once via Init, then treated as a
// read-only shared reference for the duration of a run.
type ProblemInstance struct {
	Name              string              `json:"name"`
	Source            int                 `json:"source"`
	DeviationPenalty  Cost                `json:"deviation_penalty" validate:"gte=0"`
	AllowedDeviation  float64             `json:"allowed_deviation" validate:"gte=0"`
	Distances         [][]Time            `json:"distances"`
	VehicleDefinitions []VehicleDefinition `json:"vehicle_definitions"`
	Vehicles          []Vehicle           `json:"-"`
	Clients           []Client            `json:"clients"`

	inited bool
}

// LoadProblemInstance decodes a ProblemInstance from JSON. Mirrors the
// teacher's decode-then-wrap-error idiom used for loading fleet and
// route definitions.
func LoadProblemInstance(r io.Reader) (*ProblemInstance, error) {
	dec := json.NewDecoder(r)
	var inst ProblemInstance
	if err := dec.Decode(&inst); err != nil {
		return nil, fmt.Errorf("decode problem instance: %w", err)
	}
	return &inst, nil
}

// Init expands vehicle definitions into a flat vehicle list with
// sequential ids and assigns client ids equal to their list index.
// Idempotent: a second call is a no-op. When optimizeCost is false,
// every vehicle's FixedCost and VariableCost are forced to 1, so the
// search effectively optimises total distance instead of money.
func (p *ProblemInstance) Init(optimizeCost bool) {
	if p.inited {
		return
	}
	p.initVehicles(optimizeCost)
	p.initClients()
	p.inited = true
}

func (p *ProblemInstance) initVehicles(optimizeCost bool) {
	vehicles := make([]Vehicle, 0)
	id := 0
	for _, def := range p.VehicleDefinitions {
		fixedCost, variableCost := def.FixedCost, def.VariableCost
		if !optimizeCost {
			fixedCost, variableCost = 1, 1
		}
		for i := 0; i < def.Count; i++ {
			vehicles = append(vehicles, Vehicle{
				ID:           id,
				Capacity:     def.Capacity,
				FixedCost:    fixedCost,
				VariableCost: variableCost,
			})
			id++
		}
	}
	p.Vehicles = vehicles
}

func (p *ProblemInstance) initClients() {
	for i := range p.Clients {
		p.Clients[i].ID = i
	}
}

// Validate rejects a non-square distance matrix, an empty client
// list, or an empty vehicle list. Call after Init.
func (p *ProblemInstance) Validate() error {
	n := len(p.Clients)
	for i, row := range p.Distances {
		if len(row) != n {
			return fmt.Errorf("%w: expected %d, got %d on row %d", ErrDistanceMatrixShape, n, len(row), i)
		}
	}
	if len(p.Vehicles) == 0 {
		return ErrNoVehicles
	}
	if len(p.Clients) == 0 {
		return ErrNoClients
	}
	if len(p.Distances) != n {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrDistanceMatrixShape, n, len(p.Distances))
	}
	return nil
}

// IsMoveFeasible is the sole time-feasibility predicate the search
// consults: true iff the vehicle can still arrive at toID before its
// latest window plus the allowed deviation slack.
func (p *ProblemInstance) IsMoveFeasible(fromID, toID int, currentTime Time) bool {
	arrival := currentTime + p.Distances[fromID][toID]
	client := &p.Clients[toID]
	return arrival < client.Latest+p.AllowedDeviation*(client.Latest-client.Earliest)
}

// CreateRouteEntryClient builds the timing record for arriving at
// clientToID via an arc of arcTime, departing currentTime.
func (p *ProblemInstance) CreateRouteEntryClient(arcTime Time, clientToID int, currentTime Time) RouteEntryClient {
	client := &p.Clients[clientToID]
	arriveTime := timeMax(currentTime+arcTime, client.Earliest)
	waitTime := timeMax(0, client.Earliest-currentTime-arcTime)
	leaveTime := arriveTime + client.ServiceTime

	return RouteEntryClient{
		ClientID:   clientToID,
		ArriveTime: arriveTime,
		LeaveTime:  leaveTime,
		WaitTime:   waitTime,
	}
}

// ComputeRouteCosts rederives RouteTime, Demand, RouteFixedCost, and
// RouteVariableCost from route.Clients. Called after every structural
// mutation a local-search operator performs.
func (p *ProblemInstance) ComputeRouteCosts(route *RouteEntry) {
	vehicle := &p.Vehicles[route.VehicleID]

	route.RouteVariableCost = 0
	route.RouteFixedCost = 0
	route.RouteTime = 0
	route.Demand = 0

	if len(route.Clients) == 0 {
		return
	}

	route.RouteFixedCost = vehicle.FixedCost

	prevClientID := route.Clients[0].ClientID
	for _, rc := range route.Clients {
		arc := p.Distances[prevClientID][rc.ClientID]

		route.Demand += p.Clients[rc.ClientID].Demand
		route.RouteTime += arc
		route.RouteVariableCost += arc * vehicle.VariableCost
		prevClientID = rc.ClientID
	}
}

// EvaluateSolution sets sol.Value to the sum of RouteCost() over its
// routes and sol.Distance to the sum of RouteTime.
func (p *ProblemInstance) EvaluateSolution(sol *Solution) {
	var value Cost
	for i := range sol.Routes {
		value += sol.Routes[i].RouteCost()
	}
	sol.Value = value
	sol.Distance = sol.TotalRouteTime()
}

func timeMax(a, b Time) Time {
	if a > b {
		return a
	}
	return b
}
