// Package model holds the VRPTW problem data: clients, vehicles, the
// travel-time matrix, and the derived route/solution structures the
// search mutates.
package model

// Time is a point in (or duration of) simulated time, always relative
// to the start of a route.
type Time = float64

// Cost is a monetary or distance-proportional objective component.
type Cost = float64

// Client is a single stop to serve: the depot is client 0 by
// convention and carries Demand 0.
type Client struct {
	ID          int     `json:"-"`
	Demand      float64 `json:"demand"`
	ServiceTime Time    `json:"service_time"`
	Earliest    Time    `json:"earliest"`
	Latest      Time    `json:"latest"`
	// Pos is pass-through display metadata; the search never reads it.
	Pos [2]float64 `json:"pos"`
}

// Vehicle is a single routable unit, expanded from a VehicleDefinition
// at instance initialisation time. Id is its index in the flat
// vehicle list.
type Vehicle struct {
	ID           int     `json:"id"`
	Capacity     float64 `json:"capacity"`
	FixedCost    Cost    `json:"fixed_cost"`
	VariableCost Cost    `json:"variable_cost"`
}

// VehicleDefinition declares a homogeneous batch of vehicles; Count
// vehicles sharing Capacity/FixedCost/VariableCost are created from
// each definition during Init.
type VehicleDefinition struct {
	Count        int     `json:"count" validate:"min=0"`
	Capacity     float64 `json:"capacity" validate:"gt=0"`
	FixedCost    Cost    `json:"fixed_cost" validate:"gte=0"`
	VariableCost Cost    `json:"variable_cost" validate:"gte=0"`
}

// RouteEntryClient records the timing of a single client visit within
// a route: when the vehicle arrived, when it left, and how long it
// idled waiting for the client's window to open.
type RouteEntryClient struct {
	ClientID   int  `json:"client_id"`
	ArriveTime Time `json:"arrive_time"`
	LeaveTime  Time `json:"leave_time"`
	WaitTime   Time `json:"wait_time"`
}
