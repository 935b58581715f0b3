package model

// RouteEntry is the materialised route assigned to a single vehicle:
// an ordered client sequence (depot-framed when non-empty) plus the
// costs derived from it by ComputeRouteCosts.
type RouteEntry struct {
	VehicleID         int                `json:"vehicle_id"`
	Clients           []RouteEntryClient `json:"clients"`
	RouteTime         Time               `json:"route_time"`
	RouteFixedCost    Cost               `json:"route_fixed_cost"`
	RouteVariableCost Cost               `json:"route_variable_cost"`
	Demand            float64            `json:"demand"`
}

// RouteCost is the total cost this route contributes to a solution's
// objective value.
func (r *RouteEntry) RouteCost() Cost {
	return r.RouteFixedCost + r.RouteVariableCost
}

// Clone returns a deep copy so callers can mutate the result without
// aliasing the original's Clients slice.
func (r *RouteEntry) Clone() RouteEntry {
	clients := make([]RouteEntryClient, len(r.Clients))
	copy(clients, r.Clients)
	cp := *r
	cp.Clients = clients
	return cp
}
