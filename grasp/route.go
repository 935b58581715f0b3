package grasp

import "morproj/model"

// GraspRoute is the per-vehicle incremental builder the constructive
// phase grows one move at a time. Update appends the next client and
// re-derives every time/capacity field from the instance; nothing
// here is retroactively recomputed from scratch like
// ProblemInstance.ComputeRouteCosts does for a materialised RouteEntry.
type GraspRoute struct {
	VehicleID       int
	CurrentClientID int
	CurrentTime     model.Time
	RouteTime       model.Time
	CapacityLeft    float64
	Route           []model.RouteEntryClient
}

// GraspRouteMove is a candidate move produced during construction:
// assign targetClientID to vehicleID at cost.
type GraspRouteMove struct {
	VehicleID      int
	TargetClientID int
	Cost           float64
}

// NewGraspRoute starts a fresh route at the depot for the given
// vehicle.
func NewGraspRoute(vehicle model.Vehicle, source int) *GraspRoute {
	return &GraspRoute{
		VehicleID:       vehicle.ID,
		CurrentClientID: source,
		CapacityLeft:    vehicle.Capacity,
	}
}

// Update appends targetClientID as the route's next stop: computes the
// arc time from the current client, derives the RouteEntryClient via
// the instance, and advances CurrentClientID/CurrentTime/RouteTime/
// CapacityLeft accordingly.
func (g *GraspRoute) Update(targetClientID int, instance *model.ProblemInstance) {
	arc := instance.Distances[g.CurrentClientID][targetClientID]
	rec := instance.CreateRouteEntryClient(arc, targetClientID, g.CurrentTime)

	g.Route = append(g.Route, rec)
	g.RouteTime += arc
	g.CapacityLeft -= instance.Clients[targetClientID].Demand
	g.CurrentTime = rec.LeaveTime
	g.CurrentClientID = targetClientID
}
