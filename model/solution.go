package model

import "math"

// Solution is a complete assignment of clients to vehicle routes,
// together with its evaluated objective.
type Solution struct {
	Routes            []RouteEntry `json:"routes"`
	Value             Cost         `json:"value"`
	ConstructionValue Cost         `json:"construction_value"`
	Distance          Time         `json:"distance"`
	IterFound         int          `json:"iter_found"`
}

// NewSolution returns a Solution whose Value is set to a sentinel
// larger than any real objective, so any evaluated solution compares
// as strictly better.
func NewSolution() *Solution {
	return &Solution{Value: math.MaxFloat64}
}

// TotalRouteTime sums RouteTime across all routes.
func (s *Solution) TotalRouteTime() Time {
	var total Time
	for _, r := range s.Routes {
		total += r.RouteTime
	}
	return total
}

// Clone returns a deep copy of the solution, safe to mutate
// independently of the original.
func (s *Solution) Clone() *Solution {
	routes := make([]RouteEntry, len(s.Routes))
	for i, r := range s.Routes {
		routes[i] = r.Clone()
	}
	cp := *s
	cp.Routes = routes
	return &cp
}
