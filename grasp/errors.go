package grasp

import "errors"

// ErrInfeasibleConstruction is returned by BuildSolution when the move
// pool is empty before every client has been routed. Non-fatal: the
// runner counts these and continues with the next iteration.
var ErrInfeasibleConstruction = errors.New("grasp: no feasible move available before all clients were routed")
