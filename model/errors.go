package model

import "errors"

// Validation errors surfaced by ProblemInstance.Validate.
var (
	ErrDistanceMatrixShape = errors.New("model: distance matrix dimensions do not match client count")
	ErrNoVehicles          = errors.New("model: instance must declare at least one vehicle")
	ErrNoClients           = errors.New("model: instance must declare at least one client")
)
