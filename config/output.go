package config

import (
	"morproj/model"
)

// Output is the JSON envelope the CLI writes: the solved Solution
// alongside the instance it was solved against and a per-invocation
// run identifier, mirroring the reference project's Output shape.
type Output struct {
	RunID    string            `json:"run_id"`
	Name     string            `json:"name"`
	Solution *model.Solution   `json:"solution"`
	Instance *model.ProblemInstance `json:"instance"`
}
