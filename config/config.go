// Package config holds the JSON-decodable run configuration: the
// GRASP tuning parameters and the outer iteration/concurrency
// controls, validated with struct tags before a run starts.
package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"morproj/model"
)

// GraspConfig tunes the constructive builder and the local-search
// operators. Field names and defaults mirror the reference tuning;
// see SPEC_FULL.md §6 for the effect of each option.
type GraspConfig struct {
	OptimizeCost bool `json:"optimize_cost"`

	TimeWeight     float64 `json:"time_weight" validate:"gte=0"`
	DistanceWeight float64 `json:"distance_weight" validate:"gte=0"`
	WaitTimeWeight float64 `json:"wait_time_weight" validate:"gte=0"`

	// NewVehiclePenaltyWeight is the depot-start commissioning
	// multiplier (open question resolved in SPEC_FULL.md §9).
	NewVehiclePenaltyWeight float64 `json:"new_vehicle_penalty_weight" validate:"gte=0"`

	RCLAlpha   float64 `json:"rcl_alpha" validate:"gte=0,lte=1"`
	RCLMinSize int     `json:"rcl_min_size" validate:"gte=1"`

	MovesPerVehicleAlpha   float64 `json:"moves_per_vehicle_alpha" validate:"gte=0,lte=1"`
	MovesPerVehicleMinSize int     `json:"moves_per_vehicle_min_size" validate:"gte=1"`

	MaxWaitTime float64 `json:"max_wait_time" validate:"gte=0"`

	LocalSearchIters           int  `json:"local_search_iters" validate:"gte=0"`
	LocalSearchFirstImprovement bool `json:"local_search_first_improvement"`

	Opt2SearchEnabled          bool `json:"opt2_search_enabled"`
	Opt2SearchFirstImprovement bool `json:"opt2_search_first_improvement"`

	InsertionSearchEnabled          bool `json:"insertion_search_enabled"`
	InsertionSearchFirstImprovement bool `json:"insertion_search_first_improvement"`
	InsertionSearchSequenceLength   int  `json:"insertion_search_sequence_length" validate:"gte=1"`
}

// DefaultGraspConfig mirrors the reference implementation's tuning
// defaults.
func DefaultGraspConfig() GraspConfig {
	return GraspConfig{
		OptimizeCost:                    true,
		TimeWeight:                      0.1,
		DistanceWeight:                  0.7,
		WaitTimeWeight:                  0.2,
		NewVehiclePenaltyWeight:         20,
		RCLAlpha:                        0.3,
		RCLMinSize:                      1,
		MovesPerVehicleAlpha:            0.05,
		MovesPerVehicleMinSize:          2,
		MaxWaitTime:                     10000,
		LocalSearchIters:                100,
		LocalSearchFirstImprovement:     true,
		Opt2SearchEnabled:               true,
		Opt2SearchFirstImprovement:      false,
		InsertionSearchEnabled:          true,
		InsertionSearchFirstImprovement: true,
		InsertionSearchSequenceLength:   1,
	}
}

// Config is the top-level run configuration: how many iterations each
// worker runs, how many workers to spawn, the GRASP tuning, and the
// ambient runner controls (seed, progress cadence).
type Config struct {
	Iters           int `json:"iters" validate:"gt=0"`
	NumberOfThreads int `json:"number_of_threads" validate:"gt=0"`

	// InstanceName and Instance mirror the reference implementation's
	// Config, which embeds the problem instance directly rather than
	// pointing at a second file.
	InstanceName string                 `json:"instance_name"`
	Instance     *model.ProblemInstance `json:"instance"`

	GraspConfig GraspConfig `json:"grasp_config" validate:"required"`

	// Seed is the base RNG seed; 0 derives one from wall-clock time at
	// run start. Ambient addition answering SPEC_FULL.md's §9
	// randomness note.
	Seed int64 `json:"seed"`

	// ReportEvery is the worker progress log cadence, in iterations; 0
	// disables periodic reporting (new-best lines still fire).
	ReportEvery int `json:"report_every" validate:"gte=0"`
}

// DefaultConfig mirrors the reference implementation's Config
// defaults (iters: 10, number_of_threads: 1) plus the default GRASP
// tuning.
func DefaultConfig() Config {
	return Config{
		Iters:           10,
		NumberOfThreads: 1,
		GraspConfig:     DefaultGraspConfig(),
	}
}

// LoadConfig decodes a Config from JSON, mirroring the teacher's
// decode-then-wrap-error idiom used for loading fleet and route
// definitions.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := json.NewDecoder(r)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks every struct tag on Config and its embedded
// GraspConfig, returning a descriptive, field-qualified error that
// lists each violation.
func (c Config) Validate() error {
	return validate.Struct(c)
}
