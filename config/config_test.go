package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsZeroIters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iters = 0
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsZeroThreads(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumberOfThreads = 0
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsOutOfRangeAlpha(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GraspConfig.RCLAlpha = 1.5
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsZeroSequenceLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GraspConfig.InsertionSearchSequenceLength = 0
	require.Error(t, cfg.Validate())
}

// TestGraspConfigJSONRoundTrip locks in that the three distinct
// first/best-improvement policy flags (route-pair, opt2 position-pair,
// insertion position-pair) each survive a decode-then-encode cycle
// independently, rather than collapsing onto one shared value.
func TestGraspConfigJSONRoundTrip(t *testing.T) {
	cfg := DefaultGraspConfig()
	cfg.LocalSearchFirstImprovement = false
	cfg.Opt2SearchFirstImprovement = true
	cfg.InsertionSearchFirstImprovement = false

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var decoded GraspConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, cfg, decoded)
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InstanceName = "trivial"
	cfg.Seed = 42
	cfg.ReportEvery = 10

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, cfg.GraspConfig, decoded.GraspConfig)
	require.Equal(t, cfg.Iters, decoded.Iters)
	require.Equal(t, cfg.NumberOfThreads, decoded.NumberOfThreads)
	require.Equal(t, cfg.InstanceName, decoded.InstanceName)
	require.Equal(t, cfg.Seed, decoded.Seed)
	require.Equal(t, cfg.ReportEvery, decoded.ReportEvery)
}
