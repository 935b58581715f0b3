package logx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetLevelGating(t *testing.T) {
	SetLevel("error")
	require.False(t, enabled(LevelDebug))
	require.False(t, enabled(LevelInfo))
	require.True(t, enabled(LevelError))

	SetLevel("debug")
	require.True(t, enabled(LevelDebug))
	require.True(t, enabled(LevelInfo))
	require.True(t, enabled(LevelError))

	SetLevel("info")
}

func TestSetLevelIgnoresUnknownName(t *testing.T) {
	SetLevel("info")
	SetLevel("verbose")
	require.True(t, enabled(LevelInfo))
}
