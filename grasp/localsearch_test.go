package grasp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterateBestImprovementPicksLowestCost(t *testing.T) {
	ls := LocalSearch{FirstImprovement: false}
	values1 := []int{1, 2}
	values2 := []int{10, 20}

	best, ok := Iterate(ls, values1, values2, func(i int, a int, j int, b int) (int, float64, bool) {
		return a + b, float64(a + b), true
	})
	require.True(t, ok)
	require.Equal(t, 11, best, "best-improvement keeps the lowest-cost candidate across all pairs")
}

func TestIterateFirstImprovementStopsAtFirstHit(t *testing.T) {
	ls := LocalSearch{FirstImprovement: true}
	values1 := []int{5, 1}
	values2 := []int{100}

	calls := 0
	best, ok := Iterate(ls, values1, values2, func(i int, a int, j int, b int) (int, float64, bool) {
		calls++
		return a, float64(a), true
	})
	require.True(t, ok)
	require.Equal(t, 5, best)
	require.Equal(t, 1, calls, "first-improvement must return after the first candidate")
}

func TestIterateReportsNotFoundWhenSearchNeverAccepts(t *testing.T) {
	ls := LocalSearch{}
	_, ok := Iterate(ls, []int{1}, []int{2}, func(i int, a int, j int, b int) (int, float64, bool) {
		return 0, 0, false
	})
	require.False(t, ok)
}
