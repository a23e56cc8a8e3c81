package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/movr-go/internal/movement"
)

func TestAggregateFlows_Basic(t *testing.T) {
	table, err := movement.AggregateFlows([]int{1, 2, 1}, []float64{0, 10, 20}, []float64{5, 15, 25}, 10)
	require.NoError(t, err)
	assert.Equal(t, movement.FlowTable[int]{
		{Origin: 1, Destination: 2}: 1,
		{Origin: 2, Destination: 1}: 1,
	}, table)
}

// TestAggregateFlows_Directional checks A->B and B->A are separate edges.
func TestAggregateFlows_Directional(t *testing.T) {
	table, err := movement.AggregateFlows(
		[]string{"A", "B", "A", "B", "A"},
		[]float64{0, 10, 20, 30, 40},
		[]float64{5, 15, 25, 35, 45},
		10,
	)
	require.NoError(t, err)
	assert.Equal(t, 2, table[movement.Edge[string]{Origin: "A", Destination: "B"}])
	assert.Equal(t, 2, table[movement.Edge[string]{Origin: "B", Destination: "A"}])
	assert.Equal(t, 4, table.Total())
	assert.ElementsMatch(t, []movement.Flow[string]{
		{Origin: "A", Destination: "B", Count: 2},
		{Origin: "B", Destination: "A", Count: 2},
	}, table.Flows())
}

// TestAggregateFlows_SkipsDisconnected checks a pair beyond the gap is not
// counted and the scan continues from the immediate predecessor.
func TestAggregateFlows_SkipsDisconnected(t *testing.T) {
	table, err := movement.AggregateFlows(
		[]string{"a", "b", "c"},
		[]float64{0, 100, 105},
		[]float64{5, 102, 110},
		10,
	)
	require.NoError(t, err)
	assert.Equal(t, movement.FlowTable[string]{{Origin: "b", Destination: "c"}: 1}, table)
}

func TestAggregateFlows_TooFewSessions(t *testing.T) {
	for _, n := range []int{0, 1} {
		table, err := movement.AggregateFlows(make([]int, n), make([]float64, n), make([]float64, n), 10)
		require.NoError(t, err)
		assert.Empty(t, table)
		assert.Empty(t, table.Flows())
		assert.Zero(t, table.Total())
	}
}

func TestAggregateFlows_Errors(t *testing.T) {
	_, err := movement.AggregateFlows([]int{1, 2}, []float64{0, 1}, []float64{0}, 10)
	assert.ErrorIs(t, err, movement.ErrShapeMismatch)

	_, err = movement.AggregateFlows([]int{1, 2}, []float64{0}, []float64{0, 1}, 10)
	assert.ErrorIs(t, err, movement.ErrShapeMismatch)

	_, err = movement.AggregateFlows([]int{1, 2}, []float64{0, 1}, []float64{0, 1}, -5)
	assert.ErrorIs(t, err, movement.ErrInvalidThreshold)
}

// TestAggregateSessionFlows_Pipeline runs compression then aggregation.
func TestAggregateSessionFlows_Pipeline(t *testing.T) {
	sessions, err := movement.CompressSessions(
		[]string{"home", "home", "cafe", "work", "work", "home"},
		[]float64{0, 60, 300, 900, 1200, 5000},
		600,
	)
	require.NoError(t, err)
	require.Len(t, sessions, 4)

	table, err := movement.AggregateSessionFlows(sessions, 600)
	require.NoError(t, err)
	assert.Equal(t, movement.FlowTable[string]{
		{Origin: "home", Destination: "cafe"}: 1,
		{Origin: "cafe", Destination: "work"}: 1,
	}, table)
}
