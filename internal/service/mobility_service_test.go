package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/movr-go/internal/models"
	"github.com/jengzang/movr-go/internal/movement"
	"github.com/jengzang/movr-go/internal/service"
)

func newService() *service.MobilityService {
	return service.NewMobilityService(service.Options{SessionGap: 10, FlowGap: 10, MaxPoints: 100})
}

func ptr(v float64) *float64 { return &v }

func TestSessions_DefaultGap(t *testing.T) {
	resp, err := newService().Sessions(models.SessionsRequest{
		Locations:  []string{"1", "1", "2", "2"},
		Timestamps: []float64{0, 5, 100, 105},
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, resp.Gap)
	assert.Equal(t, []models.Session{
		{Location: "1", Start: 0, End: 5, Duration: 5},
		{Location: "2", Start: 100, End: 105, Duration: 5},
	}, resp.Sessions)
}

func TestSessions_ExplicitGap(t *testing.T) {
	resp, err := newService().Sessions(models.SessionsRequest{
		Locations:  []string{"1", "1"},
		Timestamps: []float64{0, 50},
		Gap:        ptr(60),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Sessions, 1)
}

func TestSessions_Errors(t *testing.T) {
	svc := newService()

	_, err := svc.Sessions(models.SessionsRequest{Locations: []string{"1"}, Timestamps: []float64{}})
	assert.ErrorIs(t, err, movement.ErrShapeMismatch)

	_, err = svc.Sessions(models.SessionsRequest{Locations: []string{"1"}, Timestamps: []float64{0}, Gap: ptr(-1)})
	assert.ErrorIs(t, err, movement.ErrInvalidThreshold)

	big := make([]string, 101)
	_, err = svc.Sessions(models.SessionsRequest{Locations: big, Timestamps: make([]float64, 101)})
	assert.ErrorIs(t, err, service.ErrTooManyPoints)
}

func TestFlows(t *testing.T) {
	resp, err := newService().Flows(models.FlowsRequest{
		Locations: []string{"1", "2", "1"},
		Starts:    []float64{0, 10, 20},
		Ends:      []float64{5, 15, 25},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Edges)
	assert.Equal(t, 2, resp.Total)
	assert.ElementsMatch(t, []movement.Flow[string]{
		{Origin: "1", Destination: "2", Count: 1},
		{Origin: "2", Destination: "1", Count: 1},
	}, resp.Flows)
}

func TestGyration_DefaultWeights(t *testing.T) {
	resp, err := newService().Gyration(models.GyrationRequest{
		Lats: []float64{10, 10, 10},
		Lons: []float64{20, 20, 20},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Points)
	assert.InDelta(t, 0.0, resp.RadiusKm, 1e-3)
}

func TestGyration_InvalidWeight(t *testing.T) {
	_, err := newService().Gyration(models.GyrationRequest{
		Lats:    []float64{10},
		Lons:    []float64{20},
		Weights: []float64{0},
	})
	assert.ErrorIs(t, err, movement.ErrInvalidWeight)
}

func TestProfile(t *testing.T) {
	resp, err := newService().Profile(models.ProfileRequest{
		Locations:  []string{"home", "home", "work", "work", "home", "home", "home"},
		Timestamps: []float64{0, 8, 12, 30, 35, 40, 500},
		SessionGap: ptr(20),
		FlowGap:    ptr(1000),
	})
	require.NoError(t, err)

	// home(0-8) work(12-30) home(35-40) home(500)
	require.Len(t, resp.Sessions, 4)
	assert.ElementsMatch(t, []movement.Flow[string]{
		{Origin: "home", Destination: "work", Count: 1},
		{Origin: "work", Destination: "home", Count: 1},
		{Origin: "home", Destination: "home", Count: 1},
	}, resp.Flows)

	sum := resp.Summary
	assert.Equal(t, 7, sum.ObservationCount)
	assert.Equal(t, 4, sum.SessionCount)
	assert.Equal(t, 2, sum.DistinctLocations)
	assert.Equal(t, 3, sum.TotalFlows)
	assert.Equal(t, 1, sum.SelfLoops)
	assert.Equal(t, "work", sum.TopLocation)
	assert.Equal(t, []models.LocationDwell{
		{Location: "work", Dwell: 18, Sessions: 1},
		{Location: "home", Dwell: 13, Sessions: 3},
	}, sum.DwellByLocation)
	assert.Equal(t, 31.0, sum.Dwell.Total)
	assert.InDelta(t, 1.584962500721156, sum.FlowEntropy, 1e-9)
	assert.InDelta(t, 1.0, sum.FlowEntropyNormalized, 1e-9)
}

func TestProfile_Empty(t *testing.T) {
	resp, err := newService().Profile(models.ProfileRequest{Locations: []string{}, Timestamps: []float64{}})
	require.NoError(t, err)
	assert.Empty(t, resp.Sessions)
	assert.Empty(t, resp.Flows)
	assert.Zero(t, resp.Summary.SessionCount)
	assert.Empty(t, resp.Summary.TopLocation)
}
