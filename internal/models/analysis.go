package models

import (
	"github.com/jengzang/movr-go/internal/movement"
	"github.com/jengzang/movr-go/internal/stats"
)

// SessionsRequest is the body of POST /api/v1/sessions.
// Locations and Timestamps are parallel arrays in any order.
type SessionsRequest struct {
	Locations  []string  `json:"locations" binding:"required"`
	Timestamps []float64 `json:"timestamps" binding:"required"`
	Gap        *float64  `json:"gap,omitempty"` // seconds, server default when omitted
}

// Session is a compressed stay as returned by the API.
type Session struct {
	Location string  `json:"location"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"` // seconds
}

// SessionsResponse 会话压缩结果
type SessionsResponse struct {
	Gap      float64   `json:"gap"`
	Sessions []Session `json:"sessions"`
}

// FlowsRequest is the body of POST /api/v1/flows. The arrays describe sessions
// already in time order.
type FlowsRequest struct {
	Locations []string  `json:"locations" binding:"required"`
	Starts    []float64 `json:"starts" binding:"required"`
	Ends      []float64 `json:"ends" binding:"required"`
	Gap       *float64  `json:"gap,omitempty"`
}

// FlowsResponse lists directed edges in no particular order.
type FlowsResponse struct {
	Gap   float64                 `json:"gap"`
	Flows []movement.Flow[string] `json:"flows"`
	Edges int                     `json:"edges"`
	Total int                     `json:"total"`
}

// GyrationRequest is the body of POST /api/v1/gyration. Weights default to 1.
type GyrationRequest struct {
	Lats    []float64 `json:"lats" binding:"required"`
	Lons    []float64 `json:"lons" binding:"required"`
	Weights []float64 `json:"weights,omitempty"`
}

// GyrationResponse 回转半径
type GyrationResponse struct {
	RadiusKm float64 `json:"radiusKm"`
	Points   int     `json:"points"`
}

// ProfileRequest is the body of POST /api/v1/profile: a raw trace that is
// compressed and then aggregated into flows.
type ProfileRequest struct {
	Locations  []string  `json:"locations" binding:"required"`
	Timestamps []float64 `json:"timestamps" binding:"required"`
	SessionGap *float64  `json:"sessionGap,omitempty"`
	FlowGap    *float64  `json:"flowGap,omitempty"`
}

// LocationDwell is the total time spent at one location.
type LocationDwell struct {
	Location string  `json:"location"`
	Dwell    float64 `json:"dwell"` // seconds
	Sessions int     `json:"sessions"`
}

// ProfileSummary condenses a compressed trace.
type ProfileSummary struct {
	ObservationCount  int             `json:"observationCount"`
	SessionCount      int             `json:"sessionCount"`
	DistinctLocations int             `json:"distinctLocations"`
	Dwell             stats.Summary   `json:"dwell"`
	DwellByLocation   []LocationDwell `json:"dwellByLocation"` // longest first
	TopLocation       string          `json:"topLocation,omitempty"`

	TotalFlows            int     `json:"totalFlows"`
	FlowEntropy           float64 `json:"flowEntropy"` // bits
	FlowEntropyNormalized float64 `json:"flowEntropyNormalized"`
	SelfLoops             int     `json:"selfLoops"`
}

// ProfileResponse 轨迹画像
type ProfileResponse struct {
	SessionGap float64                 `json:"sessionGap"`
	FlowGap    float64                 `json:"flowGap"`
	Sessions   []Session               `json:"sessions"`
	Flows      []movement.Flow[string] `json:"flows"`
	Summary    ProfileSummary          `json:"summary"`
}
