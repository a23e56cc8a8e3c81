// Package movement compresses location traces into stay sessions, counts
// directed flows between sessions, and measures spatial dispersion.
package movement

import (
	"fmt"
	"math"
)

// Observation is a single location ping.
type Observation[L comparable] struct {
	Location  L       `json:"location"`
	Timestamp float64 `json:"timestamp"` // seconds
}

// Session is a contiguous stay at one location.
type Session[L comparable] struct {
	Location L       `json:"location"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
}

// Duration returns End - Start in seconds.
func (s Session[L]) Duration() float64 {
	return s.End - s.Start
}

// CompressSessions merges time-ordered observations at the same location into
// sessions. Input order is irrelevant; observations are sorted by timestamp
// (stable) before merging.
//
// An observation extends the current session when its location matches and it
// falls within gap seconds of the session's running end time. Because the
// comparison uses the running end, a slowly drifting run of pings can yield a
// session much longer than gap; the total span is not capped.
//
// Two consecutive sessions may share a location when the pings between them
// are more than gap seconds apart.
//
// An empty input yields an empty, non-nil result.
func CompressSessions[L comparable](locations []L, timestamps []float64, gap float64) ([]Session[L], error) {
	if len(locations) != len(timestamps) {
		return nil, fmt.Errorf("%w: %d locations, %d timestamps", ErrShapeMismatch, len(locations), len(timestamps))
	}
	if err := validateGap(gap); err != nil {
		return nil, err
	}

	sessions := make([]Session[L], 0)
	for _, idx := range OrderFloat64s(timestamps) {
		loc, t := locations[idx], timestamps[idx]

		if n := len(sessions); n > 0 {
			cur := &sessions[n-1]
			if cur.Location == loc && t-cur.End <= gap {
				cur.End = t
				continue
			}
		}
		sessions = append(sessions, Session[L]{Location: loc, Start: t, End: t})
	}

	return sessions, nil
}

// Compress is CompressSessions over a slice of observations.
func Compress[L comparable](observations []Observation[L], gap float64) ([]Session[L], error) {
	locations := make([]L, len(observations))
	timestamps := make([]float64, len(observations))
	for i, o := range observations {
		locations[i] = o.Location
		timestamps[i] = o.Timestamp
	}
	return CompressSessions(locations, timestamps, gap)
}

func validateGap(gap float64) error {
	if math.IsNaN(gap) || gap < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, gap)
	}
	return nil
}
