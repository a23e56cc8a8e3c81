package movement

import "fmt"

// Edge is a directed transition key. (A, B) and (B, A) are distinct edges.
type Edge[L comparable] struct {
	Origin      L `json:"origin"`
	Destination L `json:"destination"`
}

// Flow is one edge with its transition count.
type Flow[L comparable] struct {
	Origin      L   `json:"origin"`
	Destination L   `json:"destination"`
	Count       int `json:"count"`
}

// FlowTable maps directed edges to transition counts.
type FlowTable[L comparable] map[Edge[L]]int

// Flows flattens the table into records. Order is unspecified.
func (t FlowTable[L]) Flows() []Flow[L] {
	flows := make([]Flow[L], 0, len(t))
	for e, n := range t {
		flows = append(flows, Flow[L]{Origin: e.Origin, Destination: e.Destination, Count: n})
	}
	return flows
}

// Total returns the sum of all transition counts.
func (t FlowTable[L]) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// AggregateFlows counts transitions between consecutive sessions. The input
// must already be in time order; it is not re-sorted.
//
// Session i-1 -> i is counted when starts[i] - ends[i-1] <= gap. A pair that
// fails the test is skipped, and scanning resumes with session i as the new
// predecessor. Fewer than two sessions yield an empty table.
func AggregateFlows[L comparable](locations []L, starts, ends []float64, gap float64) (FlowTable[L], error) {
	if len(locations) != len(starts) || len(locations) != len(ends) {
		return nil, fmt.Errorf("%w: %d locations, %d starts, %d ends",
			ErrShapeMismatch, len(locations), len(starts), len(ends))
	}
	if err := validateGap(gap); err != nil {
		return nil, err
	}

	table := make(FlowTable[L])
	for i := 1; i < len(locations); i++ {
		if starts[i]-ends[i-1] <= gap {
			table[Edge[L]{Origin: locations[i-1], Destination: locations[i]}]++
		}
	}

	return table, nil
}

// AggregateSessionFlows is AggregateFlows over a slice of sessions.
func AggregateSessionFlows[L comparable](sessions []Session[L], gap float64) (FlowTable[L], error) {
	locations := make([]L, len(sessions))
	starts := make([]float64, len(sessions))
	ends := make([]float64, len(sessions))
	for i, s := range sessions {
		locations[i] = s.Location
		starts[i] = s.Start
		ends[i] = s.End
	}
	return AggregateFlows(locations, starts, ends, gap)
}
