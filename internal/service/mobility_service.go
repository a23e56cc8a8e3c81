package service

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jengzang/movr-go/internal/logging"
	"github.com/jengzang/movr-go/internal/metrics"
	"github.com/jengzang/movr-go/internal/models"
	"github.com/jengzang/movr-go/internal/movement"
	"github.com/jengzang/movr-go/internal/stats"
)

// ErrTooManyPoints is returned when a request exceeds Options.MaxPoints.
var ErrTooManyPoints = errors.New("too many input points")

// Options configures a MobilityService.
type Options struct {
	SessionGap float64 // default session gap in seconds
	FlowGap    float64 // default flow gap in seconds
	MaxPoints  int     // 0 means unlimited
}

// MobilityService runs the trace analyses behind the API and CLI.
// It holds no per-call state and is safe for concurrent use.
type MobilityService struct {
	opts Options
}

// NewMobilityService creates a new mobility service
func NewMobilityService(opts Options) *MobilityService {
	return &MobilityService{opts: opts}
}

// Sessions compresses a raw trace into stay sessions.
func (s *MobilityService) Sessions(req models.SessionsRequest) (*models.SessionsResponse, error) {
	gap := s.gapOr(req.Gap, s.opts.SessionGap)

	var sessions []movement.Session[string]
	err := s.observe("sessions", len(req.Locations), func() (err error) {
		sessions, err = movement.CompressSessions(req.Locations, req.Timestamps, gap)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("compress sessions: %w", err)
	}

	return &models.SessionsResponse{Gap: gap, Sessions: toSessionModels(sessions)}, nil
}

// Flows counts directed transitions between time-ordered sessions.
func (s *MobilityService) Flows(req models.FlowsRequest) (*models.FlowsResponse, error) {
	gap := s.gapOr(req.Gap, s.opts.FlowGap)

	var table movement.FlowTable[string]
	err := s.observe("flows", len(req.Locations), func() (err error) {
		table, err = movement.AggregateFlows(req.Locations, req.Starts, req.Ends, gap)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate flows: %w", err)
	}

	return &models.FlowsResponse{
		Gap:   gap,
		Flows: table.Flows(),
		Edges: len(table),
		Total: table.Total(),
	}, nil
}

// Gyration computes the radius of gyration. Missing weights default to 1.
func (s *MobilityService) Gyration(req models.GyrationRequest) (*models.GyrationResponse, error) {
	weights := req.Weights
	if weights == nil {
		weights = make([]float64, len(req.Lats))
		for i := range weights {
			weights[i] = 1
		}
	}

	var rg float64
	err := s.observe("gyration", len(req.Lats), func() (err error) {
		rg, err = movement.RadiusOfGyration(req.Lats, req.Lons, weights)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("radius of gyration: %w", err)
	}

	return &models.GyrationResponse{RadiusKm: rg, Points: len(req.Lats)}, nil
}

// Profile compresses a raw trace, aggregates flows between the resulting
// sessions and summarizes both.
func (s *MobilityService) Profile(req models.ProfileRequest) (*models.ProfileResponse, error) {
	sessionGap := s.gapOr(req.SessionGap, s.opts.SessionGap)
	flowGap := s.gapOr(req.FlowGap, s.opts.FlowGap)

	var (
		sessions []movement.Session[string]
		table    movement.FlowTable[string]
	)
	err := s.observe("profile", len(req.Locations), func() (err error) {
		sessions, err = movement.CompressSessions(req.Locations, req.Timestamps, sessionGap)
		if err != nil {
			return err
		}
		table, err = movement.AggregateSessionFlows(sessions, flowGap)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("profile trace: %w", err)
	}

	return &models.ProfileResponse{
		SessionGap: sessionGap,
		FlowGap:    flowGap,
		Sessions:   toSessionModels(sessions),
		Flows:      table.Flows(),
		Summary:    summarize(len(req.Locations), sessions, table),
	}, nil
}

func (s *MobilityService) gapOr(gap *float64, def float64) float64 {
	if gap != nil {
		return *gap
	}
	return def
}

// observe enforces MaxPoints, times fn and records metrics and a debug log line.
func (s *MobilityService) observe(op string, n int, fn func() error) error {
	if s.opts.MaxPoints > 0 && n > s.opts.MaxPoints {
		metrics.OperationErrors.WithLabelValues(op).Inc()
		return fmt.Errorf("%w: %d > %d", ErrTooManyPoints, n, s.opts.MaxPoints)
	}

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	metrics.OperationInputSize.WithLabelValues(op).Observe(float64(n))
	if err != nil {
		metrics.OperationErrors.WithLabelValues(op).Inc()
		logging.Debug().Str("op", op).Int("n", n).Err(err).Msg("analysis rejected")
		return err
	}

	metrics.OperationDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	logging.Debug().Str("op", op).Int("n", n).Dur("elapsed", elapsed).Msg("analysis completed")
	return nil
}

func toSessionModels(sessions []movement.Session[string]) []models.Session {
	out := make([]models.Session, len(sessions))
	for i, s := range sessions {
		out[i] = models.Session{
			Location: s.Location,
			Start:    s.Start,
			End:      s.End,
			Duration: s.Duration(),
		}
	}
	return out
}

func summarize(observations int, sessions []movement.Session[string], table movement.FlowTable[string]) models.ProfileSummary {
	durations := make([]float64, len(sessions))
	byLocation := make(map[string]*models.LocationDwell)
	for i, s := range sessions {
		durations[i] = s.Duration()
		d, ok := byLocation[s.Location]
		if !ok {
			d = &models.LocationDwell{Location: s.Location}
			byLocation[s.Location] = d
		}
		d.Dwell += s.Duration()
		d.Sessions++
	}

	dwell := make([]models.LocationDwell, 0, len(byLocation))
	for _, d := range byLocation {
		dwell = append(dwell, *d)
	}
	slices.SortFunc(dwell, func(a, b models.LocationDwell) int {
		switch {
		case a.Dwell > b.Dwell:
			return -1
		case a.Dwell < b.Dwell:
			return 1
		case a.Location < b.Location:
			return -1
		case a.Location > b.Location:
			return 1
		}
		return 0
	})

	counts := make([]int, 0, len(table))
	selfLoops := 0
	for edge, n := range table {
		counts = append(counts, n)
		if edge.Origin == edge.Destination {
			selfLoops += n
		}
	}

	summary := models.ProfileSummary{
		ObservationCount:      observations,
		SessionCount:          len(sessions),
		DistinctLocations:     len(byLocation),
		Dwell:                 stats.Summarize(durations),
		DwellByLocation:       dwell,
		TotalFlows:            table.Total(),
		FlowEntropy:           stats.ShannonEntropy(counts),
		FlowEntropyNormalized: stats.NormalizedEntropy(counts),
		SelfLoops:             selfLoops,
	}
	if len(dwell) > 0 {
		summary.TopLocation = dwell[0].Location
	}
	return summary
}
