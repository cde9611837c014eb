package query

import (
	"fmt"
	"time"

	"github.com/labtrack/labtrack/internal/activity/domain"
)

// DefaultWindowDays is the trailing window the dashboard chart shows
const DefaultWindowDays = 30

// AggregateMovementsQuery buckets movement log entries by calendar day
// over a trailing window ending at ReferenceTime
type AggregateMovementsQuery struct {
	WindowDays    int
	ReferenceTime time.Time
}

// AggregateMovementsHandler handles movement aggregation queries
type AggregateMovementsHandler struct {
	repo domain.LogRepository
}

// NewAggregateMovementsHandler creates a new aggregation handler
func NewAggregateMovementsHandler(repo domain.LogRepository) *AggregateMovementsHandler {
	return &AggregateMovementsHandler{repo: repo}
}

// Handle returns exactly WindowDays points, chronological ascending,
// zero-filled for days without activity. Added entries count toward
// inward, Issued toward outward, weighted by entry quantity; entries on
// the same calendar day accumulate.
func (h *AggregateMovementsHandler) Handle(query AggregateMovementsQuery) ([]domain.MovementPoint, error) {
	if query.WindowDays <= 0 {
		query.WindowDays = DefaultWindowDays
	}
	if query.ReferenceTime.IsZero() {
		query.ReferenceTime = time.Now()
	}

	// The window covers WindowDays calendar days ending at (and
	// including) the reference day.
	refDay := startOfDay(query.ReferenceTime)
	firstDay := refDay.AddDate(0, 0, -(query.WindowDays - 1))

	entries, err := h.repo.FindSince(firstDay)
	if err != nil {
		return nil, fmt.Errorf("failed to load log entries: %w", err)
	}

	points := make([]domain.MovementPoint, query.WindowDays)
	index := make(map[time.Time]int, query.WindowDays)
	for i := range points {
		day := firstDay.AddDate(0, 0, i)
		points[i] = domain.MovementPoint{Day: day}
		index[day] = i
	}

	for _, entry := range entries {
		if entry.Action != domain.ActionAdded && entry.Action != domain.ActionIssued {
			continue
		}

		day := startOfDay(entry.Timestamp)
		i, ok := index[day]
		if !ok {
			// Timestamp after the reference day falls outside the window.
			continue
		}

		switch entry.Action {
		case domain.ActionAdded:
			points[i].Inward += entry.Quantity
		case domain.ActionIssued:
			points[i].Outward += entry.Quantity
		}
	}

	return points, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Local().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
