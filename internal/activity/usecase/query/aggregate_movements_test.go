package query

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/labtrack/labtrack/internal/activity/domain"
	"github.com/labtrack/labtrack/internal/activity/repository"
)

func appendEntry(t *testing.T, repo *repository.MemoryLogRepository, action string, quantity int, ts time.Time) {
	t.Helper()
	err := repo.Append(&domain.LogEntry{
		ID:        uuid.NewString(),
		Action:    action,
		Quantity:  quantity,
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
}

func TestAggregateMovementsWindow(t *testing.T) {
	repo := repository.NewMemoryLogRepository()
	h := NewAggregateMovementsHandler(repo)
	ref := time.Date(2026, 8, 31, 15, 30, 0, 0, time.Local)

	points, err := h.Handle(AggregateMovementsQuery{ReferenceTime: ref})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(points) != DefaultWindowDays {
		t.Fatalf("expected %d points, got %d", DefaultWindowDays, len(points))
	}

	// Chronological, ending on the reference day, all zero-filled.
	last := points[len(points)-1]
	if !last.Day.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)) {
		t.Errorf("expected last point on the reference day, got %v", last.Day)
	}
	first := points[0]
	if !first.Day.Equal(time.Date(2026, 8, 2, 0, 0, 0, 0, time.Local)) {
		t.Errorf("expected first point 29 days earlier, got %v", first.Day)
	}
	for i, p := range points {
		if p.Inward != 0 || p.Outward != 0 {
			t.Errorf("point %d: expected zero-filled day, got %+v", i, p)
		}
	}
}

func TestAggregateMovementsBuckets(t *testing.T) {
	repo := repository.NewMemoryLogRepository()
	ref := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	day1 := ref.AddDate(0, 0, -2)
	day2 := ref.AddDate(0, 0, -1)

	// Same-day entries accumulate; Updated and Removed never count.
	appendEntry(t, repo, domain.ActionAdded, 10, day1.Add(-3*time.Hour))
	appendEntry(t, repo, domain.ActionIssued, 4, day1)
	appendEntry(t, repo, domain.ActionIssued, 3, day2)
	appendEntry(t, repo, domain.ActionUpdated, 99, day2)
	appendEntry(t, repo, domain.ActionRemoved, 99, day2)

	h := NewAggregateMovementsHandler(repo)
	points, err := h.Handle(AggregateMovementsQuery{WindowDays: 5, ReferenceTime: ref})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}

	p1 := points[2]
	if p1.Inward != 10 || p1.Outward != 4 {
		t.Errorf("day 1: expected inward 10 outward 4, got %+v", p1)
	}
	p2 := points[3]
	if p2.Inward != 0 || p2.Outward != 3 {
		t.Errorf("day 2: expected inward 0 outward 3, got %+v", p2)
	}
	p3 := points[4]
	if p3.Inward != 0 || p3.Outward != 0 {
		t.Errorf("reference day: expected no activity, got %+v", p3)
	}
}

func TestAggregateMovementsSameDayAccumulates(t *testing.T) {
	repo := repository.NewMemoryLogRepository()
	ref := time.Date(2026, 8, 31, 23, 59, 0, 0, time.Local)
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)

	appendEntry(t, repo, domain.ActionAdded, 5, day.Add(1*time.Hour))
	appendEntry(t, repo, domain.ActionAdded, 7, day.Add(13*time.Hour))
	appendEntry(t, repo, domain.ActionIssued, 2, day.Add(23*time.Hour))

	h := NewAggregateMovementsHandler(repo)
	points, err := h.Handle(AggregateMovementsQuery{WindowDays: 3, ReferenceTime: ref})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	p := points[1]
	if p.Inward != 12 || p.Outward != 2 {
		t.Errorf("expected inward 12 outward 2, got %+v", p)
	}
}

func TestAggregateMovementsIgnoresEntriesOutsideWindow(t *testing.T) {
	repo := repository.NewMemoryLogRepository()
	ref := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	appendEntry(t, repo, domain.ActionAdded, 100, ref.AddDate(0, 0, -40))
	appendEntry(t, repo, domain.ActionAdded, 1, ref)

	h := NewAggregateMovementsHandler(repo)
	points, err := h.Handle(AggregateMovementsQuery{ReferenceTime: ref})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	total := 0
	for _, p := range points {
		total += p.Inward
	}
	if total != 1 {
		t.Errorf("expected only the in-window entry counted, got inward total %d", total)
	}
}

func TestListLogsNewestFirst(t *testing.T) {
	repo := repository.NewMemoryLogRepository()
	now := time.Now()

	appendEntry(t, repo, domain.ActionAdded, 1, now.Add(-2*time.Hour))
	appendEntry(t, repo, domain.ActionIssued, 2, now.Add(-1*time.Hour))
	appendEntry(t, repo, domain.ActionUpdated, 0, now)

	h := NewListLogsHandler(repo)

	entries, err := h.Handle(ListLogsQuery{})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Action != domain.ActionUpdated || entries[2].Action != domain.ActionAdded {
		t.Errorf("expected newest first, got %v", entries)
	}

	limited, err := h.Handle(ListLogsQuery{Limit: 2})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(limited) != 2 || limited[0].Action != domain.ActionUpdated {
		t.Errorf("expected 2 newest entries, got %v", limited)
	}
}
