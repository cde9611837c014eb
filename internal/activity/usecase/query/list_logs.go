package query

import (
	"fmt"

	"github.com/labtrack/labtrack/internal/activity/domain"
)

// ListLogsQuery lists activity log entries, newest-first
type ListLogsQuery struct {
	Limit int
}

// ListLogsHandler handles list log queries
type ListLogsHandler struct {
	repo domain.LogRepository
}

// NewListLogsHandler creates a new list logs handler
func NewListLogsHandler(repo domain.LogRepository) *ListLogsHandler {
	return &ListLogsHandler{repo: repo}
}

// Handle executes the list logs query
func (h *ListLogsHandler) Handle(query ListLogsQuery) ([]domain.LogEntry, error) {
	entries, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}

	if query.Limit > 0 && len(entries) > query.Limit {
		entries = entries[:query.Limit]
	}

	return entries, nil
}
