package query

import (
	"fmt"

	"github.com/labtrack/labtrack/internal/component/domain"
)

// ListComponentsQuery filters the component collection. Empty or "all"
// fields act as wildcards.
type ListComponentsQuery struct {
	Search      string
	Category    string
	Location    string
	StockStatus string
}

// ListComponentsHandler handles list component queries
type ListComponentsHandler struct {
	repo domain.ComponentRepository
}

// NewListComponentsHandler creates a new list components handler
func NewListComponentsHandler(repo domain.ComponentRepository) *ListComponentsHandler {
	return &ListComponentsHandler{repo: repo}
}

// Handle returns the filtered collection, preserving the stored
// most-recent-first order
func (h *ListComponentsHandler) Handle(query ListComponentsQuery) ([]domain.Component, error) {
	if query.StockStatus != "" && query.StockStatus != domain.Wildcard {
		switch domain.StockStatus(query.StockStatus) {
		case domain.StockStatusIn, domain.StockStatusLow, domain.StockStatusOut:
		default:
			return nil, fmt.Errorf("unknown stock status %q", query.StockStatus)
		}
	}

	components, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}

	criteria := domain.FilterCriteria{
		Search:      query.Search,
		Category:    query.Category,
		Location:    query.Location,
		StockStatus: query.StockStatus,
	}
	return criteria.Filter(components), nil
}
