package query

import (
	"fmt"

	"github.com/labtrack/labtrack/internal/component/domain"
)

// GetComponentQuery fetches a single component by id
type GetComponentQuery struct {
	ID string
}

// GetComponentHandler handles get component queries
type GetComponentHandler struct {
	repo domain.ComponentRepository
}

// NewGetComponentHandler creates a new get component handler
func NewGetComponentHandler(repo domain.ComponentRepository) *GetComponentHandler {
	return &GetComponentHandler{repo: repo}
}

// Handle executes the get component query
func (h *GetComponentHandler) Handle(query GetComponentQuery) (*domain.Component, error) {
	if query.ID == "" {
		return nil, fmt.Errorf("id is required")
	}

	return h.repo.FindByID(query.ID)
}
