package query

import (
	"fmt"

	"github.com/labtrack/labtrack/internal/user/domain"
)

// GetUserQuery fetches a single user by id
type GetUserQuery struct {
	ID string
}

// GetUserHandler handles get user queries
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(query GetUserQuery) (*domain.User, error) {
	if query.ID == "" {
		return nil, fmt.Errorf("id is required")
	}

	user, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return user, nil
}
