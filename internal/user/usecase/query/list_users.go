package query

import (
	"fmt"

	"github.com/labtrack/labtrack/internal/user/domain"
)

// ListUsersQuery lists the user directory
type ListUsersQuery struct{}

// ListUsersHandler handles list user queries
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(ListUsersQuery) ([]domain.User, error) {
	users, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
