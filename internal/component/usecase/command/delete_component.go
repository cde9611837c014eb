package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	activitydomain "github.com/labtrack/labtrack/internal/activity/domain"
	"github.com/labtrack/labtrack/internal/component/domain"
	"github.com/labtrack/labtrack/pkg/logger"
)

// DeleteComponentCommand removes a component by id
type DeleteComponentCommand struct {
	ID         string
	UserName   string
	UserAvatar string
}

// DeleteComponentHandler handles delete component commands
type DeleteComponentHandler struct {
	repo domain.ComponentRepository
	logs activitydomain.LogRepository
	now  func() time.Time
}

// NewDeleteComponentHandler creates a new delete component handler
func NewDeleteComponentHandler(repo domain.ComponentRepository, logs activitydomain.LogRepository) *DeleteComponentHandler {
	return &DeleteComponentHandler{repo: repo, logs: logs, now: time.Now}
}

// Handle executes the delete command
func (h *DeleteComponentHandler) Handle(ctx context.Context, cmd DeleteComponentCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("component id is required")
	}

	component, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete component: %w", err)
	}

	entry := &activitydomain.LogEntry{
		ID:            uuid.NewString(),
		Action:        activitydomain.ActionRemoved,
		ComponentID:   component.ID,
		ComponentName: component.Name,
		Timestamp:     h.now(),
		UserName:      cmd.UserName,
		UserAvatar:    cmd.UserAvatar,
		Details:       "Component removed from inventory",
	}
	if err := h.logs.Append(entry); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("component_id", component.ID).
			Msg("Failed to append delete log entry")
	}

	return nil
}
