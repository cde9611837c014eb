package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	activitydomain "github.com/labtrack/labtrack/internal/activity/domain"
	"github.com/labtrack/labtrack/internal/component/domain"
	"github.com/labtrack/labtrack/pkg/logger"
)

// UpdateComponentCommand replaces all mutable fields of an existing
// component, matched by id
type UpdateComponentCommand struct {
	ID                string
	Name              string
	PartNumber        string
	Manufacturer      string
	Description       string
	Category          string
	Location          string
	Quantity          int
	LowStockThreshold int
	UnitPrice         decimal.Decimal
	DatasheetURL      string
	UserName          string
	UserAvatar        string
}

// UpdateComponentHandler handles update component commands
type UpdateComponentHandler struct {
	repo domain.ComponentRepository
	logs activitydomain.LogRepository
	now  func() time.Time
}

// NewUpdateComponentHandler creates a new update component handler
func NewUpdateComponentHandler(repo domain.ComponentRepository, logs activitydomain.LogRepository) *UpdateComponentHandler {
	return &UpdateComponentHandler{repo: repo, logs: logs, now: time.Now}
}

// Handle executes the update command. The id and lastOutwardDate are
// immutable here; lastOutwardDate only moves on outward movements.
func (h *UpdateComponentHandler) Handle(ctx context.Context, cmd UpdateComponentCommand) (*domain.Component, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("component id is required")
	}
	if err := validateComponentFields(cmd.Name, cmd.PartNumber, cmd.Category, cmd.Quantity, cmd.LowStockThreshold, cmd.UnitPrice, cmd.DatasheetURL); err != nil {
		return nil, err
	}

	component, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	component.Name = cmd.Name
	component.PartNumber = cmd.PartNumber
	component.Manufacturer = cmd.Manufacturer
	component.Description = cmd.Description
	component.Category = cmd.Category
	component.Location = cmd.Location
	component.Quantity = cmd.Quantity
	component.LowStockThreshold = cmd.LowStockThreshold
	component.UnitPrice = cmd.UnitPrice
	component.DatasheetURL = cmd.DatasheetURL

	if err := h.repo.Update(component); err != nil {
		return nil, fmt.Errorf("failed to update component: %w", err)
	}

	entry := &activitydomain.LogEntry{
		ID:            uuid.NewString(),
		Action:        activitydomain.ActionUpdated,
		ComponentID:   component.ID,
		ComponentName: component.Name,
		Timestamp:     h.now(),
		UserName:      cmd.UserName,
		UserAvatar:    cmd.UserAvatar,
		Details:       "Component details updated",
	}
	if err := h.logs.Append(entry); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("component_id", component.ID).
			Msg("Failed to append update log entry")
	}

	return component, nil
}
