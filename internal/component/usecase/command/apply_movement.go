package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	activitydomain "github.com/labtrack/labtrack/internal/activity/domain"
	"github.com/labtrack/labtrack/internal/component/domain"
	"github.com/labtrack/labtrack/kafka"
	"github.com/labtrack/labtrack/pkg/logger"
)

// ApplyMovementCommand represents a requested inward or outward stock
// movement against a single component
type ApplyMovementCommand struct {
	ComponentID string
	Type        domain.MovementType
	Quantity    int
	Reason      string
	UserName    string
	UserAvatar  string
}

// ApplyMovementHandler handles stock movement commands
type ApplyMovementHandler struct {
	repo      domain.ComponentRepository
	logs      activitydomain.LogRepository
	publisher *kafka.Publisher
	now       func() time.Time
}

// NewApplyMovementHandler creates a new apply movement handler. The
// publisher may be nil, in which case no events are emitted.
func NewApplyMovementHandler(repo domain.ComponentRepository, logs activitydomain.LogRepository, publisher *kafka.Publisher) *ApplyMovementHandler {
	return &ApplyMovementHandler{
		repo:      repo,
		logs:      logs,
		publisher: publisher,
		now:       time.Now,
	}
}

// Handle applies the movement. All preconditions are checked before any
// mutation: a rejected movement leaves the component untouched.
func (h *ApplyMovementHandler) Handle(ctx context.Context, cmd ApplyMovementCommand) (*domain.Component, error) {
	if cmd.ComponentID == "" {
		return nil, fmt.Errorf("component id is required")
	}
	if cmd.Type != domain.MovementInward && cmd.Type != domain.MovementOutward {
		return nil, fmt.Errorf("movement type must be %q or %q", domain.MovementInward, domain.MovementOutward)
	}
	if cmd.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if len(strings.TrimSpace(cmd.Reason)) < 3 {
		return nil, domain.ErrReasonRequired
	}

	component, err := h.repo.FindByID(cmd.ComponentID)
	if err != nil {
		return nil, err
	}

	action := activitydomain.ActionAdded
	switch cmd.Type {
	case domain.MovementInward:
		component.Quantity += cmd.Quantity
	case domain.MovementOutward:
		if cmd.Quantity > component.Quantity {
			return nil, fmt.Errorf("%w (%d available)", domain.ErrInsufficientStock, component.Quantity)
		}
		component.Quantity -= cmd.Quantity
		component.LastOutwardDate = h.now()
		action = activitydomain.ActionIssued
	}

	if err := h.repo.Update(component); err != nil {
		return nil, fmt.Errorf("failed to apply movement: %w", err)
	}

	entry := &activitydomain.LogEntry{
		ID:            uuid.NewString(),
		Action:        action,
		ComponentID:   component.ID,
		ComponentName: component.Name,
		Quantity:      cmd.Quantity,
		Timestamp:     h.now(),
		UserName:      cmd.UserName,
		UserAvatar:    cmd.UserAvatar,
		Details:       cmd.Reason,
	}
	if err := h.logs.Append(entry); err != nil {
		// The stock mutation already committed; a failed audit append is
		// logged loudly rather than rolled back.
		logger.Error(ctx).
			Err(err).
			Str("component_id", component.ID).
			Msg("Failed to append movement log entry")
	}

	if err := h.publisher.PublishStockMovement(ctx, kafka.StockMovementEvent{
		ComponentID:   component.ID,
		ComponentName: component.Name,
		Movement:      string(cmd.Type),
		Quantity:      cmd.Quantity,
		Remaining:     component.Quantity,
		Threshold:     component.LowStockThreshold,
		Reason:        cmd.Reason,
		User:          cmd.UserName,
		Timestamp:     entry.Timestamp,
	}); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("component_id", component.ID).
			Msg("Failed to publish stock movement event")
	}

	return component, nil
}
