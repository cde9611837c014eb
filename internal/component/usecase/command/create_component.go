package command

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	activitydomain "github.com/labtrack/labtrack/internal/activity/domain"
	"github.com/labtrack/labtrack/internal/component/domain"
	"github.com/labtrack/labtrack/pkg/logger"
)

// CreateComponentCommand represents the command to add a new component
type CreateComponentCommand struct {
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

// CreateComponentHandler handles create component commands
type CreateComponentHandler struct {
	repo domain.ComponentRepository
	logs activitydomain.LogRepository
	now  func() time.Time
}

// NewCreateComponentHandler creates a new create component handler
func NewCreateComponentHandler(repo domain.ComponentRepository, logs activitydomain.LogRepository) *CreateComponentHandler {
	return &CreateComponentHandler{repo: repo, logs: logs, now: time.Now}
}

// Handle validates and creates the component. The new record gets a
// fresh id, lastOutwardDate set to creation time, and goes to the head
// of the collection.
func (h *CreateComponentHandler) Handle(ctx context.Context, cmd CreateComponentCommand) (*domain.Component, error) {
	if err := validateComponentFields(cmd.Name, cmd.PartNumber, cmd.Category, cmd.Quantity, cmd.LowStockThreshold, cmd.UnitPrice, cmd.DatasheetURL); err != nil {
		return nil, err
	}

	component := &domain.Component{
		ID:                uuid.NewString(),
		Name:              cmd.Name,
		PartNumber:        cmd.PartNumber,
		Manufacturer:      cmd.Manufacturer,
		Description:       cmd.Description,
		Category:          cmd.Category,
		Location:          cmd.Location,
		Quantity:          cmd.Quantity,
		LowStockThreshold: cmd.LowStockThreshold,
		UnitPrice:         cmd.UnitPrice,
		DatasheetURL:      cmd.DatasheetURL,
		LastOutwardDate:   h.now(),
	}

	if err := h.repo.Create(component); err != nil {
		return nil, fmt.Errorf("failed to create component: %w", err)
	}

	h.appendLog(ctx, component, cmd.UserName, cmd.UserAvatar)

	return component, nil
}

func (h *CreateComponentHandler) appendLog(ctx context.Context, component *domain.Component, userName, userAvatar string) {
	entry := &activitydomain.LogEntry{
		ID:            uuid.NewString(),
		Action:        activitydomain.ActionAdded,
		ComponentID:   component.ID,
		ComponentName: component.Name,
		Quantity:      component.Quantity,
		Timestamp:     h.now(),
		UserName:      userName,
		UserAvatar:    userAvatar,
		Details:       "New component added to inventory",
	}
	if err := h.logs.Append(entry); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("component_id", component.ID).
			Msg("Failed to append create log entry")
	}
}

// validateComponentFields enforces the edit-form invariants shared by
// create and update
func validateComponentFields(name, partNumber, category string, quantity, threshold int, unitPrice decimal.Decimal, datasheetURL string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if partNumber == "" {
		return fmt.Errorf("part number is required")
	}
	if !domain.ValidCategory(category) {
		return fmt.Errorf("unknown category %q", category)
	}
	if quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	if threshold < 0 {
		return fmt.Errorf("low stock threshold cannot be negative")
	}
	if unitPrice.IsNegative() {
		return fmt.Errorf("unit price cannot be negative")
	}
	if datasheetURL != "" {
		if _, err := url.ParseRequestURI(datasheetURL); err != nil {
			return fmt.Errorf("datasheet url is not valid: %w", err)
		}
	}
	return nil
}
