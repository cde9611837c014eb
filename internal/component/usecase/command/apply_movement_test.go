package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	activitydomain "github.com/labtrack/labtrack/internal/activity/domain"
	activityrepo "github.com/labtrack/labtrack/internal/activity/repository"
	"github.com/labtrack/labtrack/internal/component/domain"
	"github.com/labtrack/labtrack/internal/component/repository"
)

func newTestComponent(quantity, threshold int) *domain.Component {
	return &domain.Component{
		ID:                uuid.NewString(),
		Name:              "NE555 Timer",
		PartNumber:        "IC-NE555P",
		Category:          domain.CategoryICs,
		Location:          "Drawer C1",
		Quantity:          quantity,
		LowStockThreshold: threshold,
		LastOutwardDate:   time.Now().AddDate(0, 0, -30),
	}
}

func TestApplyMovementOutward(t *testing.T) {
	repo := repository.NewMemoryComponentRepository()
	logs := activityrepo.NewMemoryLogRepository()
	c := newTestComponent(50, 10)
	repo.Create(c)

	h := NewApplyMovementHandler(repo, logs, nil)
	before := time.Now()

	updated, err := h.Handle(context.Background(), ApplyMovementCommand{
		ComponentID: c.ID,
		Type:        domain.MovementOutward,
		Quantity:    20,
		Reason:      "Workshop kits",
		UserName:    "Tech User",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if updated.Quantity != 30 {
		t.Errorf("expected quantity 30, got %d", updated.Quantity)
	}
	if updated.LastOutwardDate.Before(before) {
		t.Errorf("expected lastOutwardDate to be refreshed, got %v", updated.LastOutwardDate)
	}

	entries, _ := logs.FindAll()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Action != activitydomain.ActionIssued {
		t.Errorf("expected action %q, got %q", activitydomain.ActionIssued, entries[0].Action)
	}
	if entries[0].Quantity != 20 {
		t.Errorf("expected logged quantity 20, got %d", entries[0].Quantity)
	}
	if entries[0].Details != "Workshop kits" {
		t.Errorf("expected reason in details, got %q", entries[0].Details)
	}
}

func TestApplyMovementInwardKeepsLastOutwardDate(t *testing.T) {
	repo := repository.NewMemoryComponentRepository()
	logs := activityrepo.NewMemoryLogRepository()
	c := newTestComponent(10, 5)
	lastOutward := c.LastOutwardDate
	repo.Create(c)

	h := NewApplyMovementHandler(repo, logs, nil)

	updated, err := h.Handle(context.Background(), ApplyMovementCommand{
		ComponentID: c.ID,
		Type:        domain.MovementInward,
		Quantity:    15,
		Reason:      "Supplier restock",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if updated.Quantity != 25 {
		t.Errorf("expected quantity 25, got %d", updated.Quantity)
	}
	if !updated.LastOutwardDate.Equal(lastOutward) {
		t.Errorf("inward movement must not touch lastOutwardDate")
	}

	entries, _ := logs.FindAll()
	if len(entries) != 1 || entries[0].Action != activitydomain.ActionAdded {
		t.Errorf("expected one Added entry, got %v", entries)
	}
}

func TestApplyMovementRejectionLeavesComponentUntouched(t *testing.T) {
	repo := repository.NewMemoryComponentRepository()
	logs := activityrepo.NewMemoryLogRepository()
	c := newTestComponent(50, 10)
	repo.Create(c)

	h := NewApplyMovementHandler(repo, logs, nil)

	cases := []struct {
		name string
		cmd  ApplyMovementCommand
		want error
	}{
		{
			name: "outward exceeding stock",
			cmd: ApplyMovementCommand{
				ComponentID: c.ID, Type: domain.MovementOutward,
				Quantity: 60, Reason: "Too many",
			},
			want: domain.ErrInsufficientStock,
		},
		{
			name: "zero quantity",
			cmd: ApplyMovementCommand{
				ComponentID: c.ID, Type: domain.MovementInward,
				Quantity: 0, Reason: "Nothing",
			},
			want: domain.ErrInvalidQuantity,
		},
		{
			name: "negative quantity",
			cmd: ApplyMovementCommand{
				ComponentID: c.ID, Type: domain.MovementOutward,
				Quantity: -5, Reason: "Negative",
			},
			want: domain.ErrInvalidQuantity,
		},
		{
			name: "reason too short",
			cmd: ApplyMovementCommand{
				ComponentID: c.ID, Type: domain.MovementOutward,
				Quantity: 5, Reason: "  a ",
			},
			want: domain.ErrReasonRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.Handle(context.Background(), tc.cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	stored, _ := repo.FindByID(c.ID)
	if stored.Quantity != 50 {
		t.Errorf("rejected movements must not change quantity, got %d", stored.Quantity)
	}
	entries, _ := logs.FindAll()
	if len(entries) != 0 {
		t.Errorf("rejected movements must not be logged, got %d entries", len(entries))
	}
}

func TestApplyMovementUnknownComponent(t *testing.T) {
	repo := repository.NewMemoryComponentRepository()
	logs := activityrepo.NewMemoryLogRepository()

	h := NewApplyMovementHandler(repo, logs, nil)

	_, err := h.Handle(context.Background(), ApplyMovementCommand{
		ComponentID: uuid.NewString(),
		Type:        domain.MovementInward,
		Quantity:    1,
		Reason:      "Restock",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyMovementSequence(t *testing.T) {
	repo := repository.NewMemoryComponentRepository()
	logs := activityrepo.NewMemoryLogRepository()
	c := newTestComponent(50, 10)
	repo.Create(c)

	h := NewApplyMovementHandler(repo, logs, nil)
	ctx := context.Background()

	// Over-issue is rejected, then a valid issue and a restock apply.
	if _, err := h.Handle(ctx, ApplyMovementCommand{ComponentID: c.ID, Type: domain.MovementOutward, Quantity: 60, Reason: "Assembly run"}); err == nil {
		t.Fatal("expected over-issue to be rejected")
	}
	if _, err := h.Handle(ctx, ApplyMovementCommand{ComponentID: c.ID, Type: domain.MovementOutward, Quantity: 20, Reason: "Assembly run"}); err != nil {
		t.Fatalf("outward 20: %v", err)
	}
	updated, err := h.Handle(ctx, ApplyMovementCommand{ComponentID: c.ID, Type: domain.MovementInward, Quantity: 5, Reason: "Returned parts"})
	if err != nil {
		t.Fatalf("inward 5: %v", err)
	}
	if updated.Quantity != 35 {
		t.Errorf("expected quantity 35 after sequence, got %d", updated.Quantity)
	}

	entries, _ := logs.FindAll()
	if len(entries) != 2 {
		t.Errorf("expected 2 log entries, got %d", len(entries))
	}
}
