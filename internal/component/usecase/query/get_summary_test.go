package query

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/labtrack/labtrack/internal/component/domain"
	"github.com/labtrack/labtrack/internal/component/repository"
)

func seedSummaryRepo(t *testing.T, now time.Time) *repository.MemoryComponentRepository {
	t.Helper()
	repo := repository.NewMemoryComponentRepository()

	components := []domain.Component{
		{Name: "Resistor", Quantity: 400, LowStockThreshold: 50, UnitPrice: decimal.RequireFromString("0.01"), LastOutwardDate: now.AddDate(0, 0, -10)},
		{Name: "Timer", Quantity: 8, LowStockThreshold: 25, UnitPrice: decimal.RequireFromString("0.42"), LastOutwardDate: now.AddDate(0, 0, -20)},
		{Name: "Diode", Quantity: 0, LowStockThreshold: 100, UnitPrice: decimal.RequireFromString("0.03"), LastOutwardDate: now.AddDate(0, -4, 0)},
		{Name: "Sensor", Quantity: 30, LowStockThreshold: 10, UnitPrice: decimal.RequireFromString("4.90"), LastOutwardDate: now.AddDate(0, -6, 0)},
	}
	for i := range components {
		components[i].ID = uuid.NewString()
		if err := repo.Create(&components[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func TestGetSummaryBuckets(t *testing.T) {
	now := time.Now()
	h := NewGetSummaryHandler(seedSummaryRepo(t, now))
	h.now = func() time.Time { return now }

	summary, err := h.Handle()
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if summary.TotalTypes != 4 {
		t.Errorf("expected 4 total types, got %d", summary.TotalTypes)
	}
	// In-stock means any stock at all, so it includes the low-stock item.
	if summary.InStockTypes != 3 {
		t.Errorf("expected 3 in-stock types, got %d", summary.InStockTypes)
	}
	if summary.LowStockTypes != 1 {
		t.Errorf("expected 1 low-stock type, got %d", summary.LowStockTypes)
	}
	if summary.OutOfStockTypes != 1 {
		t.Errorf("expected 1 out-of-stock type, got %d", summary.OutOfStockTypes)
	}
}

func TestGetSummaryTotalValue(t *testing.T) {
	now := time.Now()
	h := NewGetSummaryHandler(seedSummaryRepo(t, now))
	h.now = func() time.Time { return now }

	summary, err := h.Handle()
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	// 400*0.01 + 8*0.42 + 0*0.03 + 30*4.90
	want := decimal.RequireFromString("154.36")
	if !summary.TotalValue.Equal(want) {
		t.Errorf("expected total value %s, got %s", want, summary.TotalValue)
	}
}

func TestGetSummaryLists(t *testing.T) {
	now := time.Now()
	h := NewGetSummaryHandler(seedSummaryRepo(t, now))
	h.now = func() time.Time { return now }

	summary, err := h.Handle()
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(summary.LowStockList) != 1 || summary.LowStockList[0].Name != "Timer" {
		t.Errorf("expected low stock list [Timer], got %v", summary.LowStockList)
	}

	// Stale means no outward movement in the last three months; the
	// out-of-stock diode qualifies too.
	if len(summary.StaleStockList) != 2 {
		t.Fatalf("expected 2 stale components, got %d", len(summary.StaleStockList))
	}
	for _, c := range summary.StaleStockList {
		if c.Name != "Diode" && c.Name != "Sensor" {
			t.Errorf("unexpected stale component %q", c.Name)
		}
	}
}

func TestGetSummaryEmptyInventory(t *testing.T) {
	h := NewGetSummaryHandler(repository.NewMemoryComponentRepository())

	summary, err := h.Handle()
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if summary.TotalTypes != 0 || !summary.TotalValue.Equal(decimal.Zero) {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.LowStockList == nil || summary.StaleStockList == nil {
		t.Error("lists must be empty, not nil")
	}
}
