package query

import (
	"testing"

	"github.com/google/uuid"

	"github.com/labtrack/labtrack/internal/component/domain"
	"github.com/labtrack/labtrack/internal/component/repository"
)

func seedListRepo(t *testing.T) *repository.MemoryComponentRepository {
	t.Helper()
	repo := repository.NewMemoryComponentRepository()

	// Create prepends, so the stored order is the reverse of this list.
	components := []domain.Component{
		{Name: "1N4148 Switching Diode", PartNumber: "DIO-1N4148", Category: domain.CategoryDiodes, Location: "Shelf B1", Quantity: 0, LowStockThreshold: 100},
		{Name: "NE555 Timer", PartNumber: "IC-NE555P", Category: domain.CategoryICs, Location: "Drawer C1", Quantity: 8, LowStockThreshold: 25},
		{Name: "10k Ohm Resistor", PartNumber: "RES-10K-0805", Category: domain.CategoryResistors, Location: "Shelf A1", Quantity: 400, LowStockThreshold: 50},
	}
	for i := range components {
		components[i].ID = uuid.NewString()
		if err := repo.Create(&components[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func TestListComponentsPreservesOrder(t *testing.T) {
	h := NewListComponentsHandler(seedListRepo(t))

	components, err := h.Handle(ListComponentsQuery{})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(components) != 3 {
		t.Fatalf("expected 3 components, got %d", len(components))
	}
	if components[0].Name != "10k Ohm Resistor" {
		t.Errorf("expected most recently added first, got %q", components[0].Name)
	}
}

func TestListComponentsFilters(t *testing.T) {
	h := NewListComponentsHandler(seedListRepo(t))

	cases := []struct {
		name  string
		query ListComponentsQuery
		want  int
	}{
		{"search by part number", ListComponentsQuery{Search: "ne555"}, 1},
		{"category", ListComponentsQuery{Category: domain.CategoryICs}, 1},
		{"wildcard category", ListComponentsQuery{Category: domain.Wildcard}, 3},
		{"stock bucket", ListComponentsQuery{StockStatus: string(domain.StockStatusOut)}, 1},
		{"combined criteria", ListComponentsQuery{Location: "Drawer C1", StockStatus: string(domain.StockStatusLow)}, 1},
		{"combined criteria excluding", ListComponentsQuery{Location: "Drawer C1", StockStatus: string(domain.StockStatusOut)}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			components, err := h.Handle(tc.query)
			if err != nil {
				t.Fatalf("Handle: %v", err)
			}
			if len(components) != tc.want {
				t.Errorf("expected %d components, got %d", tc.want, len(components))
			}
		})
	}
}

func TestListComponentsUnknownStockStatus(t *testing.T) {
	h := NewListComponentsHandler(seedListRepo(t))

	if _, err := h.Handle(ListComponentsQuery{StockStatus: "plenty"}); err == nil {
		t.Error("expected error for unknown stock status")
	}
}
