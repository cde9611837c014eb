package domain

import "testing"

func testInventory() []Component {
	return []Component{
		{Name: "10k Ohm Resistor", PartNumber: "RES-10K-0805", Category: CategoryResistors, Location: "Shelf A1", Quantity: 400, LowStockThreshold: 50},
		{Name: "NE555 Timer", PartNumber: "IC-NE555P", Category: CategoryICs, Location: "Drawer C1", Quantity: 8, LowStockThreshold: 25},
		{Name: "1N4148 Switching Diode", PartNumber: "DIO-1N4148", Category: CategoryDiodes, Location: "Shelf A1", Quantity: 0, LowStockThreshold: 100},
	}
}

func TestFilterMatches(t *testing.T) {
	inventory := testInventory()

	cases := []struct {
		name     string
		criteria FilterCriteria
		want     []string
	}{
		{
			name:     "no criteria matches everything",
			criteria: FilterCriteria{},
			want:     []string{"10k Ohm Resistor", "NE555 Timer", "1N4148 Switching Diode"},
		},
		{
			name:     "wildcards match everything",
			criteria: FilterCriteria{Category: Wildcard, Location: Wildcard, StockStatus: Wildcard},
			want:     []string{"10k Ohm Resistor", "NE555 Timer", "1N4148 Switching Diode"},
		},
		{
			name:     "search is case-insensitive on name",
			criteria: FilterCriteria{Search: "ne555"},
			want:     []string{"NE555 Timer"},
		},
		{
			name:     "search matches part number",
			criteria: FilterCriteria{Search: "dio-1n"},
			want:     []string{"1N4148 Switching Diode"},
		},
		{
			name:     "category narrows",
			criteria: FilterCriteria{Category: CategoryResistors},
			want:     []string{"10k Ohm Resistor"},
		},
		{
			name:     "location narrows",
			criteria: FilterCriteria{Location: "Shelf A1"},
			want:     []string{"10k Ohm Resistor", "1N4148 Switching Diode"},
		},
		{
			name:     "low stock bucket",
			criteria: FilterCriteria{StockStatus: string(StockStatusLow)},
			want:     []string{"NE555 Timer"},
		},
		{
			name:     "out of stock bucket",
			criteria: FilterCriteria{StockStatus: string(StockStatusOut)},
			want:     []string{"1N4148 Switching Diode"},
		},
		{
			name:     "predicates combine with AND",
			criteria: FilterCriteria{Location: "Shelf A1", StockStatus: string(StockStatusIn)},
			want:     []string{"10k Ohm Resistor"},
		},
		{
			name:     "no match yields empty set",
			criteria: FilterCriteria{Search: "resistor", Category: CategoryICs},
			want:     []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.criteria.Filter(inventory)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d components, got %d", len(tc.want), len(got))
			}
			for i := range got {
				if got[i].Name != tc.want[i] {
					t.Errorf("position %d: expected %q, got %q", i, tc.want[i], got[i].Name)
				}
			}
		})
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	inventory := testInventory()
	FilterCriteria{Search: "timer"}.Filter(inventory)

	if len(inventory) != 3 || inventory[0].Name != "10k Ohm Resistor" {
		t.Error("filter must not modify its input")
	}
}

func TestStockStatusOf(t *testing.T) {
	cases := []struct {
		quantity  int
		threshold int
		want      StockStatus
	}{
		{100, 50, StockStatusIn},
		{51, 50, StockStatusIn},
		{50, 50, StockStatusLow},
		{1, 50, StockStatusLow},
		{0, 50, StockStatusOut},
		{0, 0, StockStatusOut},
		{1, 0, StockStatusIn},
	}

	for _, tc := range cases {
		if got := StockStatusOf(tc.quantity, tc.threshold); got != tc.want {
			t.Errorf("StockStatusOf(%d, %d) = %q, want %q", tc.quantity, tc.threshold, got, tc.want)
		}
	}
}
