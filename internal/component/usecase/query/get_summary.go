package query

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/labtrack/labtrack/internal/component/domain"
)

// StaleStockAge is the window after which an item with no outward
// movement counts as stale
const StaleStockAge = 3 // months

// Summary holds the derived dashboard aggregates. Recomputed on every
// read, never cached by the engine itself.
type Summary struct {
	TotalTypes      int                `json:"totalTypes"`
	InStockTypes    int                `json:"inStockTypes"`
	LowStockTypes   int                `json:"lowStockTypes"`
	OutOfStockTypes int                `json:"outOfStockTypes"`
	TotalValue      decimal.Decimal    `json:"totalValue"`
	LowStockList    []domain.Component `json:"lowStockList"`
	StaleStockList  []domain.Component `json:"staleStockList"`
}

// GetSummaryHandler handles dashboard summary queries
type GetSummaryHandler struct {
	repo domain.ComponentRepository
	now  func() time.Time
}

// NewGetSummaryHandler creates a new summary handler
func NewGetSummaryHandler(repo domain.ComponentRepository) *GetSummaryHandler {
	return &GetSummaryHandler{repo: repo, now: time.Now}
}

// Handle recomputes the summary over the live collection
func (h *GetSummaryHandler) Handle() (*Summary, error) {
	components, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load components: %w", err)
	}

	staleCutoff := h.now().AddDate(0, -StaleStockAge, 0)

	summary := &Summary{
		TotalTypes:     len(components),
		TotalValue:     decimal.Zero,
		LowStockList:   []domain.Component{},
		StaleStockList: []domain.Component{},
	}

	for _, c := range components {
		// The in-stock count is "any stock at all" (q > 0) and so also
		// covers low-stock items; the low-stock count is the stricter
		// 0 < q <= threshold bucket.
		switch c.StockStatus() {
		case domain.StockStatusIn:
			summary.InStockTypes++
		case domain.StockStatusLow:
			summary.InStockTypes++
			summary.LowStockTypes++
			summary.LowStockList = append(summary.LowStockList, c)
		case domain.StockStatusOut:
			summary.OutOfStockTypes++
		}

		summary.TotalValue = summary.TotalValue.Add(c.TotalValue())

		if c.LastOutwardDate.Before(staleCutoff) {
			summary.StaleStockList = append(summary.StaleStockList, c)
		}
	}

	return summary, nil
}
