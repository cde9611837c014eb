package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Component categories. The set is closed; anything else is rejected at
// the validation boundary.
const (
	CategoryResistors        = "Resistors"
	CategoryCapacitors       = "Capacitors"
	CategoryInductors        = "Inductors"
	CategoryDiodes           = "Diodes"
	CategoryTransistors      = "Transistors"
	CategoryICs              = "Integrated Circuits (ICs)"
	CategoryConnectors       = "Connectors"
	CategorySensors          = "Sensors"
	CategoryMicrocontrollers = "Microcontrollers/Dev Boards"
	CategorySwitches         = "Switches/Buttons"
	CategoryLEDs             = "LEDs/Displays"
	CategoryCables           = "Cables/Wires"
	CategoryOther            = "Other"
)

// Categories lists every valid component category
var Categories = []string{
	CategoryResistors,
	CategoryCapacitors,
	CategoryInductors,
	CategoryDiodes,
	CategoryTransistors,
	CategoryICs,
	CategoryConnectors,
	CategorySensors,
	CategoryMicrocontrollers,
	CategorySwitches,
	CategoryLEDs,
	CategoryCables,
	CategoryOther,
}

// ValidCategory reports whether category is a member of the closed set
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MovementType identifies the direction of a stock movement
type MovementType string

const (
	MovementInward  MovementType = "inward"
	MovementOutward MovementType = "outward"
)

// StockStatus buckets a component by its quantity against its threshold
type StockStatus string

const (
	StockStatusIn  StockStatus = "in-stock"
	StockStatusLow StockStatus = "low-stock"
	StockStatusOut StockStatus = "out-of-stock"
)

// Domain errors surfaced by usecases. Handlers map these to HTTP codes.
var (
	ErrNotFound          = errors.New("component not found")
	ErrInsufficientStock = errors.New("cannot issue more than available stock")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrReasonRequired    = errors.New("a reason of at least 3 characters is required")
)

// Component represents a tracked inventory item
type Component struct {
	ID                string          `json:"id" gorm:"primaryKey;type:uuid"`
	Name              string          `json:"name" gorm:"not null;index"`
	PartNumber        string          `json:"partNumber" gorm:"not null;index"`
	Manufacturer      string          `json:"manufacturer"`
	Description       string          `json:"description"`
	Category          string          `json:"category" gorm:"not null;index"`
	Location          string          `json:"location" gorm:"index"`
	Quantity          int             `json:"quantity" gorm:"not null;default:0"`
	LowStockThreshold int             `json:"lowStockThreshold" gorm:"not null;default:0"`
	UnitPrice         decimal.Decimal `json:"unitPrice" gorm:"type:decimal(12,2)"`
	DatasheetURL      string          `json:"datasheetUrl"`
	LastOutwardDate   time.Time       `json:"lastOutwardDate"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName specifies the table name
func (Component) TableName() string {
	return "components"
}

// StockStatusOf places a quantity/threshold pair into exactly one bucket.
// The buckets partition the non-negative integers at q=0 and q=t.
func StockStatusOf(quantity, threshold int) StockStatus {
	switch {
	case quantity == 0:
		return StockStatusOut
	case quantity <= threshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// StockStatus returns the component's current stock bucket
func (c *Component) StockStatus() StockStatus {
	return StockStatusOf(c.Quantity, c.LowStockThreshold)
}

// TotalValue is quantity times unit price
func (c *Component) TotalValue() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// ComponentRepository defines the contract for component data access.
// FindAll returns the collection most-recent-first; new components are
// inserted at the head.
type ComponentRepository interface {
	Create(component *Component) error
	FindByID(id string) (*Component, error)
	FindAll() ([]Component, error)
	Update(component *Component) error
	Delete(id string) error
}
