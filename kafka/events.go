package kafka

import "time"

// StockMovementEvent is published for every applied stock movement
type StockMovementEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	ComponentID   string    `json:"component_id"`
	ComponentName string    `json:"component_name"`
	Movement      string    `json:"movement"` // inward or outward
	Quantity      int       `json:"quantity"`
	Remaining     int       `json:"remaining"`
	Threshold     int       `json:"threshold"`
	Reason        string    `json:"reason"`
	User          string    `json:"user"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockMovement = "stock.movement"
)

// Kafka topics
const (
	TopicStockMovements = "stock-movements"
)
