package domain

import "time"

// Log actions. Inward movements log as ActionAdded, outward movements as
// ActionIssued; full-record edits and deletions log as ActionUpdated and
// ActionRemoved.
const (
	ActionAdded   = "Added"
	ActionRemoved = "Removed"
	ActionUpdated = "Updated"
	ActionIssued  = "Issued"
)

// LogEntry is an append-only audit record of a mutating action. Entries
// are created at the moment of the mutation and never modified.
type LogEntry struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	Action        string    `json:"action" gorm:"not null;index"`
	ComponentID   string    `json:"componentId" gorm:"not null;index"`
	ComponentName string    `json:"componentName" gorm:"not null"`
	Quantity      int       `json:"quantity,omitempty"`
	Timestamp     time.Time `json:"timestamp" gorm:"not null;index"`
	UserName      string    `json:"userName"`
	UserAvatar    string    `json:"userAvatar"`
	Details       string    `json:"details"`
}

// TableName specifies the table name
func (LogEntry) TableName() string {
	return "log_entries"
}

// MovementPoint is one day of aggregated stock movement
type MovementPoint struct {
	Day     time.Time `json:"day"`
	Inward  int       `json:"inward"`
	Outward int       `json:"outward"`
}

// LogRepository defines the contract for activity log access. The log is
// append-only: there is no update or delete.
type LogRepository interface {
	Append(entry *LogEntry) error
	FindAll() ([]LogEntry, error)
	FindSince(cutoff time.Time) ([]LogEntry, error)
}
