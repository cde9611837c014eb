package domain

import (
	"errors"
	"time"
)

// Role types
const (
	RoleAdmin      = "Admin"
	RoleTechnician = "Technician"
	RoleResearcher = "Researcher"
)

// ErrInvalidCredentials is returned when a login email has no directory
// entry. The session state is left unchanged.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User represents a directory entry (domain model)
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Role      string    `json:"role" gorm:"not null;default:'Technician'"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines the contract for user directory access
type UserRepository interface {
	Create(user *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindAll() ([]User, error)
	Count() (int64, error)
}
