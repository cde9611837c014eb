package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/activity/domain"
)

// GormLogRepository persists log entries in PostgreSQL
type GormLogRepository struct {
	db *gorm.DB
}

func NewGormLogRepository(db *gorm.DB) *GormLogRepository {
	return &GormLogRepository{db: db}
}

func (r *GormLogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.LogEntry{})
}

func (r *GormLogRepository) Append(entry *domain.LogEntry) error {
	return r.db.Create(entry).Error
}

// FindAll returns entries newest-first
func (r *GormLogRepository) FindAll() ([]domain.LogEntry, error) {
	var entries []domain.LogEntry
	err := r.db.Order("timestamp DESC").Find(&entries).Error
	return entries, err
}

// FindSince returns entries at or after the cutoff, oldest-first
func (r *GormLogRepository) FindSince(cutoff time.Time) ([]domain.LogEntry, error) {
	var entries []domain.LogEntry
	err := r.db.Where("timestamp >= ?", cutoff).Order("timestamp ASC").Find(&entries).Error
	return entries, err
}
