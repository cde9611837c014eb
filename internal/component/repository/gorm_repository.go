package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/component/domain"
)

// GormComponentRepository persists components in PostgreSQL
type GormComponentRepository struct {
	db *gorm.DB
}

func NewGormComponentRepository(db *gorm.DB) *GormComponentRepository {
	return &GormComponentRepository{db: db}
}

func (r *GormComponentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Component{})
}

func (r *GormComponentRepository) Create(component *domain.Component) error {
	return r.db.Create(component).Error
}

func (r *GormComponentRepository) FindByID(id string) (*domain.Component, error) {
	var component domain.Component
	err := r.db.Where("id = ?", id).First(&component).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &component, nil
}

// FindAll returns the collection most-recent-first
func (r *GormComponentRepository) FindAll() ([]domain.Component, error) {
	var components []domain.Component
	err := r.db.Order("created_at DESC").Find(&components).Error
	return components, err
}

func (r *GormComponentRepository) Update(component *domain.Component) error {
	return r.db.Save(component).Error
}

func (r *GormComponentRepository) Delete(id string) error {
	result := r.db.Delete(&domain.Component{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
