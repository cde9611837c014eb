//go:build wireinject
// +build wireinject

package activity

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/activity/delivery/http"
	"github.com/labtrack/labtrack/internal/activity/domain"
	"github.com/labtrack/labtrack/internal/activity/repository"
)

// ProvideLogRepository provides the activity log repository
func ProvideLogRepository(db *gorm.DB) domain.LogRepository {
	return repository.NewGormLogRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideLogRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.ActivityHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewActivityHandler,
	)
	return nil, nil
}
