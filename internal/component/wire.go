//go:build wireinject
// +build wireinject

package component

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	activitydomain "github.com/labtrack/labtrack/internal/activity/domain"
	activityrepo "github.com/labtrack/labtrack/internal/activity/repository"
	"github.com/labtrack/labtrack/internal/component/delivery/http"
	"github.com/labtrack/labtrack/internal/component/domain"
	"github.com/labtrack/labtrack/internal/component/repository"
	userdomain "github.com/labtrack/labtrack/internal/user/domain"
	userrepo "github.com/labtrack/labtrack/internal/user/repository"
	"github.com/labtrack/labtrack/kafka"
)

// ProvideComponentRepository provides the component repository wrapped
// in the tracing decorator
func ProvideComponentRepository(db *gorm.DB) domain.ComponentRepository {
	return repository.NewTracingComponentRepository(repository.NewGormComponentRepository(db))
}

// ProvideLogRepository provides the activity log repository
func ProvideLogRepository(db *gorm.DB) activitydomain.LogRepository {
	return activityrepo.NewGormLogRepository(db)
}

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepo.NewGormUserRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideComponentRepository,
	ProvideLogRepository,
	ProvideUserRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*http.ComponentHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewComponentHandler,
	)
	return nil, nil
}
