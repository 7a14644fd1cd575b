package monitoring

import (
	"github.com/akeren/launchlist/config/router"
	"github.com/akeren/launchlist/internal/log"
	"gorm.io/gorm"
)

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	db     *gorm.DB
	logger *log.Logger
	cache  Cache
}

func NewMonitoringControllerFactory(db *gorm.DB, logger *log.Logger, cache Cache) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{
		db:     db,
		logger: logger,
		cache:  cache,
	}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.db, f.logger, f.cache)
}
