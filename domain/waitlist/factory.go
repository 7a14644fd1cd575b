package waitlist

import (
	"github.com/akeren/launchlist/config/router"
	"github.com/akeren/launchlist/internal/log"
	"gorm.io/gorm"
)

type WaitlistServiceFactory interface {
	CreateService() WaitlistService
	CreateController() *router.RESTController
}

type DefaultWaitlistServiceFactory struct {
	db       *gorm.DB
	logger   *log.Logger
	adminKey string
}

func NewWaitlistServiceFactory(db *gorm.DB, logger *log.Logger, adminKey string) WaitlistServiceFactory {
	return &DefaultWaitlistServiceFactory{
		db:       db,
		logger:   logger,
		adminKey: adminKey,
	}
}

func (f *DefaultWaitlistServiceFactory) CreateService() WaitlistService {
	repository := NewWaitlistRepository(f.db)
	return NewWaitlistService(f.logger, repository)
}

func (f *DefaultWaitlistServiceFactory) CreateController() *router.RESTController {
	return NewWaitlistController(f.db, f.logger, f.adminKey)
}
