package thoughts

import (
	"github.com/akeren/launchlist/config/router"
	"github.com/akeren/launchlist/internal/log"
	"gorm.io/gorm"
)

type ThoughtServiceFactory interface {
	CreateService() ThoughtService
	CreateController() *router.RESTController
}

type DefaultThoughtServiceFactory struct {
	db       *gorm.DB
	logger   *log.Logger
	adminKey string
}

func NewThoughtServiceFactory(db *gorm.DB, logger *log.Logger, adminKey string) ThoughtServiceFactory {
	return &DefaultThoughtServiceFactory{
		db:       db,
		logger:   logger,
		adminKey: adminKey,
	}
}

func (f *DefaultThoughtServiceFactory) CreateService() ThoughtService {
	repository := NewThoughtRepository(f.db)
	return NewThoughtService(f.logger, repository)
}

func (f *DefaultThoughtServiceFactory) CreateController() *router.RESTController {
	return NewThoughtController(f.db, f.logger, f.adminKey)
}
