package domain

import (
	"github.com/akeren/launchlist/config"
	"github.com/akeren/launchlist/domain/monitoring"
	"github.com/akeren/launchlist/domain/thoughts"
	"github.com/akeren/launchlist/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	monitoringFactory := monitoring.NewMonitoringControllerFactory(appConfig.DB, appConfig.Logger, appConfig.Cache)
	waitlistFactory := waitlist.NewWaitlistServiceFactory(appConfig.DB, appConfig.Logger, appConfig.Config.AdminKey)
	thoughtsFactory := thoughts.NewThoughtServiceFactory(appConfig.DB, appConfig.Logger, appConfig.Config.AdminKey)

	appConfig.RouterService.MountController(monitoringFactory.CreateController())
	appConfig.RouterService.MountController(waitlistFactory.CreateController())
	appConfig.RouterService.MountController(thoughtsFactory.CreateController())
}
