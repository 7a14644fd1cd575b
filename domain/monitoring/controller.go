package monitoring

import (
	"context"
	"net/http"
	"time"

	"github.com/akeren/launchlist/config/router"
	"github.com/akeren/launchlist/internal/log"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Cache interface {
	Ping(ctx context.Context) error
}

type ReadinessStatus struct {
	Database int `json:"database"` // 1 = healthy, 0 = unhealthy/not configured
	Cache    int `json:"cache"`    // 1 = healthy, 0 = unhealthy/not configured
	Uptime   int `json:"uptime"`   // uptime in seconds
}

type MonitoringController struct {
	db        *gorm.DB
	logger    *log.Logger
	cache     Cache
	startTime time.Time
}

func NewMonitoringController(db *gorm.DB, logger *log.Logger, cache Cache) *router.RESTController {
	ctrl := &MonitoringController{
		db:        db,
		logger:    logger,
		cache:     cache,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {

			// Liveness must stay independent of storage: it never touches
			// the database or the cache.
			routerService.AddRawGetHandler(controller, "health", func(c *router.RequestContext) {
				c.JSON(http.StatusOK, gin.H{
					"status":  "ok",
					"service": "launchlist",
					"uptime":  int(time.Since(ctrl.startTime).Seconds()),
				})
			})

			routerService.AddGetHandler(controller, "readiness", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.readiness(routerService, c)
			})
		},
	)
}

func (ctrl *MonitoringController) readiness(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Info("Readiness endpoint called")
	status := ctrl.performReadinessChecks(c.Request.Context(), logger)

	return router.OKResult(status, "Readiness check completed")
}

func (ctrl *MonitoringController) performReadinessChecks(ctx context.Context, logger *log.Logger) ReadinessStatus {
	status := ReadinessStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	if ctrl.checkDatabase(ctx) {
		status.Database = 1
		logger.Info("Database readiness check passed")
	} else {
		status.Database = 0
		logger.Error("Database readiness check failed")
	}

	if ctrl.cache != nil {
		if ctrl.cache.Ping(ctx) == nil {
			status.Cache = 1
			logger.Info("Cache readiness check passed")
		} else {
			status.Cache = 0
			logger.Error("Cache readiness check failed")
		}
	} else {
		status.Cache = 0 // Cache not configured
		logger.Info("Cache not configured, cache readiness check skipped")
	}

	return status
}

func (ctrl *MonitoringController) checkDatabase(ctx context.Context) bool {
	if ctrl.db == nil {
		return false
	}

	sqlDB, err := ctrl.db.DB()
	if err != nil {
		return false
	}

	return sqlDB.PingContext(ctx) == nil
}
