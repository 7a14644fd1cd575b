package waitlist

import (
	"net/http"

	"github.com/akeren/launchlist/config/router"
	"github.com/akeren/launchlist/internal/log"
	"github.com/akeren/launchlist/pkg/adminauth"
	apperrors "github.com/akeren/launchlist/pkg/errors"
	"gorm.io/gorm"
)

func NewWaitlistController(
	db *gorm.DB,
	logger *log.Logger,
	adminKey string,
) *router.RESTController {

	return router.NewRESTController(
		"WaitlistController",
		"/api/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			service := NewWaitlistService(logger, repository)

			adminGuard := adminauth.Middleware(logger, adminKey)

			rs.AddPostHandler(c, "", signupHandler(service))
			rs.AddGetHandler(c, "/count", countHandler(service))
			rs.AddGetHandler(c, "/all", getAllEntriesHandler(service), adminGuard)
			rs.AddRawGetHandler(c, "/export", exportHandler(service), adminGuard)
		},
	)
}

func signupHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateWaitlistEntryRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		meta := RequestMeta{
			IPAddress: ctx.ClientIP(),
			UserAgent: ctx.Request.UserAgent(),
		}

		result, err := service.Signup(ctx.Request.Context(), &req, meta)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		response := router.CreatedResult(nil, "You're on the waitlist")
		if result.Count != nil {
			response.WithCount(*result.Count)
		}
		return response
	}
}

func countHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		count, err := service.CountEntries(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Waitlist count retrieved successfully").WithCount(count)
	}
}

func getAllEntriesHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetAllEntries(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Waitlist entries retrieved successfully")
	}
}

func exportHandler(service WaitlistService) router.MiddlewareFunc {
	return func(ctx *router.RequestContext) {
		logger := router.GetLogger(ctx)

		data, err := service.ExportCSV(ctx.Request.Context())
		if err != nil {
			logger.Error("Failed to export waitlist entries", "error", err)
			status := apperrors.HTTPStatusCode(err)
			ctx.JSON(status, router.ErrorResult(status, apperrors.GetHumanReadableMessage(err), nil).ToJSON())
			return
		}

		ctx.Header("Content-Disposition", `attachment; filename="waitlist.csv"`)
		ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	}
}
