package thoughts

import (
	"net/http"

	"github.com/akeren/launchlist/config/router"
	"github.com/akeren/launchlist/internal/log"
	"github.com/akeren/launchlist/pkg/adminauth"
	apperrors "github.com/akeren/launchlist/pkg/errors"
	"gorm.io/gorm"
)

func NewThoughtController(
	db *gorm.DB,
	logger *log.Logger,
	adminKey string,
) *router.RESTController {

	return router.NewRESTController(
		"ThoughtController",
		"/api/thoughts",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewThoughtRepository(db)
			service := NewThoughtService(logger, repository)

			adminGuard := adminauth.Middleware(logger, adminKey)

			rs.AddPostHandler(c, "", submitHandler(service))
			rs.AddGetHandler(c, "/count", countHandler(service))
			rs.AddGetHandler(c, "/all", getAllEntriesHandler(service), adminGuard)
			rs.AddRawGetHandler(c, "/export", exportHandler(service), adminGuard)
		},
	)
}

func submitHandler(service ThoughtService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateThoughtRequest

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

		if err := service.Submit(ctx.Request.Context(), &req, meta); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(nil, "Thanks for sharing your thoughts")
	}
}

func countHandler(service ThoughtService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		count, err := service.CountEntries(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Thought count retrieved successfully").WithCount(count)
	}
}

func getAllEntriesHandler(service ThoughtService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetAllEntries(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Thoughts retrieved successfully")
	}
}

func exportHandler(service ThoughtService) router.MiddlewareFunc {
	return func(ctx *router.RequestContext) {
		logger := router.GetLogger(ctx)

		data, err := service.ExportCSV(ctx.Request.Context())
		if err != nil {
			logger.Error("Failed to export thoughts", "error", err)
			status := apperrors.HTTPStatusCode(err)
			ctx.JSON(status, router.ErrorResult(status, apperrors.GetHumanReadableMessage(err), nil).ToJSON())
			return
		}

		ctx.Header("Content-Disposition", `attachment; filename="thoughts.csv"`)
		ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	}
}
