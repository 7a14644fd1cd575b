package router

import (
	"net/http"

	"github.com/akeren/launchlist/internal/log"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerKeyForContext); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	baseLogger := log.NewLoggerWithJSONOutput()
	return baseLogger.WithCorrelationID(ctx.Request.Context())
}

func OKResult(data any, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
	}
}

func CreatedResult(data any, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusCreated,
		Data:       data,
		Message:    message,
	}
}

func BadRequestResult(message string, payload any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusBadRequest,
		Data:       payload,
		Message:    message,
	}
}

func UnauthorizedResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	}
}

func NotFoundResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func InternalServerErrorResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

func ConflictResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusConflict,
		Message:    message,
	}
}

func ErrorResult(statusCode int, message string, data any) *ServiceResult {
	return &ServiceResult{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
	}
}
