package router

import (
	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

// ServiceResult is the JSON envelope every handler resolves to. Count is
// carried separately from Data because the submission and count endpoints
// expose it as a top-level field.
type ServiceResult struct {
	StatusCode int
	Data       any
	Message    string
	Count      *int64
}

type HandlerFunction func(*RequestContext) *ServiceResult

type RESTController struct {
	name         string
	mountPoint   string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}

// ToJSON renders the envelope. Data and count are omitted entirely when
// unset, so unauthorized responses leak no field shape.
func (result *ServiceResult) ToJSON() gin.H {
	out := gin.H{
		"success": result.IsSuccess(),
		"message": result.Message,
	}
	if result.Data != nil {
		out["data"] = result.Data
	}
	if result.Count != nil {
		out["count"] = *result.Count
	}
	return out
}

func (result *ServiceResult) IsSuccess() bool {
	return result.StatusCode >= 200 && result.StatusCode < 300
}

func (result *ServiceResult) IsError() bool {
	return result.StatusCode >= 400
}

// WithCount attaches an informational record count to the result.
func (result *ServiceResult) WithCount(count int64) *ServiceResult {
	result.Count = &count
	return result
}
