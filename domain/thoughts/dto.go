package thoughts

import (
	"github.com/akeren/launchlist/internal/models"
	"github.com/akeren/launchlist/pkg/constants"
)

type CreateThoughtRequest struct {
	Email   string `json:"email" binding:"omitempty,max=255"`
	Message string `json:"message" binding:"required"`
	Source  string `json:"source" binding:"omitempty,max=255"`
}

// RequestMeta carries per-request attribution captured at the HTTP boundary.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type ThoughtResponse struct {
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	Source    string `json:"source"`
}

// ========================================
// Mappers
// ========================================

func ToThoughtResponse(entry *models.ThoughtEntry) ThoughtResponse {
	if entry == nil {
		return ThoughtResponse{}
	}
	return ThoughtResponse{
		Email:     entry.Email,
		Message:   entry.Message,
		CreatedAt: entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
		Source:    entry.Source,
	}
}
