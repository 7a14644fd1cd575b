package waitlist

import (
	"github.com/akeren/launchlist/internal/models"
	"github.com/akeren/launchlist/pkg/constants"
)

type CreateWaitlistEntryRequest struct {
	Email  string `json:"email" binding:"required,max=255"`
	Source string `json:"source" binding:"omitempty,max=255"`
}

// RequestMeta carries per-request attribution captured at the HTTP boundary.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// SignupResult reports the outcome of a signup. Count is the post-insert
// collection total; nil when the count read failed. It is informational
// only and not transactionally consistent with the insert.
type SignupResult struct {
	Count *int64
}

type WaitlistEntryResponse struct {
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	Source    string `json:"source"`
}

// ========================================
// Mappers
// ========================================

func ToWaitlistEntryResponse(entry *models.WaitlistEntry) WaitlistEntryResponse {
	if entry == nil {
		return WaitlistEntryResponse{}
	}
	return WaitlistEntryResponse{
		Email:     entry.Email,
		CreatedAt: entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
		Source:    entry.Source,
	}
}
