package waitlist

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"time"

	"github.com/akeren/launchlist/internal/log"
	"github.com/akeren/launchlist/internal/models"
	"github.com/akeren/launchlist/pkg/constants"
	"github.com/akeren/launchlist/pkg/emailaddr"
	apperrors "github.com/akeren/launchlist/pkg/errors"
)

type WaitlistService interface {
	// Signup validates and normalizes the email, persists a new entry, and
	// returns the informational post-insert count.
	Signup(ctx context.Context, req *CreateWaitlistEntryRequest, meta RequestMeta) (*SignupResult, error)

	// CountEntries returns the exact current number of entries.
	CountEntries(ctx context.Context) (int64, error)

	// GetAllEntries returns every entry projected for admin listing, newest first.
	GetAllEntries(ctx context.Context) ([]WaitlistEntryResponse, error)

	// ExportCSV renders every entry as a CSV document, newest first.
	ExportCSV(ctx context.Context) ([]byte, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository) WaitlistService {
	return &waitlistService{logger: logger, repository: repository}
}

func (s *waitlistService) Signup(ctx context.Context, req *CreateWaitlistEntryRequest, meta RequestMeta) (*SignupResult, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("Signup received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	email := emailaddr.Normalize(req.Email)
	if email == "" {
		return nil, apperrors.NewInvalidRequestError("email is required", nil)
	}
	if !emailaddr.Valid(email) {
		return nil, apperrors.NewInvalidRequestError("invalid email format", nil)
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = constants.DefaultSignupSource
	}

	entry := &models.WaitlistEntry{
		Email:     email,
		Source:    source,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repository.CreateEntry(ctx, entry); err != nil {
		logger.Error("Failed to create waitlist entry", "error", err)
		return nil, err
	}

	// The count is read after the insert without a transaction; under
	// concurrent signups it may be stale by a small margin. The submission
	// already succeeded, so a failed count read is logged and omitted
	// rather than failing the request.
	result := &SignupResult{}
	count, err := s.repository.CountEntries(ctx)
	if err != nil {
		logger.Warn("Failed to read waitlist count after signup", "error", err)
		return result, nil
	}

	result.Count = &count
	return result, nil
}

func (s *waitlistService) CountEntries(ctx context.Context) (int64, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	count, err := s.repository.CountEntries(ctx)
	if err != nil {
		logger.Error("Failed to count waitlist entries", "error", err)
		return 0, err
	}

	return count, nil
}

func (s *waitlistService) GetAllEntries(ctx context.Context) ([]WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	entries, err := s.repository.GetAllEntries(ctx)
	if err != nil {
		logger.Error("Failed to get all waitlist entries", "error", err)
		return nil, err
	}

	responses := make([]WaitlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToWaitlistEntryResponse(entry))
	}

	return responses, nil
}

func (s *waitlistService) ExportCSV(ctx context.Context) ([]byte, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	entries, err := s.repository.GetAllEntries(ctx)
	if err != nil {
		logger.Error("Failed to export waitlist entries", "error", err)
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"email", "created_at", "source", "ip_address"}); err != nil {
		return nil, apperrors.NewInternalServerError("unable to write CSV header", err)
	}

	for _, entry := range entries {
		record := []string{
			entry.Email,
			entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
			entry.Source,
			entry.IPAddress,
		}
		if err := writer.Write(record); err != nil {
			return nil, apperrors.NewInternalServerError("unable to write CSV record", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, apperrors.NewInternalServerError("unable to flush CSV output", err)
	}

	return buf.Bytes(), nil
}
