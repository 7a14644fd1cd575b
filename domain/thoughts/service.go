package thoughts

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akeren/launchlist/internal/log"
	"github.com/akeren/launchlist/internal/models"
	"github.com/akeren/launchlist/pkg/constants"
	"github.com/akeren/launchlist/pkg/emailaddr"
	apperrors "github.com/akeren/launchlist/pkg/errors"
)

type ThoughtService interface {
	// Submit validates the message, optionally normalizes and validates the
	// email, and persists a new thought.
	Submit(ctx context.Context, req *CreateThoughtRequest, meta RequestMeta) error

	// CountEntries returns the exact current number of thoughts.
	CountEntries(ctx context.Context) (int64, error)

	// GetAllEntries returns every thought projected for admin listing, newest first.
	GetAllEntries(ctx context.Context) ([]ThoughtResponse, error)

	// ExportCSV renders every thought as a CSV document, newest first.
	// Messages are free text, so every field goes through RFC 4180 quoting.
	ExportCSV(ctx context.Context) ([]byte, error)
}

type thoughtService struct {
	logger     *log.Logger
	repository ThoughtRepository
}

func NewThoughtService(logger *log.Logger, repository ThoughtRepository) ThoughtService {
	return &thoughtService{logger: logger, repository: repository}
}

func (s *thoughtService) Submit(ctx context.Context, req *CreateThoughtRequest, meta RequestMeta) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("Submit received empty request")
		return apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	// Length is counted in runes, not bytes, so multibyte scripts are not
	// over-credited.
	message := strings.TrimSpace(req.Message)
	if utf8.RuneCountInString(message) < constants.MinThoughtMessageLength {
		return apperrors.NewInvalidRequestError(
			fmt.Sprintf("message must be at least %d characters", constants.MinThoughtMessageLength),
			nil,
		)
	}

	// Email is optional. When present it must be well formed, but unlike the
	// waitlist there is no uniqueness rule.
	email := emailaddr.Normalize(req.Email)
	if email != "" && !emailaddr.Valid(email) {
		return apperrors.NewInvalidRequestError("invalid email format", nil)
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = constants.DefaultSignupSource
	}

	entry := &models.ThoughtEntry{
		Email:     email,
		Message:   message,
		Source:    source,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repository.CreateEntry(ctx, entry); err != nil {
		logger.Error("Failed to create thought", "error", err)
		return err
	}

	return nil
}

func (s *thoughtService) CountEntries(ctx context.Context) (int64, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	count, err := s.repository.CountEntries(ctx)
	if err != nil {
		logger.Error("Failed to count thoughts", "error", err)
		return 0, err
	}

	return count, nil
}

func (s *thoughtService) GetAllEntries(ctx context.Context) ([]ThoughtResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	entries, err := s.repository.GetAllEntries(ctx)
	if err != nil {
		logger.Error("Failed to get all thoughts", "error", err)
		return nil, err
	}

	responses := make([]ThoughtResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToThoughtResponse(entry))
	}

	return responses, nil
}

func (s *thoughtService) ExportCSV(ctx context.Context) ([]byte, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	entries, err := s.repository.GetAllEntries(ctx)
	if err != nil {
		logger.Error("Failed to export thoughts", "error", err)
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"email", "message", "created_at", "source"}); err != nil {
		return nil, apperrors.NewInternalServerError("unable to write CSV header", err)
	}

	for _, entry := range entries {
		record := []string{
			entry.Email,
			entry.Message,
			entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
			entry.Source,
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
