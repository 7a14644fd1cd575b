package waitlist

import (
	"context"
	"errors"

	"github.com/akeren/launchlist/internal/models"
	apperrors "github.com/akeren/launchlist/pkg/errors"
	"gorm.io/gorm"
)

type WaitlistRepository interface {
	// CreateEntry persists a new waitlist entry. The unique index on email
	// is the sole duplicate check; a duplicate surfaces as a conflict error.
	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) error
	// CountEntries returns the current number of waitlist entries.
	CountEntries(ctx context.Context) (int64, error)
	// GetAllEntries returns every waitlist entry, newest first.
	GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository accepts a nil handle: the service starts even when
// the database was unreachable, and every operation then fails with a
// storage error instead of the process crashing.
func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) error {
	if wr.db == nil {
		return apperrors.NewDatabaseError("storage is unavailable", nil)
	}

	if err := wr.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateKey(err) {
			return apperrors.NewConflictError("This email is already on the waitlist", err)
		}
		return apperrors.NewDatabaseError("unable to create waitlist entry", err)
	}

	return nil
}

func (wr *waitlistRepository) CountEntries(ctx context.Context) (int64, error) {
	if wr.db == nil {
		return 0, apperrors.NewDatabaseError("storage is unavailable", nil)
	}

	var count int64
	if err := wr.db.WithContext(ctx).Model(&models.WaitlistEntry{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}

	return count, nil
}

func (wr *waitlistRepository) GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error) {
	if wr.db == nil {
		return nil, apperrors.NewDatabaseError("storage is unavailable", nil)
	}

	var entries []*models.WaitlistEntry

	// Secondary id ordering keeps the result stable when timestamps collide.
	if err := wr.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch waitlist entries", err)
	}

	return entries, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
