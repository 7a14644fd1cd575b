package thoughts

import (
	"context"

	"github.com/akeren/launchlist/internal/models"
	apperrors "github.com/akeren/launchlist/pkg/errors"
	"gorm.io/gorm"
)

type ThoughtRepository interface {
	// CreateEntry persists a new thought. Emails are not unique here;
	// many thoughts may share or omit an address.
	CreateEntry(ctx context.Context, entry *models.ThoughtEntry) error
	// CountEntries returns the current number of thoughts.
	CountEntries(ctx context.Context) (int64, error)
	// GetAllEntries returns every thought, newest first.
	GetAllEntries(ctx context.Context) ([]*models.ThoughtEntry, error)
}

type thoughtRepository struct {
	db *gorm.DB
}

// NewThoughtRepository accepts a nil handle: the service starts even when
// the database was unreachable, and every operation then fails with a
// storage error instead of the process crashing.
func NewThoughtRepository(db *gorm.DB) ThoughtRepository {
	return &thoughtRepository{db: db}
}

func (tr *thoughtRepository) CreateEntry(ctx context.Context, entry *models.ThoughtEntry) error {
	if tr.db == nil {
		return apperrors.NewDatabaseError("storage is unavailable", nil)
	}

	if err := tr.db.WithContext(ctx).Create(entry).Error; err != nil {
		return apperrors.NewDatabaseError("unable to create thought", err)
	}

	return nil
}

func (tr *thoughtRepository) CountEntries(ctx context.Context) (int64, error) {
	if tr.db == nil {
		return 0, apperrors.NewDatabaseError("storage is unavailable", nil)
	}

	var count int64
	if err := tr.db.WithContext(ctx).Model(&models.ThoughtEntry{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count thoughts", err)
	}

	return count, nil
}

func (tr *thoughtRepository) GetAllEntries(ctx context.Context) ([]*models.ThoughtEntry, error) {
	if tr.db == nil {
		return nil, apperrors.NewDatabaseError("storage is unavailable", nil)
	}

	var entries []*models.ThoughtEntry

	// Secondary id ordering keeps the result stable when timestamps collide.
	if err := tr.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch thoughts", err)
	}

	return entries, nil
}
