package models

import "time"

// WaitlistEntry is an email signup. Entries are created once and never
// updated or deleted by the service; the unique index on Email is the sole
// source of truth for duplicate detection.
type WaitlistEntry struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"not null;uniqueIndex"`
	Source    string    `gorm:"not null"`
	IPAddress string
	UserAgent string
	CreatedAt time.Time `gorm:"not null;index"`
}
