package models

import "time"

// ThoughtEntry is a free-text feedback record. Email is optional and not
// unique; many thoughts may share or omit an address. Entries are immutable
// once created.
type ThoughtEntry struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"index"`
	Message   string    `gorm:"not null"`
	Source    string    `gorm:"not null"`
	IPAddress string
	UserAgent string
	CreatedAt time.Time `gorm:"not null;index"`
}
