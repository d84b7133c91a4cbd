package domain

import "time"

// AuditEntry is one persisted record of an executed exchange directive.
type AuditEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	Description string    `json:"description"`
}
