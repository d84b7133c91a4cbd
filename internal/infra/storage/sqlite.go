package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"rate_relay/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage persists the audit trail of executed exchange directives.
type Storage struct {
	db *gorm.DB
}

// NewStorage opens (creating if needed) the SQLite database at dbPath.
func NewStorage(dbPath string) (*Storage, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create DB directory: %w", err)
	}

	// Pure Go SQLite
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&domain.AuditEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Storage{db: db}, nil
}

// Append records one executed directive. The caller treats failures as
// non-fatal, a broken audit trail must not take the chat down.
func (s *Storage) Append(ctx context.Context, description string) error {
	entry := &domain.AuditEntry{Description: description}
	return s.db.WithContext(ctx).Create(entry).Error
}

// Recent returns up to limit entries, newest first.
func (s *Storage) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []domain.AuditEntry
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
