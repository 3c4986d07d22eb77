// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// by the ops-facing stats endpoint. Each function is context-aware and safe
// to call from services or handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-votes-backend/internal/domain"
)

// CorpusStats holds whole-table aggregates for the ops surface.
type CorpusStats struct {
	Users        int64      `json:"users"`
	Features     int64      `json:"features"`
	Votes        int64      `json:"votes"`
	LastActivity *time.Time `json:"last_activity"`
}

// Stats returns row counts for users, features, and votes, plus the most
// recent feature UpdatedAt as a coarse last-activity marker. When the board
// is empty, counts are 0 and LastActivity is nil.
func Stats(ctx context.Context, db *gorm.DB) (*CorpusStats, error) {
	var s CorpusStats

	if err := db.WithContext(ctx).Model(&domain.User{}).Count(&s.Users).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&domain.Feature{}).Count(&s.Features).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&domain.Vote{}).Count(&s.Votes).Error; err != nil {
		return nil, err
	}
	if s.Features == 0 {
		return &s, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	err := db.WithContext(ctx).
		Model(&domain.Feature{}).
		Select("updated_at").
		Order("updated_at DESC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	s.LastActivity = &row.UpdatedAt
	return &s, nil
}
