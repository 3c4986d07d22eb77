package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-votes-backend/internal/domain"
)

func newStatsDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:statsrepo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestStats_EmptyBoard(t *testing.T) {
	db := newStatsDB(t)

	s, err := Stats(context.Background(), db)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if s.Users != 0 || s.Features != 0 || s.Votes != 0 {
		t.Fatalf("expected zero counts, got %+v", s)
	}
	if s.LastActivity != nil {
		t.Fatalf("expected nil LastActivity on empty board, got %v", *s.LastActivity)
	}
}

func TestStats_CountsAndLastActivity(t *testing.T) {
	db := newStatsDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	latest := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seedFeature(t, db, alice.ID, "first", old)
	f := seedFeature(t, db, alice.ID, "second", latest)
	seedVote(t, db, f.ID, bob.ID, domain.VoteLike)

	s, err := Stats(context.Background(), db)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if s.Users != 2 || s.Features != 2 || s.Votes != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.LastActivity == nil || !s.LastActivity.Equal(latest) {
		t.Fatalf("LastActivity = %v; want %v", s.LastActivity, latest)
	}
}

func TestStats_ErrorWhenSchemaMissing(t *testing.T) {
	dsn := fmt.Sprintf("file:statsempty_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if _, err := Stats(context.Background(), db); err == nil {
		t.Fatalf("expected error when tables are missing")
	}
}
