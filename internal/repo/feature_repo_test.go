package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-votes-backend/internal/domain"
)

func newFeatureRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:featurerepo_%s?mode=memory&cache=shared", uuid.NewString())
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

func seedUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{Username: username}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return u
}

func seedFeature(t *testing.T, db *gorm.DB, userID int64, title string, createdAt time.Time) *domain.Feature {
	t.Helper()
	f := &domain.Feature{
		Title:       title,
		Description: "desc for " + title,
		UserID:      userID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("seed feature %q: %v", title, err)
	}
	return f
}

func seedVote(t *testing.T, db *gorm.DB, featureID, userID int64, voteType string) {
	t.Helper()
	if err := db.Create(&domain.Vote{FeatureID: featureID, UserID: userID, VoteType: voteType}).Error; err != nil {
		t.Fatalf("seed vote (%d,%d,%s): %v", featureID, userID, voteType, err)
	}
}

func TestCreateFeature_Success(t *testing.T) {
	db := newFeatureRepoDB(t)
	u := seedUser(t, db, "alice")

	f, err := CreateFeature(context.Background(), db, "Dark mode", "Add dark theme", u.ID)
	if err != nil {
		t.Fatalf("CreateFeature: %v", err)
	}
	if f.ID == 0 || f.Title != "Dark mode" || f.UserID != u.ID {
		t.Fatalf("unexpected feature: %+v", f)
	}
	if f.CreatedAt.IsZero() || f.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set: %+v", f)
	}
}

func TestCreateFeature_UnknownAuthor_FKError(t *testing.T) {
	db := newFeatureRepoDB(t)

	if _, err := CreateFeature(context.Background(), db, "t", "d", 999); err == nil {
		t.Fatalf("expected FK violation for unknown author")
	}
}

func TestGetFeature_NotFound(t *testing.T) {
	db := newFeatureRepoDB(t)
	_, err := GetFeature(context.Background(), db, 42)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListFeaturesWithVotes_RanksByScoreThenRecency(t *testing.T) {
	db := newFeatureRepoDB(t)
	author := seedUser(t, db, "author")

	voters := make([]*domain.User, 0, 4)
	for i := 0; i < 4; i++ {
		voters = append(voters, seedUser(t, db, fmt.Sprintf("voter%d", i)))
	}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fLow := seedFeature(t, db, author.ID, "low", base)               // score -1
	fMid := seedFeature(t, db, author.ID, "mid", base.Add(time.Hour)) // score 2
	fTop := seedFeature(t, db, author.ID, "top", base)               // score 3

	for _, v := range voters[:3] {
		seedVote(t, db, fTop.ID, v.ID, domain.VoteLike)
	}
	seedVote(t, db, fMid.ID, voters[0].ID, domain.VoteLike)
	seedVote(t, db, fMid.ID, voters[1].ID, domain.VoteLike)
	seedVote(t, db, fLow.ID, voters[0].ID, domain.VoteDislike)

	out, err := ListFeaturesWithVotes(context.Background(), db, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out))
	}
	wantOrder := []string{"top", "mid", "low"}
	for i, w := range wantOrder {
		if out[i].Title != w {
			t.Fatalf("rank %d = %q; want %q (full: %+v)", i, out[i].Title, w, out)
		}
	}
	if out[0].Likes != 3 || out[0].Dislikes != 0 || out[0].Score() != 3 {
		t.Fatalf("top aggregates wrong: %+v", out[0])
	}
	if out[2].Score() != -1 {
		t.Fatalf("low score = %d; want -1", out[2].Score())
	}
	if out[0].Username != "author" {
		t.Fatalf("author username not joined: %+v", out[0])
	}
}

func TestListFeaturesWithVotes_TieBreakNewestFirst(t *testing.T) {
	db := newFeatureRepoDB(t)
	u := seedUser(t, db, "alice")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seedFeature(t, db, u.ID, "older", base)
	seedFeature(t, db, u.ID, "newer", base.Add(time.Minute))

	out, err := ListFeaturesWithVotes(context.Background(), db, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 || out[0].Title != "newer" || out[1].Title != "older" {
		t.Fatalf("tie-break order wrong: %+v", out)
	}
}

func TestListFeaturesWithVotes_EmptyBoard(t *testing.T) {
	db := newFeatureRepoDB(t)
	out, err := ListFeaturesWithVotes(context.Background(), db, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestGetFeatureWithVotes_UserVote(t *testing.T) {
	db := newFeatureRepoDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	f := seedFeature(t, db, alice.ID, "voted", time.Now().UTC())
	seedVote(t, db, f.ID, bob.ID, domain.VoteDislike)

	// Requesting as bob → his own vote comes back.
	got, err := GetFeatureWithVotes(context.Background(), db, f.ID, bob.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserVote == nil || *got.UserVote != domain.VoteDislike {
		t.Fatalf("expected user_vote=dislike, got %v", got.UserVote)
	}
	if got.Dislikes != 1 || got.Likes != 0 {
		t.Fatalf("aggregates wrong: %+v", got)
	}

	// No requesting user (0) → NULL user_vote even though votes exist.
	got, err = GetFeatureWithVotes(context.Background(), db, f.ID, 0)
	if err != nil {
		t.Fatalf("get anon: %v", err)
	}
	if got.UserVote != nil {
		t.Fatalf("expected nil user_vote for anonymous, got %v", *got.UserVote)
	}
}

func TestGetFeatureWithVotes_NotFound(t *testing.T) {
	db := newFeatureRepoDB(t)
	_, err := GetFeatureWithVotes(context.Background(), db, 77, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateFeature_OverwritesAndRefreshesUpdatedAt(t *testing.T) {
	db := newFeatureRepoDB(t)
	u := seedUser(t, db, "alice")
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := seedFeature(t, db, u.ID, "before", created)

	if err := UpdateFeature(context.Background(), db, f.ID, "after", "new desc"); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := GetFeature(context.Background(), db, f.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Title != "after" || got.Description != "new desc" {
		t.Fatalf("fields not overwritten: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at changed: %v", got.CreatedAt)
	}
	if !got.UpdatedAt.After(created) {
		t.Fatalf("updated_at not refreshed: %v", got.UpdatedAt)
	}
}

func TestUpdateFeature_Missing_ReturnsNotFound(t *testing.T) {
	db := newFeatureRepoDB(t)
	err := UpdateFeature(context.Background(), db, 404, "t", "d")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteFeature_CascadesVotes(t *testing.T) {
	db := newFeatureRepoDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	f := seedFeature(t, db, alice.ID, "doomed", time.Now().UTC())
	seedVote(t, db, f.ID, alice.ID, domain.VoteLike)
	seedVote(t, db, f.ID, bob.ID, domain.VoteDislike)

	if err := DeleteFeature(context.Background(), db, f.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	n, err := CountVotesForFeature(context.Background(), db, f.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 votes after cascade, got %d", n)
	}
}

func TestDeleteFeature_Missing_ReturnsNotFound(t *testing.T) {
	db := newFeatureRepoDB(t)
	err := DeleteFeature(context.Background(), db, 404)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
