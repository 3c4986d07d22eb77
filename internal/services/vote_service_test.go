package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/tbourn/go-votes-backend/internal/domain"
)

// castFixture seeds a user and a feature to vote on and returns the wired
// services plus the ids.
func castFixture(t *testing.T) (*VoteService, *gorm.DB, int64, int64) {
	t.Helper()
	db := newFeatureSvcDB(t)
	author := seedSvcUser(t, db, "author")
	voter := seedSvcUser(t, db, "voter")

	featureSvc := &FeatureService{DB: db}
	f, _, err := featureSvc.Create(context.Background(), CreateFeatureInput{
		Title: "votable", Description: "d", UserID: author.ID,
	})
	if err != nil {
		t.Fatalf("seed feature: %v", err)
	}
	return &VoteService{DB: db}, db, f.ID, voter.ID
}

func TestCast_InvalidVoteType(t *testing.T) {
	svc, _, fid, uid := castFixture(t)

	for _, vt := range []string{"", "LIKE", "upvote", "likes"} {
		_, _, err := svc.Cast(context.Background(), fid, uid, vt)
		if !errors.Is(err, ErrInvalidVoteType) {
			t.Fatalf("Cast(%q): expected ErrInvalidVoteType, got %v", vt, err)
		}
	}
}

func TestCast_FeatureNotFound(t *testing.T) {
	svc, _, _, uid := castFixture(t)
	_, _, err := svc.Cast(context.Background(), 404, uid, domain.VoteLike)
	if !errors.Is(err, ErrFeatureNotFound) {
		t.Fatalf("expected ErrFeatureNotFound, got %v", err)
	}
}

func TestCast_UserNotFound(t *testing.T) {
	svc, _, fid, _ := castFixture(t)
	_, _, err := svc.Cast(context.Background(), fid, 404, domain.VoteLike)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCast_NewVote_Created(t *testing.T) {
	svc, _, fid, uid := castFixture(t)

	v, created, err := svc.Cast(context.Background(), fid, uid, domain.VoteLike)
	if err != nil {
		t.Fatalf("cast: %v", err)
	}
	if !created {
		t.Fatalf("first cast should create")
	}
	if v.ID == 0 || v.FeatureID != fid || v.UserID != uid || v.VoteType != domain.VoteLike {
		t.Fatalf("unexpected vote: %+v", v)
	}
}

func TestCast_FlipOverwritesInPlace(t *testing.T) {
	svc, db, fid, uid := castFixture(t)
	ctx := context.Background()

	first, _, err := svc.Cast(ctx, fid, uid, domain.VoteLike)
	if err != nil {
		t.Fatalf("cast: %v", err)
	}

	flipped, created, err := svc.Cast(ctx, fid, uid, domain.VoteDislike)
	if err != nil {
		t.Fatalf("flip: %v", err)
	}
	if created {
		t.Fatalf("flip must overwrite, not create")
	}
	if flipped.ID != first.ID {
		t.Fatalf("vote id changed on flip: %d -> %d", first.ID, flipped.ID)
	}
	if flipped.VoteType != domain.VoteDislike {
		t.Fatalf("vote_type = %q; want dislike", flipped.VoteType)
	}

	// One row per (feature, user), always.
	var n int64
	if err := db.Model(&domain.Vote{}).Where("feature_id = ? AND user_id = ?", fid, uid).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("vote rows = %d; want 1", n)
	}
}

// Casting the type already recorded is accepted as a no-op overwrite; the
// vote stays in place. It never turns into a removal.
func TestCast_SameTypeIsNoOpNotRemoval(t *testing.T) {
	svc, _, fid, uid := castFixture(t)
	ctx := context.Background()

	first, _, err := svc.Cast(ctx, fid, uid, domain.VoteLike)
	if err != nil {
		t.Fatalf("cast: %v", err)
	}
	again, created, err := svc.Cast(ctx, fid, uid, domain.VoteLike)
	if err != nil {
		t.Fatalf("recast: %v", err)
	}
	if created || again.ID != first.ID || again.VoteType != domain.VoteLike {
		t.Fatalf("recast changed state: created=%v %+v", created, again)
	}
}

func TestRemove_DeletesVote(t *testing.T) {
	svc, _, fid, uid := castFixture(t)
	ctx := context.Background()

	if _, _, err := svc.Cast(ctx, fid, uid, domain.VoteDislike); err != nil {
		t.Fatalf("cast: %v", err)
	}
	if err := svc.Remove(ctx, fid, uid); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// Slot is empty again; the next cast creates.
	_, created, err := svc.Cast(ctx, fid, uid, domain.VoteLike)
	if err != nil || !created {
		t.Fatalf("cast after remove: created=%v err=%v", created, err)
	}
}

func TestRemove_NotFound(t *testing.T) {
	svc, _, fid, uid := castFixture(t)
	if err := svc.Remove(context.Background(), fid, uid); !errors.Is(err, ErrVoteNotFound) {
		t.Fatalf("expected ErrVoteNotFound, got %v", err)
	}
}
