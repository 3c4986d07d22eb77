// Package services – VoteService
//
// This file implements the VoteService, which governs the single vote slot
// each user holds per feature. The slot has three states: absent, liked,
// disliked. Cast moves absent→liked/disliked or flips liked↔disliked by
// overwriting vote_type on the existing row (same id, new type); it never
// transitions to absent. Removal is only ever explicit via Remove. Casting
// the type already recorded is accepted as a no-op overwrite, not rejected —
// the like-again-to-remove toggle is a client-side behavior, deliberately
// not an API one.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-votes-backend/internal/domain"
	"github.com/tbourn/go-votes-backend/internal/repo"
)

// VoteService implements the use-cases around votes.
type VoteService struct {
	// DB is the database handle used for all vote operations.
	DB *gorm.DB
}

// Cast records voteType for (featureID, userID), upserting against the
// (feature_id, user_id) uniqueness invariant. The second return value
// reports whether a new row was created (false means an existing vote was
// overwritten in place), so the handler can pick 201 vs 200.
//
// Semantics and validation:
//   - voteType must be "like" or "dislike"; otherwise ErrInvalidVoteType.
//   - featureID must exist; otherwise ErrFeatureNotFound.
//   - userID must exist; otherwise ErrUserNotFound.
//
// Concurrency & atomicity:
//   - The existence checks, the existing-vote lookup, and the write run in
//     one transaction; the unique index backstops any race the lookup misses.
func (s *VoteService) Cast(ctx context.Context, featureID, userID int64, voteType string) (v *domain.Vote, created bool, err error) {
	if voteType != domain.VoteLike && voteType != domain.VoteDislike {
		return nil, false, ErrInvalidVoteType
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetFeature(ctx, tx, featureID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFeatureNotFound
			}
			return err
		}
		if _, err := repo.GetUser(ctx, tx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		existing, err := repo.GetVote(ctx, tx, featureID, userID)
		if err == nil {
			// Overwrite in place, keeping the row id stable.
			if err := repo.UpdateVoteType(ctx, tx, featureID, userID, voteType); err != nil {
				return err
			}
			existing.VoteType = voteType
			v = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		nv, err := repo.CreateVote(ctx, tx, featureID, userID, voteType)
		if err != nil {
			return err
		}
		v = nv
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return v, created, nil
}

// Remove deletes the vote for (featureID, userID), or returns
// ErrVoteNotFound if the pair has no vote.
func (s *VoteService) Remove(ctx context.Context, featureID, userID int64) error {
	err := repo.DeleteVote(ctx, s.DB, featureID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrVoteNotFound
	}
	return err
}
