// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Vote model.
//
// Error semantics:
//   - A duplicate vote (same feature_id,user_id) relies on the database
//     unique constraint and is returned as a raw DB error; the service layer
//     avoids it by checking for an existing row inside its transaction.
//   - When a vote is not found, functions return gorm.ErrRecordNotFound.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-votes-backend/internal/domain"
)

// GetVote fetches the vote for (featureID, userID), or ErrNotFound if the
// pair has no vote. At most one row can exist per pair (unique index).
func GetVote(ctx context.Context, db *gorm.DB, featureID, userID int64) (*domain.Vote, error) {
	var v domain.Vote
	err := db.WithContext(ctx).
		Where("feature_id = ? AND user_id = ?", featureID, userID).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVote inserts a new vote row. voteType must be "like" or "dislike"
// (also enforced by the CHECK constraint).
func CreateVote(ctx context.Context, db *gorm.DB, featureID, userID int64, voteType string) (*domain.Vote, error) {
	v := &domain.Vote{
		FeatureID: featureID,
		UserID:    userID,
		VoteType:  voteType,
	}
	if err := db.WithContext(ctx).Create(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVoteType overwrites vote_type on the existing row for the pair,
// keeping the row id stable. Returns ErrNotFound if no such vote exists.
func UpdateVoteType(ctx context.Context, db *gorm.DB, featureID, userID int64, voteType string) error {
	res := db.WithContext(ctx).
		Model(&domain.Vote{}).
		Where("feature_id = ? AND user_id = ?", featureID, userID).
		Update("vote_type", voteType)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteVote removes the vote for (featureID, userID). Returns ErrNotFound
// if the pair has no vote.
func DeleteVote(ctx context.Context, db *gorm.DB, featureID, userID int64) error {
	res := db.WithContext(ctx).
		Where("feature_id = ? AND user_id = ?", featureID, userID).
		Delete(&domain.Vote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountVotesForFeature returns the number of vote rows referencing the
// feature. Useful for verifying cascade deletion in tests and ops checks.
func CountVotesForFeature(ctx context.Context, db *gorm.DB, featureID int64) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Vote{}).
		Where("feature_id = ?", featureID).
		Count(&n).Error
	return n, err
}
