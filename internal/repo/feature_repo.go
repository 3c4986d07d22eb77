// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Feature
// model, including the vote-aggregation read queries.
//
// The aggregation query mirrors the ranking contract exactly: likes and
// dislikes are correlated COUNT subselects, user_vote is a scalar subselect
// against the requesting user, and ordering is by descending score
// (likes - dislikes) with descending creation time breaking ties. The
// ordering is computed on every call — it changes with every vote, so it
// must never be cached or materialized.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-votes-backend/internal/domain"
)

// featureSelect is the shared augmented-row projection. The user_vote
// subselect is bound to the requesting user id; callers pass 0 when no
// requesting user was supplied, which matches no row (ids start at 1) and
// yields NULL, the "no vote" representation on the wire.
const featureSelect = `
SELECT
  f.id,
  f.title,
  f.description,
  f.user_id,
  u.username,
  f.created_at,
  f.updated_at,
  (SELECT COUNT(*) FROM votes v WHERE v.feature_id = f.id AND v.vote_type = 'like') AS likes,
  (SELECT COUNT(*) FROM votes v WHERE v.feature_id = f.id AND v.vote_type = 'dislike') AS dislikes,
  (SELECT v.vote_type FROM votes v WHERE v.feature_id = f.id AND v.user_id = ?) AS user_vote
FROM features f
JOIN users u ON u.id = f.user_id`

// ListFeaturesWithVotes returns every feature joined with its author's
// username and augmented with computed likes, dislikes, and user_vote,
// ranked by descending score then descending creation time.
//
// requestingUserID may be 0 to omit user_vote computation (every row gets
// a NULL user_vote).
func ListFeaturesWithVotes(ctx context.Context, db *gorm.DB, requestingUserID int64) ([]domain.FeatureWithVotes, error) {
	out := make([]domain.FeatureWithVotes, 0)
	err := db.WithContext(ctx).
		Raw(featureSelect+`
ORDER BY (likes - dislikes) DESC, f.created_at DESC`, requestingUserID).
		Scan(&out).Error
	return out, err
}

// GetFeatureWithVotes returns one augmented feature row, or ErrNotFound if
// the id does not exist.
func GetFeatureWithVotes(ctx context.Context, db *gorm.DB, id, requestingUserID int64) (*domain.FeatureWithVotes, error) {
	var rows []domain.FeatureWithVotes
	err := db.WithContext(ctx).
		Raw(featureSelect+`
WHERE f.id = ?`, requestingUserID, id).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// GetFeature fetches the bare feature row by id, or ErrNotFound if missing.
// Used by ownership checks, which only need user_id.
func GetFeature(ctx context.Context, db *gorm.DB, id int64) (*domain.Feature, error) {
	var f domain.Feature
	if err := db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateFeature inserts a new feature row. Title and description must
// already be trimmed and validated; the author FK restricts userID to
// existing users at the schema level.
func CreateFeature(ctx context.Context, db *gorm.DB, title, description string, userID int64) (*domain.Feature, error) {
	f := &domain.Feature{
		Title:       title,
		Description: description,
		UserID:      userID,
	}
	if err := db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// UpdateFeature overwrites title and description of the feature and
// refreshes updated_at, leaving created_at and votes untouched. If no rows
// are affected (feature missing), it returns ErrNotFound. Ownership is
// enforced by the service layer before calling this.
func UpdateFeature(ctx context.Context, db *gorm.DB, id int64, title, description string) error {
	res := db.WithContext(ctx).
		Model(&domain.Feature{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       title,
			"description": description,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteFeature hard-deletes the feature row. Its votes go with it via the
// ON DELETE CASCADE foreign key; no application-level cleanup is needed.
// Returns ErrNotFound if the feature does not exist.
func DeleteFeature(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Delete(&domain.Feature{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
