// Package services – FeatureService
//
// This file implements the FeatureService, which governs feature CRUD with
// ownership checks. The read-then-compare-then-write sequences in Update and
// Delete run inside a transaction so the existence/ownership check and the
// mutating write are atomic. Listing and retrieval return the augmented read
// model (author username + computed likes/dislikes/user_vote) ranked by
// score, recomputed on every call.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/tbourn/go-votes-backend/internal/domain"
	"github.com/tbourn/go-votes-backend/internal/repo"
)

// Length bounds for trimmed feature fields.
const (
	MaxTitleRunes       = 200
	MaxDescriptionRunes = 2000
)

// CreateFeatureInput carries the validated-at-the-boundary fields for
// feature creation. IdempotencyKey is optional; when set, a replayed request
// returns the originally created feature instead of inserting again.
type CreateFeatureInput struct {
	Title          string
	Description    string
	UserID         int64
	IdempotencyKey string
}

// FeatureService implements the use-cases around features.
type FeatureService struct {
	// DB is the database handle used for all feature operations.
	DB *gorm.DB
	// IdempotencyTTL is how long a recorded Idempotency-Key stays valid.
	IdempotencyTTL time.Duration
}

// List returns all features augmented with vote aggregates, ranked by
// descending score then descending creation time. requestingUserID may be 0
// to skip user_vote computation.
func (s *FeatureService) List(ctx context.Context, requestingUserID int64) ([]domain.FeatureWithVotes, error) {
	return repo.ListFeaturesWithVotes(ctx, s.DB, requestingUserID)
}

// Get returns one augmented feature, or ErrFeatureNotFound.
func (s *FeatureService) Get(ctx context.Context, id, requestingUserID int64) (*domain.FeatureWithVotes, error) {
	f, err := repo.GetFeatureWithVotes(ctx, s.DB, id, requestingUserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrFeatureNotFound
		}
		return nil, err
	}
	return f, nil
}

// Create validates the input, verifies the author exists, inserts the
// feature, and returns the augmented row (author username joined, zero
// votes). The second return value reports whether this call was an
// idempotent replay of a previous creation.
//
// Semantics and validation:
//   - title must be 1-200 characters after trimming; otherwise
//     ErrEmptyTitle / ErrTitleTooLong.
//   - description must be 1-2000 characters after trimming; otherwise
//     ErrEmptyDescription / ErrDescriptionTooLong.
//   - in.UserID must reference an existing user; otherwise ErrUserNotFound.
//
// Idempotency:
//   - When in.IdempotencyKey is non-empty and a non-expired record exists
//     for (UserID, key), the originally created feature is returned with
//     replayed=true and no second insert happens.
//   - Recording the key after a successful insert is best-effort; losing
//     the race to a concurrent identical request is not an error.
func (s *FeatureService) Create(ctx context.Context, in CreateFeatureInput) (out *domain.FeatureWithVotes, replayed bool, err error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, false, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleRunes {
		return nil, false, ErrTitleTooLong
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, false, ErrEmptyDescription
	}
	if utf8.RuneCountInString(desc) > MaxDescriptionRunes {
		return nil, false, ErrDescriptionTooLong
	}

	// Replay check before any write.
	if in.IdempotencyKey != "" {
		rec, err := repo.GetIdempotency(ctx, s.DB, in.UserID, in.IdempotencyKey, time.Now().UTC())
		if err == nil {
			f, err := repo.GetFeatureWithVotes(ctx, s.DB, rec.FeatureID, 0)
			if err == nil {
				return f, true, nil
			}
			// Recorded feature deleted since; fall through and create anew.
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, false, err
		}
	}

	var created *domain.Feature
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetUser(ctx, tx, in.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		f, err := repo.CreateFeature(ctx, tx, title, desc, in.UserID)
		if err != nil {
			return err
		}
		created = f
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if in.IdempotencyKey != "" {
		// Best-effort: a duplicate record means a concurrent twin already
		// recorded its own outcome.
		_, _ = repo.CreateIdempotency(ctx, s.DB, in.UserID, in.IdempotencyKey, created.ID, 201, s.idempotencyTTL())
	}

	out, err = repo.GetFeatureWithVotes(ctx, s.DB, created.ID, 0)
	return out, false, err
}

// Update overwrites title/description of the feature after checking that it
// exists and that requestingUserID authored it, then returns the augmented
// row. The check and the write share one transaction.
//
// Errors:
//   - validation sentinels as in Create.
//   - ErrFeatureNotFound when the id does not exist.
//   - ErrNotOwner when requestingUserID is not the author.
func (s *FeatureService) Update(ctx context.Context, id int64, title, description string, requestingUserID int64) (*domain.FeatureWithVotes, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleRunes {
		return nil, ErrTitleTooLong
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if utf8.RuneCountInString(description) > MaxDescriptionRunes {
		return nil, ErrDescriptionTooLong
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		f, err := repo.GetFeature(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFeatureNotFound
			}
			return err
		}
		if f.UserID != requestingUserID {
			return ErrNotOwner
		}
		return repo.UpdateFeature(ctx, tx, id, title, description)
	})
	if err != nil {
		return nil, err
	}
	return repo.GetFeatureWithVotes(ctx, s.DB, id, 0)
}

// Delete removes the feature after the same existence/ownership checks as
// Update. The votes referencing it are removed atomically with the feature
// row by the cascading foreign key — no orphaned votes can survive.
func (s *FeatureService) Delete(ctx context.Context, id, requestingUserID int64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		f, err := repo.GetFeature(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFeatureNotFound
			}
			return err
		}
		if f.UserID != requestingUserID {
			return ErrNotOwner
		}
		return repo.DeleteFeature(ctx, tx, id)
	})
}

func (s *FeatureService) idempotencyTTL() time.Duration {
	if s.IdempotencyTTL > 0 {
		return s.IdempotencyTTL
	}
	return 24 * time.Hour
}
