// Package services – UserService
//
// This file implements the UserService, which governs the lookup-or-create
// semantics of user resolution. Usernames are immutable once created:
// resolving a known username returns the existing row unchanged, resolving
// a never-seen username inserts it. A race between two identical concurrent
// resolutions is settled by the unique index and surfaces as
// ErrUsernameTaken rather than silently succeeding twice.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/tbourn/go-votes-backend/internal/domain"
	"github.com/tbourn/go-votes-backend/internal/repo"
)

// MaxUsernameRunes bounds the trimmed username length.
const MaxUsernameRunes = 50

// UserService implements the use-cases around users.
type UserService struct {
	// DB is the database handle used for all user operations.
	DB *gorm.DB
}

// Resolve trims and validates username, then returns the existing user with
// that exact username, or inserts and returns a new one. The second return
// value reports whether a row was created, so the handler can pick 201 vs 200.
//
// Semantics and validation:
//   - username must be non-empty after trimming; otherwise ErrEmptyUsername.
//   - the trimmed username must be at most 50 characters; otherwise
//     ErrUsernameTooLong.
//   - resolving the same username twice yields the same id (idempotent).
//
// Errors:
//   - ErrEmptyUsername / ErrUsernameTooLong for the validation cases above.
//   - ErrUsernameTaken when a concurrent resolution won the unique index.
//   - The underlying DB error for unexpected failures.
func (s *UserService) Resolve(ctx context.Context, username string) (*domain.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false, ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameRunes {
		return nil, false, ErrUsernameTooLong
	}

	u, err := repo.GetUserByUsername(ctx, s.DB, username)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	created, err := repo.CreateUser(ctx, s.DB, username)
	if err != nil {
		if isDuplicate(err) {
			return nil, false, ErrUsernameTaken
		}
		return nil, false, err
	}
	return created, true, nil
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
