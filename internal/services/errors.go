// Package services defines the business logic for users, features, and votes.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

// User-related errors.
var (
	// ErrEmptyUsername is returned when a username is empty after trimming.
	ErrEmptyUsername = errors.New("username is required")

	// ErrUsernameTooLong is returned when a username exceeds 50 characters.
	ErrUsernameTooLong = errors.New("username too long")

	// ErrUsernameTaken is returned when the unique index rejects an insert
	// because a concurrent request created the same username first. The
	// constraint lives in the store, not only in application logic, so the
	// race can never silently succeed twice.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound indicates that the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Feature-related errors.
var (
	// ErrFeatureNotFound indicates that the requested feature does not exist.
	ErrFeatureNotFound = errors.New("feature not found")

	// ErrEmptyTitle is returned when a title is empty after trimming.
	ErrEmptyTitle = errors.New("title is required")

	// ErrTitleTooLong is returned when a title exceeds 200 characters.
	ErrTitleTooLong = errors.New("title too long")

	// ErrEmptyDescription is returned when a description is empty after trimming.
	ErrEmptyDescription = errors.New("description is required")

	// ErrDescriptionTooLong is returned when a description exceeds 2000 characters.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrNotOwner is returned when a user attempts to edit or delete a
	// feature they did not author. Authorship is the only authorization
	// the system has.
	ErrNotOwner = errors.New("not the feature owner")
)

// Vote-related errors.
var (
	// ErrInvalidVoteType is returned when a vote type is outside the
	// allowed set {"like", "dislike"}.
	ErrInvalidVoteType = errors.New(`vote type must be "like" or "dislike"`)

	// ErrVoteNotFound indicates that no vote exists for the
	// (feature, user) pair.
	ErrVoteNotFound = errors.New("vote not found")
)
