// Package handlers defines the canonical user-facing error messages used
// across all API endpoints.
//
// These strings are part of the wire contract: mobile clients surface them
// verbatim in alerts, so they are centralized here and never rephrased
// per-endpoint. Status codes carry the machine-readable taxonomy
// (400 validation, 403 ownership, 404 missing reference, 409 uniqueness
// race, 500 storage).
package handlers

const (
	MsgUsernameRequired = "Username is required and must be a non-empty string"
	MsgUsernameTooLong  = "Username must be 50 characters or less"
	MsgUsernameTaken    = "Username already exists"

	MsgTitleRequired       = "Title is required and must be a non-empty string"
	MsgTitleTooLong        = "Title must be 200 characters or less"
	MsgDescriptionRequired = "Description is required and must be a non-empty string"
	MsgDescriptionTooLong  = "Description must be 2000 characters or less"
	MsgUserIDRequired      = "userId is required and must be a number"

	MsgFeatureIDRequired = "featureId is required and must be a number"
	MsgVoteTypeRequired  = `voteType is required and must be either "like" or "dislike"`

	MsgUserNotFound    = "User not found"
	MsgFeatureNotFound = "Feature not found"
	MsgVoteNotFound    = "Vote not found"

	MsgOnlyEditOwn   = "You can only edit your own features"
	MsgOnlyDeleteOwn = "You can only delete your own features"

	MsgDeleteUserIDRequired = "userId is required"
	MsgDeleteVoteParams     = "featureId and userId are required"

	MsgSearchQueryRequired = "q is required"

	MsgFeatureDeleted = "Feature deleted successfully"
	MsgVoteDeleted    = "Vote deleted successfully"

	MsgDatabaseError = "Database error"
	MsgBadJSON       = "Invalid request body"
)
