// Package domain defines the persistence models for users, features, and
// votes. These types are mapped with GORM and form the core data layer of
// the feature-voting application.
package domain

import "time"

// Vote type values accepted by the API and enforced by the votes CHECK
// constraint.
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// User represents a participant identified solely by a username. Users are
// created on first sight of a new username and are never mutated or deleted
// afterwards.
//
// Fields:
//   - ID: auto-assigned integer primary key.
//   - Username: unique handle, 1-50 characters after trimming.
//   - CreatedAt: timestamp managed by GORM.
type User struct {
	ID        int64     `json:"id"       gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"type:varchar(50);not null;uniqueIndex:ux_users_username"`
	CreatedAt time.Time `json:"-"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Feature represents a user-submitted suggestion, the primary votable
// entity. The author (UserID) is immutable; only the author may edit or
// delete the feature. Deleting a feature cascade-deletes its votes.
//
// Fields:
//   - ID: auto-assigned integer primary key.
//   - Title: 1-200 characters after trimming.
//   - Description: 1-2000 characters after trimming.
//   - UserID: foreign key to the author; indexed.
//   - CreatedAt / UpdatedAt: set on insert; UpdatedAt refreshed on update.
type Feature struct {
	ID          int64     `json:"id"          gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title"       gorm:"type:varchar(200);not null"`
	Description string    `json:"description" gorm:"type:varchar(2000);not null"`
	UserID      int64     `json:"user_id"     gorm:"not null;index:idx_features_user"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// User is the author. The FK restricts inserts to existing users.
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Feature.
func (Feature) TableName() string { return "features" }

// Vote records one user's like/dislike on one feature. At most one vote may
// exist per (feature_id, user_id) pair; a repeat vote overwrites vote_type
// on the existing row rather than inserting a second one.
//
// Fields:
//   - ID: auto-assigned integer primary key (stable across type changes).
//   - FeatureID / UserID: foreign keys, unique together.
//   - VoteType: "like" or "dislike" (enforced by DB constraint).
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Vote struct {
	ID        int64     `json:"id"         gorm:"primaryKey;autoIncrement"`
	FeatureID int64     `json:"feature_id" gorm:"not null;index;uniqueIndex:ux_votes_feature_user,priority:1"`
	UserID    int64     `json:"user_id"    gorm:"not null;index;uniqueIndex:ux_votes_feature_user,priority:2"`
	VoteType  string    `json:"vote_type"  gorm:"type:varchar(10);not null;check:vote_type IN ('like','dislike')"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Feature is the voted-on suggestion. Votes are cascade-deleted when
	// their feature is removed.
	Feature Feature `json:"-" gorm:"foreignKey:FeatureID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	// User is the voter.
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Vote.
func (Vote) TableName() string { return "votes" }

// FeatureWithVotes is the read model returned by listing and retrieval: a
// feature row joined with its author's username and augmented with computed
// vote aggregates. It is never persisted; likes/dislikes and user_vote are
// recomputed on every query because ranking changes with every vote.
//
// UserVote is the requesting user's vote type on this feature, or nil when
// no requesting user was supplied or that user has not voted.
type FeatureWithVotes struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Likes       int64     `json:"likes"`
	Dislikes    int64     `json:"dislikes"`
	UserVote    *string   `json:"user_vote"`
}

// Score is the feature's ranking key: likes minus dislikes.
func (f FeatureWithVotes) Score() int64 { return f.Likes - f.Dislikes }
