package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTableNames(t *testing.T) {
	if got := (User{}).TableName(); got != "users" {
		t.Fatalf("User table = %q; want users", got)
	}
	if got := (Feature{}).TableName(); got != "features" {
		t.Fatalf("Feature table = %q; want features", got)
	}
	if got := (Vote{}).TableName(); got != "votes" {
		t.Fatalf("Vote table = %q; want votes", got)
	}
}

func TestFeatureWithVotes_Score(t *testing.T) {
	tests := []struct {
		likes, dislikes, want int64
	}{
		{0, 0, 0},
		{3, 0, 3},
		{0, 1, -1},
		{5, 2, 3},
	}
	for _, tc := range tests {
		f := FeatureWithVotes{Likes: tc.likes, Dislikes: tc.dislikes}
		if got := f.Score(); got != tc.want {
			t.Fatalf("Score(%d,%d) = %d; want %d", tc.likes, tc.dislikes, got, tc.want)
		}
	}
}

func TestUser_JSON_HidesCreatedAt(t *testing.T) {
	u := User{ID: 1, Username: "alice", CreatedAt: time.Now()}
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if strings.Contains(s, "CreatedAt") || strings.Contains(s, "created_at") {
		t.Fatalf("user JSON leaks CreatedAt: %s", s)
	}
	if !strings.Contains(s, `"username":"alice"`) {
		t.Fatalf("user JSON missing username: %s", s)
	}
}

func TestFeatureWithVotes_JSON_NullUserVote(t *testing.T) {
	f := FeatureWithVotes{ID: 1, Title: "t", Description: "d", Username: "alice"}
	b, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	// No vote recorded → explicit null, not an omitted field.
	if !strings.Contains(s, `"user_vote":null`) {
		t.Fatalf("expected user_vote:null, got %s", s)
	}
	// Feature rows are snake_case on the wire.
	if !strings.Contains(s, `"created_at"`) || !strings.Contains(s, `"user_id"`) {
		t.Fatalf("expected snake_case keys, got %s", s)
	}

	like := VoteLike
	f.UserVote = &like
	b, _ = json.Marshal(f)
	if !strings.Contains(string(b), `"user_vote":"like"`) {
		t.Fatalf("expected user_vote:like, got %s", b)
	}
}
