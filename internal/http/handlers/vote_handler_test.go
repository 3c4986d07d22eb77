package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestCastVote_ValidationMessages(t *testing.T) {
	r, _ := newHandlerEnv(t)
	alice := createUser(t, r, "alice")
	f := createFeature(t, r, "votable", alice)

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"bad_json", `{`, MsgBadJSON},
		{"missing_feature", fmt.Sprintf(`{"userId":%d,"voteType":"like"}`, alice), MsgFeatureIDRequired},
		{"missing_user", fmt.Sprintf(`{"featureId":%d,"voteType":"like"}`, f.ID), MsgUserIDRequired},
		{"missing_vote_type", fmt.Sprintf(`{"featureId":%d,"userId":%d}`, f.ID, alice), MsgVoteTypeRequired},
		{"wrong_vote_type", fmt.Sprintf(`{"featureId":%d,"userId":%d,"voteType":"meh"}`, f.ID, alice), MsgVoteTypeRequired},
		{"uppercase_vote_type", fmt.Sprintf(`{"featureId":%d,"userId":%d,"voteType":"LIKE"}`, f.ID, alice), MsgVoteTypeRequired},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/votes", tc.body)
			wantError(t, w, http.StatusBadRequest, tc.msg)
		})
	}
}

func TestCastVote_TargetNotFound(t *testing.T) {
	r, _ := newHandlerEnv(t)
	alice := createUser(t, r, "alice")
	f := createFeature(t, r, "votable", alice)

	w := doJSON(t, r, http.MethodPost, "/votes", fmt.Sprintf(`{"featureId":999,"userId":%d,"voteType":"like"}`, alice))
	wantError(t, w, http.StatusNotFound, MsgFeatureNotFound)

	w = doJSON(t, r, http.MethodPost, "/votes", fmt.Sprintf(`{"featureId":%d,"userId":999,"voteType":"like"}`, f.ID))
	wantError(t, w, http.StatusNotFound, MsgUserNotFound)
}

func TestCastVote_CreateThenOverwrite(t *testing.T) {
	r, _ := newHandlerEnv(t)
	alice := createUser(t, r, "alice")
	bob := createUser(t, r, "bob")
	f := createFeature(t, r, "votable", alice)

	// First cast creates: 201.
	w := doJSON(t, r, http.MethodPost, "/votes", fmt.Sprintf(`{"featureId":%d,"userId":%d,"voteType":"like"}`, f.ID, bob))
	if w.Code != http.StatusCreated {
		t.Fatalf("first cast: %d %s", w.Code, w.Body.String())
	}
	var first VoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first.ID == 0 || first.FeatureID != f.ID || first.UserID != bob || first.VoteType != "like" {
		t.Fatalf("unexpected vote: %+v", first)
	}
	// Vote bodies reply in camelCase.
	for _, key := range []string{`"featureId"`, `"userId"`, `"voteType"`} {
		if !strings.Contains(w.Body.String(), key) {
			t.Fatalf("vote payload missing %s: %s", key, w.Body.String())
		}
	}

	// Flip overwrites in place: 200, same id.
	w = doJSON(t, r, http.MethodPost, "/votes", fmt.Sprintf(`{"featureId":%d,"userId":%d,"voteType":"dislike"}`, f.ID, bob))
	if w.Code != http.StatusOK {
		t.Fatalf("flip: %d %s", w.Code, w.Body.String())
	}
	var flipped VoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &flipped); err != nil {
		t.Fatalf("decode flip: %v", err)
	}
	if flipped.ID != first.ID || flipped.VoteType != "dislike" {
		t.Fatalf("flip did not overwrite in place: %+v (was %+v)", flipped, first)
	}

	// Same type again: still 200, still the same row, vote not removed.
	w = doJSON(t, r, http.MethodPost, "/votes", fmt.Sprintf(`{"featureId":%d,"userId":%d,"voteType":"dislike"}`, f.ID, bob))
	if w.Code != http.StatusOK {
		t.Fatalf("recast: %d %s", w.Code, w.Body.String())
	}
}

func TestRemoveVote_MissingParams(t *testing.T) {
	r, _ := newHandlerEnv(t)

	for _, path := range []string{"/votes", "/votes?featureId=1", "/votes?userId=1"} {
		w := doJSON(t, r, http.MethodDelete, path, "")
		wantError(t, w, http.StatusBadRequest, MsgDeleteVoteParams)
	}
}

func TestRemoveVote_NotFound(t *testing.T) {
	r, _ := newHandlerEnv(t)
	w := doJSON(t, r, http.MethodDelete, "/votes?featureId=1&userId=1", "")
	wantError(t, w, http.StatusNotFound, MsgVoteNotFound)
}

func TestRemoveVote_Success(t *testing.T) {
	r, _ := newHandlerEnv(t)
	alice := createUser(t, r, "alice")
	f := createFeature(t, r, "votable", alice)

	w := doJSON(t, r, http.MethodPost, "/votes", fmt.Sprintf(`{"featureId":%d,"userId":%d,"voteType":"like"}`, f.ID, alice))
	if w.Code != http.StatusCreated {
		t.Fatalf("cast: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/votes?featureId=%d&userId=%d", f.ID, alice), "")
	if w.Code != http.StatusOK {
		t.Fatalf("remove: %d %s", w.Code, w.Body.String())
	}
	var mr MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &mr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mr.Message != MsgVoteDeleted {
		t.Fatalf("message = %q; want %q", mr.Message, MsgVoteDeleted)
	}

	// Idempotence at the HTTP level: a second delete is a 404.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/votes?featureId=%d&userId=%d", f.ID, alice), "")
	wantError(t, w, http.StatusNotFound, MsgVoteNotFound)
}
