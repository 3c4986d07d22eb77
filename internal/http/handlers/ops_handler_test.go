package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/tbourn/go-votes-backend/internal/repo"
)

func TestSearchFeatures_MissingQuery(t *testing.T) {
	r, _ := newHandlerEnv(t)
	w := doJSON(t, r, http.MethodGet, "/features/search", "")
	wantError(t, w, http.StatusBadRequest, MsgSearchQueryRequired)
}

func TestSearchFeatures_RanksMatches(t *testing.T) {
	r, _ := newHandlerEnv(t)
	alice := createUser(t, r, "alice")
	createFeature(t, r, "Dark mode", alice)
	createFeature(t, r, "Export to CSV", alice)

	w := doJSON(t, r, http.MethodGet, "/features/search?q=dark+mode", "")
	if w.Code != http.StatusOK {
		t.Fatalf("search: %d %s", w.Code, w.Body.String())
	}
	var hits []SearchResult
	if err := json.Unmarshal(w.Body.Bytes(), &hits); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d: %s", len(hits), w.Body.String())
	}
	if hits[0].Score <= 0 {
		t.Fatalf("score = %v; want > 0", hits[0].Score)
	}
}

func TestSearchFeatures_NoMatchIsEmptyArray(t *testing.T) {
	r, _ := newHandlerEnv(t)
	alice := createUser(t, r, "alice")
	createFeature(t, r, "Dark mode", alice)

	w := doJSON(t, r, http.MethodGet, "/features/search?q=zzzz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("search: %d", w.Code)
	}
	var hits []SearchResult
	if err := json.Unmarshal(w.Body.Bytes(), &hits); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("expected no hits, got %+v", hits)
	}
}

func TestSearchFeatures_LimitParameter(t *testing.T) {
	r, _ := newHandlerEnv(t)
	alice := createUser(t, r, "alice")
	for i := 0; i < 3; i++ {
		createFeature(t, r, fmt.Sprintf("widget idea %d", i), alice)
	}

	w := doJSON(t, r, http.MethodGet, "/features/search?q=widget&limit=2", "")
	var hits []SearchResult
	if err := json.Unmarshal(w.Body.Bytes(), &hits); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("limit ignored: got %d hits", len(hits))
	}
}

func TestStats_Endpoint(t *testing.T) {
	r, _ := newHandlerEnv(t)
	alice := createUser(t, r, "alice")
	bob := createUser(t, r, "bob")
	f := createFeature(t, r, "counted", alice)
	doJSON(t, r, http.MethodPost, "/votes", fmt.Sprintf(`{"featureId":%d,"userId":%d,"voteType":"like"}`, f.ID, bob))

	w := doJSON(t, r, http.MethodGet, "/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats: %d %s", w.Code, w.Body.String())
	}
	var s repo.CorpusStats
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Users != 2 || s.Features != 1 || s.Votes != 1 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.LastActivity == nil {
		t.Fatalf("expected LastActivity to be set")
	}
}
