// Ops and discovery HTTP handlers.
//
// This file exposes the read-only endpoints that sit beside the core CRUD
// surface:
//   - GET /features/search  (token-overlap search over the board)
//   - GET /stats            (corpus counts + last activity)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-votes-backend/internal/repo"
	"github.com/tbourn/go-votes-backend/internal/search"
	"github.com/tbourn/go-votes-backend/internal/utils"
)

// defaultSearchLimit caps search results when no limit parameter is given.
const defaultSearchLimit = 20

// SearchResult is one search hit: the augmented feature plus its
// similarity score.
type SearchResult struct {
	Feature any     `json:"feature"`
	Score   float64 `json:"score" example:"0.5"`
}

// SearchFeatures godoc
// @ID          searchFeatures
// @Summary     Search features
// @Description Ranks features by token overlap between q and their title/description. Rows carry the same vote augmentation as the listing.
// @Tags        Features
// @Produce     json
//
// @Param       q       query  string  true  "Search query" example(dark theme)
// @Param       userId  query  int     false "Requesting user ID" example(2)
// @Param       limit   query  int     false "Maximum results (default 20)" example(10)
//
// @Success     200  {array}  handlers.SearchResult
// @Failure     400  {object} handlers.ErrorResponse "Missing q"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /features/search [get]
func (h *Handlers) SearchFeatures(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		fail(c, http.StatusBadRequest, MsgSearchQueryRequired)
		return
	}
	uid := utils.OptionalID(c.Query("userId"))
	limit := utils.AtoiDefault(c.Query("limit"), defaultSearchLimit)

	rows, err := h.featureSvc.List(c.Request.Context(), uid)
	if err != nil {
		failDetails(c, http.StatusInternalServerError, MsgDatabaseError, err.Error())
		return
	}

	hits := search.NewIndex(rows).TopK(q, limit)
	out := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		out = append(out, SearchResult{Feature: hit.Feature, Score: hit.Score})
	}
	ok(c, http.StatusOK, out)
}

// Stats godoc
// @ID          stats
// @Summary     Corpus statistics
// @Description Row counts for users, features, and votes, plus the most recent feature activity timestamp.
// @Tags        Ops
// @Produce     json
//
// @Success     200  {object} repo.CorpusStats
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /stats [get]
func Stats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := repo.Stats(c.Request.Context(), db)
		if err != nil {
			failDetails(c, http.StatusInternalServerError, MsgDatabaseError, err.Error())
			return
		}
		ok(c, http.StatusOK, s)
	}
}
