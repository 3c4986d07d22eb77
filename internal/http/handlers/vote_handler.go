// Vote HTTP handlers.
//
// This file exposes the REST endpoints for the vote resource:
//   - POST   /votes  (cast or overwrite a vote)
//   - DELETE /votes  (remove a vote)
//
// A user holds one vote slot per feature. Casting into an occupied slot
// overwrites vote_type on the existing row and returns 200 with the same
// vote id; casting into an empty slot returns 201. Casting the type already
// recorded is a no-op overwrite, not an error, and never removes the vote —
// removal is only the explicit DELETE. Clients that want like-again-to-
// untoggle implement it on their side by calling DELETE.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-votes-backend/internal/http/middleware"
	"github.com/tbourn/go-votes-backend/internal/services"
	"github.com/tbourn/go-votes-backend/internal/utils"
)

// CastVoteRequest is the JSON payload for casting a vote.
type CastVoteRequest struct {
	FeatureID int64  `json:"featureId" example:"1"`
	UserID    int64  `json:"userId"    example:"2"`
	// VoteType must be "like" or "dislike".
	VoteType string `json:"voteType"  example:"like"`
}

// VoteResponse is the wire shape of a vote mutation result. Unlike feature
// rows this resource replies in camelCase; the asymmetry is part of the
// published contract and is kept as-is.
type VoteResponse struct {
	ID        int64  `json:"id"        example:"7"`
	FeatureID int64  `json:"featureId" example:"1"`
	UserID    int64  `json:"userId"    example:"2"`
	VoteType  string `json:"voteType"  example:"like"`
}

// CastVote godoc
// @ID          castVote
// @Summary     Cast or overwrite a vote
// @Description Records like/dislike for (featureId, userId). An existing vote is overwritten in place (200, same id); a new vote is created (201).
// @Tags        Votes
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CastVoteRequest true "Vote payload"
//
// @Success     200  {object} handlers.VoteResponse "Existing vote updated"
// @Success     201  {object} handlers.VoteResponse "New vote created"
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404  {object} handlers.ErrorResponse "Feature or user not found"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /votes [post]
func (h *Handlers) CastVote(c *gin.Context) {
	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgBadJSON)
		return
	}
	if req.FeatureID <= 0 {
		fail(c, http.StatusBadRequest, MsgFeatureIDRequired)
		return
	}
	if req.UserID <= 0 {
		fail(c, http.StatusBadRequest, MsgUserIDRequired)
		return
	}

	v, created, err := h.voteSvc.Cast(c.Request.Context(), req.FeatureID, req.UserID, req.VoteType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidVoteType):
			fail(c, http.StatusBadRequest, MsgVoteTypeRequired)
		case errors.Is(err, services.ErrFeatureNotFound):
			fail(c, http.StatusNotFound, MsgFeatureNotFound)
		case errors.Is(err, services.ErrUserNotFound):
			fail(c, http.StatusNotFound, MsgUserNotFound)
		default:
			failDetails(c, http.StatusInternalServerError, MsgDatabaseError, err.Error())
		}
		return
	}

	middleware.CountVoteCast(v.VoteType, created)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ok(c, status, VoteResponse{
		ID:        v.ID,
		FeatureID: v.FeatureID,
		UserID:    v.UserID,
		VoteType:  v.VoteType,
	})
}

// RemoveVote godoc
// @ID          removeVote
// @Summary     Remove a vote
// @Description Deletes the vote for (featureId, userId); 404 when no such vote exists.
// @Tags        Votes
// @Produce     json
//
// @Param       featureId  query  int  true "Feature ID" example(1)
// @Param       userId     query  int  true "User ID" example(2)
//
// @Success     200  {object} handlers.MessageResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing parameters"
// @Failure     404  {object} handlers.ErrorResponse "Vote not found"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /votes [delete]
func (h *Handlers) RemoveVote(c *gin.Context) {
	featureID := utils.OptionalID(c.Query("featureId"))
	userID := utils.OptionalID(c.Query("userId"))
	if featureID == 0 || userID == 0 {
		fail(c, http.StatusBadRequest, MsgDeleteVoteParams)
		return
	}

	if err := h.voteSvc.Remove(c.Request.Context(), featureID, userID); err != nil {
		if errors.Is(err, services.ErrVoteNotFound) {
			fail(c, http.StatusNotFound, MsgVoteNotFound)
			return
		}
		failDetails(c, http.StatusInternalServerError, MsgDatabaseError, err.Error())
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: MsgVoteDeleted})
}
