// Feature HTTP handlers.
//
// This file exposes the REST endpoints for the feature resource:
//   - GET    /features       (ranked listing with vote aggregates)
//   - GET    /features/:id   (single augmented feature)
//   - POST   /features       (create; supports Idempotency-Key replay)
//   - PUT    /features/:id   (owner-only update)
//   - DELETE /features/:id   (owner-only delete; votes cascade)
//
// Listing and retrieval accept an optional ?userId= so each row can carry
// the requesting user's own vote. A non-numeric :id behaves like any other
// missing feature and yields 404.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-votes-backend/internal/http/middleware"
	"github.com/tbourn/go-votes-backend/internal/services"
	"github.com/tbourn/go-votes-backend/internal/utils"
)

// FeatureRequest is the JSON payload for creating and updating a feature.
// UserID identifies the author on create and the requesting user on update.
type FeatureRequest struct {
	Title       string `json:"title"       example:"Dark mode"`
	Description string `json:"description" example:"Add dark theme support"`
	UserID      int64  `json:"userId"      example:"1"`
}

// ListFeatures godoc
// @ID          listFeatures
// @Summary     List all features
// @Description Returns every feature with author username, vote counts, and the requesting user's vote, ranked by score then recency.
// @Tags        Features
// @Produce     json
//
// @Param       userId  query  int  false "Requesting user ID" example(2)
//
// @Success     200  {array}  domain.FeatureWithVotes
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /features [get]
func (h *Handlers) ListFeatures(c *gin.Context) {
	uid := utils.OptionalID(c.Query("userId"))

	out, err := h.featureSvc.List(c.Request.Context(), uid)
	if err != nil {
		failDetails(c, http.StatusInternalServerError, MsgDatabaseError, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// GetFeature godoc
// @ID          getFeature
// @Summary     Get one feature
// @Tags        Features
// @Produce     json
//
// @Param       id      path   int  true  "Feature ID" example(1)
// @Param       userId  query  int  false "Requesting user ID" example(2)
//
// @Success     200  {object} domain.FeatureWithVotes
// @Failure     404  {object} handlers.ErrorResponse "Feature not found"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /features/{id} [get]
func (h *Handlers) GetFeature(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, MsgFeatureNotFound)
		return
	}
	uid := utils.OptionalID(c.Query("userId"))

	f, err := h.featureSvc.Get(c.Request.Context(), id, uid)
	if err != nil {
		if errors.Is(err, services.ErrFeatureNotFound) {
			fail(c, http.StatusNotFound, MsgFeatureNotFound)
			return
		}
		failDetails(c, http.StatusInternalServerError, MsgDatabaseError, err.Error())
		return
	}
	ok(c, http.StatusOK, f)
}

// CreateFeature godoc
// @ID          createFeature
// @Summary     Create a feature
// @Description Inserts a new feature authored by userId. An optional Idempotency-Key header makes retries safe: a replay returns the originally created feature.
// @Tags        Features
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Client retry key"
// @Param       body             body    handlers.FeatureRequest true "Feature payload"
//
// @Success     200  {object} domain.FeatureWithVotes "Idempotent replay"
// @Success     201  {object} domain.FeatureWithVotes "Created"
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404  {object} handlers.ErrorResponse "User not found"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /features [post]
func (h *Handlers) CreateFeature(c *gin.Context) {
	req, ok2 := h.bindFeatureRequest(c)
	if !ok2 {
		return
	}

	key, _ := middleware.GetIdempotencyKey(c)
	f, replayed, err := h.featureSvc.Create(c.Request.Context(), services.CreateFeatureInput{
		Title:          req.Title,
		Description:    req.Description,
		UserID:         req.UserID,
		IdempotencyKey: key,
	})
	if err != nil {
		if !h.failFeatureValidation(c, err) {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				fail(c, http.StatusNotFound, MsgUserNotFound)
			default:
				failDetails(c, http.StatusInternalServerError, MsgDatabaseError, err.Error())
			}
		}
		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
		middleware.LoggerFrom(c).Info().
			Int64("feature_id", f.ID).
			Str("idempotency_key", key).
			Msg("feature create replayed")
	}
	ok(c, status, f)
}

// UpdateFeature godoc
// @ID          updateFeature
// @Summary     Update a feature
// @Description Overwrites title and description. Only the author may update; created_at and votes are untouched.
// @Tags        Features
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                      true "Feature ID" example(1)
// @Param       body  body  handlers.FeatureRequest  true "Feature payload (userId = requesting user)"
//
// @Success     200  {object} domain.FeatureWithVotes
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     403  {object} handlers.ErrorResponse "Not the author"
// @Failure     404  {object} handlers.ErrorResponse "Feature not found"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /features/{id} [put]
func (h *Handlers) UpdateFeature(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, MsgFeatureNotFound)
		return
	}
	req, ok2 := h.bindFeatureRequest(c)
	if !ok2 {
		return
	}

	f, err := h.featureSvc.Update(c.Request.Context(), id, req.Title, req.Description, req.UserID)
	if err != nil {
		if !h.failFeatureValidation(c, err) {
			switch {
			case errors.Is(err, services.ErrFeatureNotFound):
				fail(c, http.StatusNotFound, MsgFeatureNotFound)
			case errors.Is(err, services.ErrNotOwner):
				fail(c, http.StatusForbidden, MsgOnlyEditOwn)
			default:
				failDetails(c, http.StatusInternalServerError, MsgDatabaseError, err.Error())
			}
		}
		return
	}
	ok(c, http.StatusOK, f)
}

// DeleteFeature godoc
// @ID          deleteFeature
// @Summary     Delete a feature
// @Description Removes the feature and, via cascade, all of its votes. Only the author may delete.
// @Tags        Features
// @Produce     json
//
// @Param       id      path   int  true "Feature ID" example(1)
// @Param       userId  query  int  true "Requesting user ID" example(1)
//
// @Success     200  {object} handlers.MessageResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing userId"
// @Failure     403  {object} handlers.ErrorResponse "Not the author"
// @Failure     404  {object} handlers.ErrorResponse "Feature not found"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /features/{id} [delete]
func (h *Handlers) DeleteFeature(c *gin.Context) {
	uid := utils.OptionalID(c.Query("userId"))
	if uid == 0 {
		fail(c, http.StatusBadRequest, MsgDeleteUserIDRequired)
		return
	}
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, MsgFeatureNotFound)
		return
	}

	if err := h.featureSvc.Delete(c.Request.Context(), id, uid); err != nil {
		switch {
		case errors.Is(err, services.ErrFeatureNotFound):
			fail(c, http.StatusNotFound, MsgFeatureNotFound)
		case errors.Is(err, services.ErrNotOwner):
			fail(c, http.StatusForbidden, MsgOnlyDeleteOwn)
		default:
			failDetails(c, http.StatusInternalServerError, MsgDatabaseError, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: MsgFeatureDeleted})
}

// bindFeatureRequest decodes the shared create/update payload and enforces
// the request-shape checks that belong at the boundary (presence and types).
// Trim and length rules live in the service.
func (h *Handlers) bindFeatureRequest(c *gin.Context) (FeatureRequest, bool) {
	var req FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgBadJSON)
		return req, false
	}
	if strings.TrimSpace(req.Title) == "" {
		fail(c, http.StatusBadRequest, MsgTitleRequired)
		return req, false
	}
	if strings.TrimSpace(req.Description) == "" {
		fail(c, http.StatusBadRequest, MsgDescriptionRequired)
		return req, false
	}
	if req.UserID <= 0 {
		fail(c, http.StatusBadRequest, MsgUserIDRequired)
		return req, false
	}
	return req, true
}

// failFeatureValidation maps the service's length sentinels to their 400
// messages. Returns false when err is not a validation error so the caller
// can continue its own mapping.
func (h *Handlers) failFeatureValidation(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, services.ErrEmptyTitle):
		fail(c, http.StatusBadRequest, MsgTitleRequired)
	case errors.Is(err, services.ErrTitleTooLong):
		fail(c, http.StatusBadRequest, MsgTitleTooLong)
	case errors.Is(err, services.ErrEmptyDescription):
		fail(c, http.StatusBadRequest, MsgDescriptionRequired)
	case errors.Is(err, services.ErrDescriptionTooLong):
		fail(c, http.StatusBadRequest, MsgDescriptionTooLong)
	default:
		return false
	}
	return true
}
