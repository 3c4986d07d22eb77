// User HTTP handlers.
//
// This file exposes the REST endpoint for user resolution:
//   - POST /users  (lookup-or-create by username)
//
// Resolution is idempotent: posting a known username returns the existing
// row with 200, posting a never-seen username creates it and returns 201.
// Usernames are immutable once created.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-votes-backend/internal/services"
)

// ResolveUserRequest is the JSON payload for user resolution.
type ResolveUserRequest struct {
	// Username is trimmed server-side; 1-50 characters after trimming.
	Username string `json:"username" example:"alice"`
}

// ResolveUser godoc
// @ID          resolveUser
// @Summary     Look up or create a user
// @Description Returns the existing user for the username, or creates one.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ResolveUserRequest true "Username payload"
//
// @Success     200  {object} domain.User "Existing user"
// @Success     201  {object} domain.User "Newly created user"
// @Failure     400  {object} handlers.ErrorResponse "Invalid username"
// @Failure     409  {object} handlers.ErrorResponse "Concurrent creation race"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /users [post]
func (h *Handlers) ResolveUser(c *gin.Context) {
	var req ResolveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgUsernameRequired)
		return
	}

	u, created, err := h.userSvc.Resolve(c.Request.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyUsername):
			fail(c, http.StatusBadRequest, MsgUsernameRequired)
		case errors.Is(err, services.ErrUsernameTooLong):
			fail(c, http.StatusBadRequest, MsgUsernameTooLong)
		case errors.Is(err, services.ErrUsernameTaken):
			fail(c, http.StatusConflict, MsgUsernameTaken)
		default:
			failDetails(c, http.StatusInternalServerError, MsgDatabaseError, err.Error())
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ok(c, status, u)
}
