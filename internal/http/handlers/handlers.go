// Package handlers provides HTTP handler implementations for the public API.
// Handlers are transport-thin: they decode and validate request shapes,
// delegate to application services, and translate service sentinels into the
// contractual HTTP status codes.
package handlers

import (
	"github.com/tbourn/go-votes-backend/internal/services"
)

// Handlers bundles the service dependencies for all endpoint groups.
type Handlers struct {
	userSvc    *services.UserService
	featureSvc *services.FeatureService
	voteSvc    *services.VoteService
}

// New constructs the handler set from its service dependencies.
func New(userSvc *services.UserService, featureSvc *services.FeatureService, voteSvc *services.VoteService) *Handlers {
	return &Handlers{
		userSvc:    userSvc,
		featureSvc: featureSvc,
		voteSvc:    voteSvc,
	}
}
