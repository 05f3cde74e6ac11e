// Package service contains business logic between the HTTP layer and the
// repositories. Services validate input, enforce authorship, and keep the
// cache coherent; they never touch fiber.
package service

import (
	"github.com/tsainez/bobchat/internal/authz"
	"github.com/tsainez/bobchat/internal/models"
)

// Authorship denials share one message so handlers and clients see the same
// wording regardless of resource kind.
const notAuthorMessage = "You can only modify your own content"

// requireOwner rejects a mutation unless userID authored the resource.
func requireOwner(userID uint, resource authz.Owned, action authz.Action) error {
	principal := authz.Principal{ID: userID, Authenticated: userID != 0}
	decision := authz.Authorize(principal, resource, action)
	if decision.Allowed {
		return nil
	}
	if decision.Reason == authz.ReasonUnauthenticated {
		return models.NewPermissionDeniedError("Authentication required")
	}
	return models.NewPermissionDeniedError(notAuthorMessage)
}
