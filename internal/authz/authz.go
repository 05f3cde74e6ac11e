// Package authz decides whether a principal may perform an action on a
// resource. Decisions are pure; callers reject the request on Deny and
// perform no partial writes.
package authz

// Action is an operation a principal attempts against a resource.
type Action string

const (
	// ActionCreate covers creation of dens, posts, and comments, and the
	// like/follow toggles.
	ActionCreate Action = "create"
	// ActionRead covers all listings, including anonymous ones.
	ActionRead Action = "read"
	// ActionUpdate covers title/body/name edits.
	ActionUpdate Action = "update"
	// ActionDelete covers removal of dens, posts, and comments.
	ActionDelete Action = "delete"
)

// Deny reasons surfaced to callers.
const (
	ReasonNotAuthor       = "not-author"
	ReasonUnauthenticated = "authentication-required"
)

// Principal identifies the requesting user for the length of one request.
type Principal struct {
	ID            uint
	Authenticated bool
}

// Anonymous returns the principal used for unauthenticated requests.
func Anonymous() Principal {
	return Principal{}
}

// Owned is implemented by resources that carry an owning author.
type Owned interface {
	OwnerID() uint
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Authorize decides whether principal may perform action on resource.
// Reads are always permitted. Creation requires authentication. Update and
// delete additionally require the principal to be the resource's author;
// there is no admin override.
func Authorize(principal Principal, resource Owned, action Action) Decision {
	switch action {
	case ActionRead:
		return allow()
	case ActionCreate:
		if !principal.Authenticated {
			return deny(ReasonUnauthenticated)
		}
		return allow()
	case ActionUpdate, ActionDelete:
		if !principal.Authenticated {
			return deny(ReasonUnauthenticated)
		}
		if resource == nil || resource.OwnerID() != principal.ID {
			return deny(ReasonNotAuthor)
		}
		return allow()
	default:
		return deny("unknown-action")
	}
}
