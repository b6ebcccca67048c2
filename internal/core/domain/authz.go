package domain

// Action identifies an operation submitted to the authorization policy.
type Action string

const (
	ActionRead        Action = "read"
	ActionWrite       Action = "write"
	ActionAdminList   Action = "admin-list"
	ActionAdminDelete Action = "admin-delete"
)

// Deny reasons surfaced in Decision.Reason.
const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonForbidden       = "forbidden"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

var allow = Decision{Allowed: true}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Authorize decides whether identity may perform action on a resource owned
// by resourceOwnerID. It is a pure function: no I/O, deterministic.
//
// Rules, in order:
//  1. No identity → deny unauthenticated, for every action.
//  2. Admin actions → allowed only for the admin role.
//  3. Everything else → allowed only when the identity owns the resource.
//
// Callers dealing with single resources should surface an ownership denial
// as a not-found result so non-owners cannot probe for existence.
func Authorize(identity *Identity, action Action, resourceOwnerID string) Decision {
	if identity == nil {
		return deny(ReasonUnauthenticated)
	}

	switch action {
	case ActionAdminList, ActionAdminDelete:
		if identity.Role != RoleAdmin {
			return deny(ReasonForbidden)
		}
		return allow
	default:
		if identity.UserID != resourceOwnerID {
			return deny(ReasonForbidden)
		}
		return allow
	}
}
