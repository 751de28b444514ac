package core

type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpList   Operation = "list"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

type DenyReason string

const (
	ReasonUnauthenticated DenyReason = "unauthenticated"
	ReasonNotOwner        DenyReason = "not_owner"
)

// Decision is the guard's verdict. Reason is set only on deny and exists for
// logging and tests; the API layer collapses it to 401/403.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize decides whether the actor may perform the operation on the post.
// An empty actorID means an anonymous request. Rules:
//   - create: any authenticated user
//   - read/list: everyone
//   - update/delete: the post's owner only; a post without an owner is not
//     mutable by anyone through this path
func Authorize(op Operation, actorID string, post PostRecord) Decision {
	switch op {
	case OpRead, OpList:
		return allow()
	case OpCreate:
		if actorID == "" {
			return deny(ReasonUnauthenticated)
		}
		return allow()
	case OpUpdate, OpDelete:
		if actorID == "" {
			return deny(ReasonUnauthenticated)
		}
		if post.OwnerID == nil || *post.OwnerID != actorID {
			return deny(ReasonNotOwner)
		}
		return allow()
	default:
		return deny(ReasonNotOwner)
	}
}
