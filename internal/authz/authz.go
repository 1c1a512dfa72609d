package authz

// Action names what the actor is trying to do to a resource.
type Action string

const (
	ActionView   Action = "view"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Owned is any resource with a single owning user.
type Owned interface {
	OwnerID() uint
}

// Can is the one ownership predicate consulted by every handler instead
// of per-route userID comparisons. All actions today reduce to ownership;
// the action parameter keeps call sites explicit about intent.
func Can(actorID uint, _ Action, resource Owned) bool {
	return resource.OwnerID() == actorID
}
