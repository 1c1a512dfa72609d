package quote

import "github.com/RenoBuildCo/reno-marketplace/internal/httperr"

// ===============================
// Quote Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusReceived  Status = "received"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusReceived, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// transitions the project owner may drive. The lifecycle is user-driven
// rather than system-enforced, so guards only block nonsensical jumps
// (e.g. accepted back to pending).
var transitions = map[Status][]Status{
	StatusPending:  {StatusReceived, StatusRejected},
	StatusReceived: {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusCompleted, StatusRejected},
}

// CanTransition reports whether moving from current to next is allowed.
// Setting the same status again is a no-op and always allowed.
func CanTransition(current, next Status) error {
	if !IsValid(next) {
		return httperr.ErrBusiness("invalid_status")
	}
	if current == next {
		return nil
	}
	for _, allowed := range transitions[current] {
		if next == allowed {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

func InitialStatus() Status {
	return StatusPending
}
