package reservation

import "room-reservation-engine/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsLive reports whether a reservation in this status holds its window.
func (s Status) IsLive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// TransitionPolicy selects how SetStatus validates a status change.
type TransitionPolicy string

const (
	PolicyStrict     TransitionPolicy = "strict"
	PolicyPermissive TransitionPolicy = "permissive"
)

func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch p := TransitionPolicy(s); p {
	case PolicyStrict, PolicyPermissive:
		return p, nil
	default:
		return "", errs.New("unknown status transition policy: " + s)
	}
}

// pending -> {confirmed, rejected, cancelled}, confirmed -> cancelled, plus the reopen paths
// back to pending.
var strictTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusPending},
	StatusRejected:  {StatusPending},
}

func ValidateTransition(from, to Status, policy TransitionPolicy) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if from == to || policy == PolicyPermissive {
		return nil
	}
	for _, allowed := range strictTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return errs.Wrap(ErrTransitionNotAllowed, from.String()+" -> "+to.String())
}
