package lifecycle

// Status is the lifecycle state of a delivery request.
type Status string

const (
	StatusPending Status = "pending"
	StatusMatched Status = "matched"
	StatusDeleted Status = "deleted"

	// Reserved states: declared in the data model, no operation produces them yet.
	StatusCancelled Status = "cancelled"
	StatusDelivered Status = "delivered"
)

// transitions is the authoritative table of allowed state changes.
// Anything not listed here is rejected as a conflict instead of
// being silently ignored.
var transitions = map[Status][]Status{
	StatusPending: {StatusMatched, StatusDeleted},
	StatusMatched: {StatusPending},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusMatched, StatusDeleted, StatusCancelled, StatusDelivered:
		return true
	}
	return false
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
