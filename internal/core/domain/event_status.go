package domain

// EventStatus is the ordered lifecycle of an event.
type EventStatus string

const (
	StatusCaptured   EventStatus = "captured"
	StatusClassified EventStatus = "classified"
	StatusApproved   EventStatus = "approved"
	StatusPosted     EventStatus = "posted"
	StatusSettled    EventStatus = "settled"
)

var statusOrder = []EventStatus{
	StatusCaptured,
	StatusClassified,
	StatusApproved,
	StatusPosted,
	StatusSettled,
}

// AllStatuses returns the statuses in lifecycle order.
func AllStatuses() []EventStatus {
	out := make([]EventStatus, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// Rank is the position of s in the lifecycle, or -1 for unknown statuses.
func (s EventStatus) Rank() int {
	for i, known := range statusOrder {
		if s == known {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known status.
func (s EventStatus) Valid() bool {
	return s.Rank() >= 0
}

// Next returns the immediate successor of s. Settled is terminal.
func (s EventStatus) Next() (EventStatus, bool) {
	switch s {
	case StatusCaptured:
		return StatusClassified, true
	case StatusClassified:
		return StatusApproved, true
	case StatusApproved:
		return StatusPosted, true
	case StatusPosted:
		return StatusSettled, true
	case StatusSettled:
		return "", false
	}
	return "", false
}

// IsTerminal reports whether no transition leaves s.
func (s EventStatus) IsTerminal() bool {
	return s == StatusSettled
}

// IsBooked reports whether s is posted or later.
func (s EventStatus) IsBooked() bool {
	return s == StatusPosted || s == StatusSettled
}
