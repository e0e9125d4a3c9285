package models

import "fmt"

// ChefStatus is the closed set of chef lifecycle states.
type ChefStatus string

const (
	ChefActive   ChefStatus = "active"
	ChefInactive ChefStatus = "inactive"
)

// ParseChefStatus validates a raw status string coming from storage or a
// client. Unknown values are an error, never silently accepted.
func ParseChefStatus(raw string) (ChefStatus, error) {
	switch ChefStatus(raw) {
	case ChefActive, ChefInactive:
		return ChefStatus(raw), nil
	default:
		return "", fmt.Errorf("unknown chef status %q", raw)
	}
}

// EventStatus is the closed set of event lifecycle states.
type EventStatus string

const (
	EventPending   EventStatus = "pending"
	EventConfirmed EventStatus = "confirmed"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func ParseEventStatus(raw string) (EventStatus, error) {
	switch EventStatus(raw) {
	case EventPending, EventConfirmed, EventCompleted, EventCancelled:
		return EventStatus(raw), nil
	default:
		return "", fmt.Errorf("unknown event status %q", raw)
	}
}

// CanTransition reports whether an event may move from its current status
// to the target. Confirm and cancel are only reachable from pending,
// complete only from confirmed. Cancelled and completed are terminal.
func (s EventStatus) CanTransition(to EventStatus) bool {
	switch s {
	case EventPending:
		return to == EventConfirmed || to == EventCancelled
	case EventConfirmed:
		return to == EventCompleted
	default:
		return false
	}
}

// Role is the closed set of profile roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleUser:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}
