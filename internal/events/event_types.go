package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffCheckedIn  EventType = "staff_checked_in"
	EventStaffCheckedOut EventType = "staff_checked_out"
	EventPasswordChanged EventType = "password_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	StaffID   int64       `json:"staff_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CheckedInPayload accompanies EventStaffCheckedIn.
type CheckedInPayload struct {
	SessionID int64     `json:"session_id"`
	CheckInAt time.Time `json:"check_in_at"`
}

// CheckedOutPayload accompanies EventStaffCheckedOut.
type CheckedOutPayload struct {
	SessionID  int64     `json:"session_id"`
	CheckInAt  time.Time `json:"check_in_at"`
	CheckOutAt time.Time `json:"check_out_at"`
}
