package events

import "time"

const (
	LeaveCreatedAction = "LEAVE_CREATED"
	LeaveDeletedAction = "LEAVE_DELETED"
)

type LeaveCreatedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	LeaveType  string    `json:"leave_type"`
	ApplyTime  string    `json:"apply_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

type LeaveDeletedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
