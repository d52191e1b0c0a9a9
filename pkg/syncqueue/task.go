package syncqueue

import "time"

// TaskAction identifies the calendar operation a task asks for.
type TaskAction string

const (
	ActionCreate TaskAction = "create"
	ActionUpdate TaskAction = "update"
	ActionDelete TaskAction = "delete"
)

// Task is an outbound calendar-sync request. Booking operations enqueue
// tasks best-effort; the sync worker consumes them independently so a slow
// or failing calendar API never blocks a booking mutation.
type Task struct {
	Action     TaskAction `json:"action"`
	BookingID  string     `json:"bookingId"`
	EventID    string     `json:"eventId,omitempty"`
	Attempt    int        `json:"attempt"`
	EnqueuedAt time.Time  `json:"enqueuedAt"`
}

// RoutingKey returns the topic routing key for the task.
func (t Task) RoutingKey() string {
	return "calendar.sync." + string(t.Action)
}
