package domain

import "time"

// Task is one assignment on a user's plate, optionally linked to a deal.
type Task struct {
	ID        string
	UserID    string
	DealID    string
	Title     string
	Status    TaskStatus
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the task still counts against its owner's load.
func (t *Task) Open() bool {
	return t.Status != TaskDone
}

// ClassifyAvailability buckets a user by their count of open tasks:
// 0 is Available, 1-2 is Light, 3 or more is Busy.
func ClassifyAvailability(openTasks int) Availability {
	switch {
	case openTasks <= 0:
		return Available
	case openTasks <= 2:
		return Light
	default:
		return Busy
	}
}
