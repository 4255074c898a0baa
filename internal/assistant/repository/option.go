package repository

import (
	"time"

	"personal-assistant/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Task     string
	Deadline string // DateFormat string, empty when none
	Category string
	Priority int
}

// ListTasksOptions holds filter parameters for listing Tasks.
// All non-zero fields are applied as AND conditions.
type ListTasksOptions struct {
	Done        *bool
	MinPriority int
	DueOn       string // DateFormat string
	DueBefore   string // DateFormat string, pending tasks past this date
}

// CreateEntryOptions holds parameters for inserting a budget entry.
type CreateEntryOptions struct {
	Description string
	Amount      float64
	Category    string
	Type        model.EntryType
	Date        string // DateFormat string
}

// ListEntriesOptions holds filter parameters for listing budget entries.
type ListEntriesOptions struct {
	Month string // "2006-01" prefix filter
	Type  model.EntryType
}

// CreateEventOptions holds parameters for inserting a schedule event.
type CreateEventOptions struct {
	Title           string
	Description     string
	StartTime       time.Time
	EndTime         *time.Time
	Location        string
	ReminderMinutes int
}

// ListEventsOptions holds a half-open [From, To) window for listing events
// ordered by start time. Zero times leave that side unbounded.
type ListEventsOptions struct {
	From time.Time
	To   time.Time
}
