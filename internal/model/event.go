package model

import "time"

// ScheduleEvent is a calendar event or reminder record.
type ScheduleEvent struct {
	ID              string     // UUID
	Title           string     // Short label shown in listings
	Description     string     // Optional free text
	StartTime       time.Time  // Event start, location-aware
	EndTime         *time.Time // Nil for open-ended events and reminders
	Location        string     // Optional place name
	ReminderMinutes int        // Minutes before StartTime to remind, default 15
	CreatedAt       time.Time  // Set by the store
}

// DefaultReminderMinutes is applied when a reminder has no explicit lead time.
const DefaultReminderMinutes = 15
