package model

import "time"

// Task is a task record owned by the task store.
type Task struct {
	ID          string     // UUID
	Task        string     // Description
	Deadline    string     // "2006-01-02", empty when none
	Category    string     // Work, Health, Learning, Finance, Personal
	Priority    int        // 1=low, 2=medium, 3=high, 4=urgent
	Done        bool       // Completion flag
	CreatedAt   time.Time  // Set by the store
	CompletedAt *time.Time // Set when Done flips to true
}

// Priority levels extracted from user text.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
	PriorityUrgent = 4
)
