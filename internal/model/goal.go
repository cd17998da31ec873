package model

import (
	"time"
)

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// priorityRank is an explicit mapping so sort order never depends on
// declaration order. Unknown priorities rank last.
var priorityRank = map[string]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

// PriorityRank returns the sort rank for a priority, 4 for unknown values.
func PriorityRank(priority string) int {
	rank, ok := priorityRank[priority]
	if !ok {
		return 4
	}
	return rank
}

// ValidPriority reports whether priority is one of the known levels.
func ValidPriority(priority string) bool {
	_, ok := priorityRank[priority]
	return ok
}

type Goal struct {
	ID          string    `db:"id" json:"id"`
	CourseID    string    `db:"course_id" json:"courseId"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	Deadline    time.Time `db:"deadline" json:"deadline"`
	Priority    string    `db:"priority" json:"priority"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`

	// Loaded separately, not a column
	Tasks []*Task `db:"-" json:"tasks"`
}
