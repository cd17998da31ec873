package model

import (
	"time"
)

// ProgressLog is a write-only audit entry. Progress percentages are
// always derived from task/goal completion, never from these rows.
type ProgressLog struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	TaskID    *string   `db:"task_id" json:"taskId"`
	Date      time.Time `db:"date" json:"date"`
	TimeSpent int       `db:"time_spent" json:"timeSpent"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
