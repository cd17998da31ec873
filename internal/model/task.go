package model

import (
	"time"
)

type Task struct {
	ID             string     `db:"id" json:"id"`
	GoalID         string     `db:"goal_id" json:"goalId"`
	Title          string     `db:"title" json:"title"`
	Description    *string    `db:"description" json:"description"`
	DueDate        *time.Time `db:"due_date" json:"dueDate"`
	EstimatedHours *int       `db:"estimated_hours" json:"estimatedHours"`
	Completed      bool       `db:"completed" json:"completed"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}
