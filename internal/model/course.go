package model

import (
	"math"
	"time"
)

const DefaultCourseColor = "#3B82F6"

type Course struct {
	ID          string     `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"userId"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	StartDate   time.Time  `db:"start_date" json:"startDate"`
	EndDate     time.Time  `db:"end_date" json:"endDate"`
	Color       string     `db:"color" json:"color"`
	Completed   bool       `db:"completed" json:"completed"`
	CompletedAt *time.Time `db:"completed_at" json:"completedAt"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`

	// Loaded separately, not a column
	Goals []*Goal `db:"-" json:"goals"`
}

// DaysRemaining reports whole days from now until the course end date,
// negative once the end date has passed.
func (c *Course) DaysRemaining(now time.Time) int {
	return int(math.Ceil(c.EndDate.Sub(now).Hours() / 24))
}
