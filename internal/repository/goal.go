package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/studysync/studysync/internal/model"
)

// ErrGoalNotFound covers both a missing goal and a goal whose course
// belongs to another user.
var ErrGoalNotFound = errors.New("goal not found")

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(userID, goalID string) (*model.Goal, error)
	WithTasks(userID, goalID string) (*model.Goal, error)
	SetCompleted(userID, goalID string, completed bool) error
	Delete(userID, goalID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, course_id, title, description, deadline, priority, completed, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.CourseID,
		goal.Title,
		goal.Description,
		goal.Deadline,
		goal.Priority,
		goal.Completed,
		goal.CreatedAt,
	)

	return err
}

func (r *goalRepository) ByID(userID, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT goals.* FROM goals
	          JOIN courses ON courses.id = goals.course_id
	          WHERE goals.id = $1 AND courses.user_id = $2`

	err := r.db.Get(goal, query, goalID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) WithTasks(userID, goalID string) (*model.Goal, error) {
	goal, err := r.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Tasks = []*model.Task{}
	err = r.db.Select(&goal.Tasks, `SELECT * FROM tasks WHERE goal_id = $1 ORDER BY created_at`, goalID)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (r *goalRepository) SetCompleted(userID, goalID string, completed bool) error {
	query := `UPDATE goals SET completed = $1
	          WHERE id = $2 AND course_id IN (SELECT id FROM courses WHERE user_id = $3)`

	result, err := r.db.Exec(query, completed, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(userID, goalID string) error {
	query := `DELETE FROM goals
	          WHERE id = $1 AND course_id IN (SELECT id FROM courses WHERE user_id = $2)`

	result, err := r.db.Exec(query, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
