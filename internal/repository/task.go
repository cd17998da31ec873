package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/studysync/studysync/internal/model"
)

// ErrTaskNotFound covers both a missing task and a task whose goal's
// course belongs to another user.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	Create(task *model.Task) error
	ByID(userID, taskID string) (*model.Task, error)
	SetCompleted(userID, taskID string, completed bool) error
	Delete(userID, taskID string) error
}

type taskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *model.Task) error {
	query := `INSERT INTO tasks (id, goal_id, title, description, due_date, estimated_hours, completed, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		task.ID,
		task.GoalID,
		task.Title,
		task.Description,
		task.DueDate,
		task.EstimatedHours,
		task.Completed,
		task.CreatedAt,
	)

	return err
}

func (r *taskRepository) ByID(userID, taskID string) (*model.Task, error) {
	task := &model.Task{}
	query := `SELECT tasks.* FROM tasks
	          JOIN goals ON goals.id = tasks.goal_id
	          JOIN courses ON courses.id = goals.course_id
	          WHERE tasks.id = $1 AND courses.user_id = $2`

	err := r.db.Get(task, query, taskID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}

	return task, err
}

func (r *taskRepository) SetCompleted(userID, taskID string, completed bool) error {
	query := `UPDATE tasks SET completed = $1
	          WHERE id = $2 AND goal_id IN (
	              SELECT goals.id FROM goals
	              JOIN courses ON courses.id = goals.course_id
	              WHERE courses.user_id = $3)`

	result, err := r.db.Exec(query, completed, taskID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) Delete(userID, taskID string) error {
	query := `DELETE FROM tasks
	          WHERE id = $1 AND goal_id IN (
	              SELECT goals.id FROM goals
	              JOIN courses ON courses.id = goals.course_id
	              WHERE courses.user_id = $2)`

	result, err := r.db.Exec(query, taskID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}
