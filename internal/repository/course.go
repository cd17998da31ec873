package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studysync/studysync/internal/model"
)

// ErrCourseNotFound covers both a missing course and a course owned by
// another user. Every query here is scoped by user_id so the two cases
// are indistinguishable to callers.
var ErrCourseNotFound = errors.New("course not found")

type CourseRepository interface {
	Create(course *model.Course) error
	ByID(userID, courseID string) (*model.Course, error)
	WithChildren(userID, courseID string) (*model.Course, error)
	Courses(userID string) ([]*model.Course, error)
	Update(course *model.Course) error
	Delete(userID, courseID string) error
	CompleteCascade(userID, courseID string, completedAt time.Time) error
	Reopen(userID, courseID string) error
}

type courseRepository struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	query := `INSERT INTO courses (id, user_id, title, description, start_date, end_date, color, completed, completed_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		course.ID,
		course.UserID,
		course.Title,
		course.Description,
		course.StartDate,
		course.EndDate,
		course.Color,
		course.Completed,
		course.CompletedAt,
		course.CreatedAt,
	)

	return err
}

func (r *courseRepository) ByID(userID, courseID string) (*model.Course, error) {
	course := &model.Course{}
	query := `SELECT * FROM courses WHERE id = $1 AND user_id = $2`

	err := r.db.Get(course, query, courseID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}

	return course, err
}

func (r *courseRepository) WithChildren(userID, courseID string) (*model.Course, error) {
	course, err := r.ByID(userID, courseID)
	if err != nil {
		return nil, err
	}

	err = r.loadChildren([]*model.Course{course})
	if err != nil {
		return nil, err
	}

	return course, nil
}

func (r *courseRepository) Courses(userID string) ([]*model.Course, error) {
	courses := []*model.Course{}
	query := `SELECT * FROM courses WHERE user_id = $1 ORDER BY created_at`

	err := r.db.Select(&courses, query, userID)
	if err != nil {
		return nil, err
	}

	err = r.loadChildren(courses)
	if err != nil {
		return nil, err
	}

	return courses, nil
}

// loadChildren attaches goals and their tasks to the given courses.
func (r *courseRepository) loadChildren(courses []*model.Course) error {
	if len(courses) == 0 {
		return nil
	}

	courseIDs := make([]string, len(courses))
	byCourse := make(map[string]*model.Course, len(courses))
	for i, course := range courses {
		course.Goals = []*model.Goal{}
		courseIDs[i] = course.ID
		byCourse[course.ID] = course
	}

	query, args, err := sqlx.In(`SELECT * FROM goals WHERE course_id IN (?) ORDER BY created_at`, courseIDs)
	if err != nil {
		return err
	}

	goals := []*model.Goal{}
	err = r.db.Select(&goals, r.db.Rebind(query), args...)
	if err != nil {
		return err
	}

	if len(goals) == 0 {
		return nil
	}

	goalIDs := make([]string, len(goals))
	byGoal := make(map[string]*model.Goal, len(goals))
	for i, goal := range goals {
		goal.Tasks = []*model.Task{}
		goalIDs[i] = goal.ID
		byGoal[goal.ID] = goal
		byCourse[goal.CourseID].Goals = append(byCourse[goal.CourseID].Goals, goal)
	}

	query, args, err = sqlx.In(`SELECT * FROM tasks WHERE goal_id IN (?) ORDER BY created_at`, goalIDs)
	if err != nil {
		return err
	}

	tasks := []*model.Task{}
	err = r.db.Select(&tasks, r.db.Rebind(query), args...)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		byGoal[task.GoalID].Tasks = append(byGoal[task.GoalID].Tasks, task)
	}

	return nil
}

func (r *courseRepository) Update(course *model.Course) error {
	query := `UPDATE courses
	          SET title = $1, description = $2, start_date = $3, end_date = $4, color = $5
	          WHERE id = $6 AND user_id = $7`

	result, err := r.db.Exec(query,
		course.Title,
		course.Description,
		course.StartDate,
		course.EndDate,
		course.Color,
		course.ID,
		course.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCourseNotFound
	}

	return nil
}

func (r *courseRepository) Delete(userID, courseID string) error {
	query := `DELETE FROM courses WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, courseID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// CompleteCascade marks the course and every child goal and task
// completed in a single transaction, so readers never observe a
// completed course with incomplete children.
func (r *courseRepository) CompleteCascade(userID, courseID string, completedAt time.Time) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.Get(&id, `SELECT id FROM courses WHERE id = $1 AND user_id = $2`, courseID, userID)
	if err == sql.ErrNoRows {
		return ErrCourseNotFound
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE goals SET completed = TRUE WHERE course_id = $1`, courseID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE tasks SET completed = TRUE
	                  WHERE goal_id IN (SELECT id FROM goals WHERE course_id = $1)`, courseID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE courses SET completed = TRUE, completed_at = $1 WHERE id = $2`, completedAt, courseID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Reopen clears the course's completed flag and timestamp. Child goals
// and tasks are left as they are; reopening does not cascade.
func (r *courseRepository) Reopen(userID, courseID string) error {
	query := `UPDATE courses SET completed = FALSE, completed_at = NULL WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, courseID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCourseNotFound
	}

	return nil
}
