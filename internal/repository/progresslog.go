package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/studysync/studysync/internal/model"
)

type ProgressLogRepository interface {
	Create(log *model.ProgressLog) error
	ByUser(userID string) ([]*model.ProgressLog, error)
}

type progressLogRepository struct {
	db *sqlx.DB
}

func NewProgressLogRepository(db *sqlx.DB) ProgressLogRepository {
	return &progressLogRepository{db: db}
}

func (r *progressLogRepository) Create(log *model.ProgressLog) error {
	query := `INSERT INTO progress_logs (id, user_id, task_id, date, time_spent, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		log.ID,
		log.UserID,
		log.TaskID,
		log.Date,
		log.TimeSpent,
		log.Notes,
		log.CreatedAt,
	)

	return err
}

func (r *progressLogRepository) ByUser(userID string) ([]*model.ProgressLog, error) {
	logs := []*model.ProgressLog{}
	query := `SELECT * FROM progress_logs WHERE user_id = $1 ORDER BY date DESC`

	err := r.db.Select(&logs, query, userID)
	return logs, err
}
