package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studysync/studysync/internal/model"
	"github.com/studysync/studysync/internal/repository"
)

type ProgressLogInput struct {
	TaskID    *string   `json:"taskId"`
	Date      time.Time `json:"date"`
	TimeSpent int       `json:"timeSpent"`
	Notes     string    `json:"notes"`
}

// ProgressLogService records study-session audit entries. They are
// write-only with respect to progress aggregation.
type ProgressLogService struct {
	repo     repository.ProgressLogRepository
	taskRepo repository.TaskRepository
}

func NewProgressLogService(repo repository.ProgressLogRepository, taskRepo repository.TaskRepository) *ProgressLogService {
	return &ProgressLogService{
		repo:     repo,
		taskRepo: taskRepo,
	}
}

func (s *ProgressLogService) Create(userID string, in ProgressLogInput) (*model.ProgressLog, error) {
	if in.TimeSpent <= 0 {
		return nil, fmt.Errorf("%w: time spent must be positive", ErrInvalidInput)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	// A referenced task must belong to the caller.
	if in.TaskID != nil {
		_, err := s.taskRepo.ByID(userID, *in.TaskID)
		if err != nil {
			return nil, err
		}
	}

	log := &model.ProgressLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		TaskID:    in.TaskID,
		Date:      date,
		TimeSpent: in.TimeSpent,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}

	err := s.repo.Create(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress log: %w", err)
	}

	return log, nil
}

func (s *ProgressLogService) Logs(userID string) ([]*model.ProgressLog, error) {
	return s.repo.ByUser(userID)
}
