package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studysync/studysync/internal/model"
	"github.com/studysync/studysync/internal/repository"
	"github.com/studysync/studysync/internal/validation"
)

type TaskInput struct {
	GoalID         string     `json:"goalId"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	DueDate        *time.Time `json:"dueDate"`
	EstimatedHours *int       `json:"estimatedHours"`
}

type TaskService struct {
	repo     repository.TaskRepository
	goalRepo repository.GoalRepository
}

func NewTaskService(repo repository.TaskRepository, goalRepo repository.GoalRepository) *TaskService {
	return &TaskService{
		repo:     repo,
		goalRepo: goalRepo,
	}
}

func (s *TaskService) Create(userID string, in TaskInput) (*model.Task, error) {
	if err := validation.ValidateTitle(in.Title); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if in.EstimatedHours != nil && *in.EstimatedHours <= 0 {
		return nil, fmt.Errorf("%w: estimated hours must be positive", ErrInvalidInput)
	}

	// Ownership guard through the goal's course.
	_, err := s.goalRepo.ByID(userID, in.GoalID)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		ID:             uuid.New().String(),
		GoalID:         in.GoalID,
		Title:          in.Title,
		Description:    in.Description,
		DueDate:        in.DueDate,
		EstimatedHours: in.EstimatedHours,
		CreatedAt:      time.Now(),
	}

	err = s.repo.Create(task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (s *TaskService) SetCompleted(userID, taskID string, completed bool) (*model.Task, error) {
	err := s.repo.SetCompleted(userID, taskID, completed)
	if err != nil {
		return nil, err
	}

	return s.repo.ByID(userID, taskID)
}

func (s *TaskService) Delete(userID, taskID string) error {
	return s.repo.Delete(userID, taskID)
}
