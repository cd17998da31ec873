package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studysync/studysync/internal/model"
	"github.com/studysync/studysync/internal/progress"
	"github.com/studysync/studysync/internal/repository"
	"github.com/studysync/studysync/internal/validation"
)

type GoalInput struct {
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Priority    string    `json:"priority"`
}

type GoalService struct {
	repo       repository.GoalRepository
	courseRepo repository.CourseRepository
}

func NewGoalService(repo repository.GoalRepository, courseRepo repository.CourseRepository) *GoalService {
	return &GoalService{
		repo:       repo,
		courseRepo: courseRepo,
	}
}

func (s *GoalService) Create(userID string, in GoalInput) (*model.Goal, error) {
	if err := validation.ValidateTitle(in.Title); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if !model.ValidPriority(in.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, in.Priority)
	}
	if in.Deadline.IsZero() {
		return nil, fmt.Errorf("%w: deadline is required", ErrInvalidInput)
	}

	// Ownership guard: the target course must belong to the caller.
	// A foreign course surfaces as not found, same as a missing one.
	_, err := s.courseRepo.ByID(userID, in.CourseID)
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{
		ID:          uuid.New().String(),
		CourseID:    in.CourseID,
		Title:       in.Title,
		Description: in.Description,
		Deadline:    in.Deadline,
		Priority:    in.Priority,
		Tasks:       []*model.Task{},
		CreatedAt:   time.Now(),
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// WithTasks returns the goal with its tasks filtered and sorted for display.
func (s *GoalService) WithTasks(userID, goalID, filter string) (*model.Goal, error) {
	goal, err := s.repo.WithTasks(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Tasks = progress.FilterTasks(goal.Tasks, filter)
	progress.SortTasks(goal.Tasks)
	return goal, nil
}

func (s *GoalService) SetCompleted(userID, goalID string, completed bool) (*model.Goal, error) {
	err := s.repo.SetCompleted(userID, goalID, completed)
	if err != nil {
		return nil, err
	}

	// Reload with tasks so the caller can recompute progress from the
	// updated state.
	goal, err := s.repo.WithTasks(userID, goalID)
	if err != nil {
		return nil, err
	}

	progress.SortTasks(goal.Tasks)
	return goal, nil
}

func (s *GoalService) Delete(userID, goalID string) error {
	return s.repo.Delete(userID, goalID)
}
