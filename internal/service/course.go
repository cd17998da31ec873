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

type CourseInput struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Color       string     `json:"color"`
}

type CourseService struct {
	repo repository.CourseRepository
}

func NewCourseService(repo repository.CourseRepository) *CourseService {
	return &CourseService{repo: repo}
}

func (s *CourseService) validate(in CourseInput) error {
	if err := validation.ValidateTitle(in.Title); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if in.EndDate.Before(in.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}
	return nil
}

func (s *CourseService) Create(userID string, in CourseInput) (*model.Course, error) {
	err := s.validate(in)
	if err != nil {
		return nil, err
	}

	color := in.Color
	if color == "" {
		color = model.DefaultCourseColor
	}

	course := &model.Course{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Color:       color,
		Goals:       []*model.Goal{},
		CreatedAt:   time.Now(),
	}

	err = s.repo.Create(course)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

// ByID returns the course with its goals and tasks in display order.
func (s *CourseService) ByID(userID, courseID string) (*model.Course, error) {
	course, err := s.repo.WithChildren(userID, courseID)
	if err != nil {
		return nil, err
	}

	sortChildren(course)
	return course, nil
}

// Courses returns all of the user's courses with children in display order.
func (s *CourseService) Courses(userID string) ([]*model.Course, error) {
	courses, err := s.repo.Courses(userID)
	if err != nil {
		return nil, err
	}

	for _, course := range courses {
		sortChildren(course)
	}
	return courses, nil
}

func (s *CourseService) Update(userID, courseID string, in CourseInput) (*model.Course, error) {
	err := s.validate(in)
	if err != nil {
		return nil, err
	}

	course, err := s.repo.ByID(userID, courseID)
	if err != nil {
		return nil, err
	}

	course.Title = in.Title
	course.Description = in.Description
	course.StartDate = in.StartDate
	course.EndDate = in.EndDate
	if in.Color != "" {
		course.Color = in.Color
	}

	err = s.repo.Update(course)
	if err != nil {
		return nil, err
	}

	// Reload with children so derived fields reflect the stored state.
	return s.ByID(userID, courseID)
}

func (s *CourseService) Delete(userID, courseID string) error {
	return s.repo.Delete(userID, courseID)
}

// SetCompleted drives the course completion state machine. Completing
// cascades to every child goal and task atomically; reopening reverts
// only the course's own flag and timestamp.
func (s *CourseService) SetCompleted(userID, courseID string, completed bool) (*model.Course, error) {
	var err error
	if completed {
		err = s.repo.CompleteCascade(userID, courseID, time.Now())
	} else {
		err = s.repo.Reopen(userID, courseID)
	}
	if err != nil {
		return nil, err
	}

	return s.ByID(userID, courseID)
}

func sortChildren(course *model.Course) {
	progress.SortGoals(course.Goals)
	for _, goal := range course.Goals {
		progress.SortTasks(goal.Tasks)
	}
}
