package service

import (
	"github.com/studysync/studysync/internal/model"
	"github.com/studysync/studysync/internal/progress"
	"github.com/studysync/studysync/internal/repository"
)

type DashboardService struct {
	courseRepo repository.CourseRepository
}

func NewDashboardService(courseRepo repository.CourseRepository) *DashboardService {
	return &DashboardService{courseRepo: courseRepo}
}

// Overview loads the user's courses with children in display order and
// the aggregated stats computed over them.
func (s *DashboardService) Overview(userID string) ([]*model.Course, progress.Stats, error) {
	courses, err := s.courseRepo.Courses(userID)
	if err != nil {
		return nil, progress.Stats{}, err
	}

	stats := progress.Dashboard(courses)

	for _, course := range courses {
		sortChildren(course)
	}

	return courses, stats, nil
}
