package handler

import (
	"time"

	"github.com/studysync/studysync/internal/model"
	"github.com/studysync/studysync/internal/progress"
)

// View types decorate entities with derived display fields. Progress is
// computed on demand, never stored.

type goalView struct {
	*model.Goal
	Progress int `json:"progress"`
}

type courseView struct {
	*model.Course
	Goals         []goalView `json:"goals"`
	Progress      int        `json:"progress"`
	DaysRemaining int        `json:"daysRemaining"`
}

func newGoalView(goal *model.Goal) goalView {
	return goalView{Goal: goal, Progress: progress.Goal(goal)}
}

func newCourseView(course *model.Course) courseView {
	goals := make([]goalView, len(course.Goals))
	for i, goal := range course.Goals {
		goals[i] = newGoalView(goal)
	}

	return courseView{
		Course:        course,
		Goals:         goals,
		Progress:      progress.CourseDisplay(course),
		DaysRemaining: course.DaysRemaining(time.Now()),
	}
}

func newCourseViews(courses []*model.Course) []courseView {
	views := make([]courseView, len(courses))
	for i, course := range courses {
		views[i] = newCourseView(course)
	}
	return views
}
