// Package progress computes completion percentages and list ordering for
// courses, goals and tasks. Everything here is pure: callers pass loaded
// entities, nothing is persisted.
package progress

import (
	"math"

	"github.com/studysync/studysync/internal/model"
)

// EffectivelyCompletedThreshold is the computed percentage above which a
// course counts as done for dashboard stats. This is a display heuristic
// only; it is independent of the course's completed flag.
const EffectivelyCompletedThreshold = 90

// Goal returns the completion percentage of a single goal:
// 0 with no tasks, otherwise round(100 * completed / total).
func Goal(goal *model.Goal) int {
	if len(goal.Tasks) == 0 {
		return 0
	}

	completed := 0
	for _, task := range goal.Tasks {
		if task.Completed {
			completed++
		}
	}

	return int(math.Round(float64(completed) / float64(len(goal.Tasks)) * 100))
}

// Course returns the computed completion percentage of a course: a 50/50
// split between the goal-completion ratio and the task-completion ratio.
// Task counts span every goal of the course regardless of the goal's own
// completed flag. A course without goals is 0. The course's completed
// flag is ignored here; see CourseDisplay.
func Course(course *model.Course) int {
	totalGoals := len(course.Goals)
	if totalGoals == 0 {
		return 0
	}

	completedGoals := 0
	totalTasks := 0
	completedTasks := 0
	for _, goal := range course.Goals {
		if goal.Completed {
			completedGoals++
		}
		totalTasks += len(goal.Tasks)
		for _, task := range goal.Tasks {
			if task.Completed {
				completedTasks++
			}
		}
	}

	percentage := 0.0
	if totalGoals > 0 {
		percentage += float64(completedGoals) / float64(totalGoals) * 50
	}
	if totalTasks > 0 {
		percentage += float64(completedTasks) / float64(totalTasks) * 50
	}

	return int(math.Round(percentage))
}

// CourseDisplay returns the percentage shown to the user: a course marked
// completed displays 100 regardless of its computed value.
func CourseDisplay(course *model.Course) int {
	if course.Completed {
		return 100
	}
	return Course(course)
}

// Stats aggregates a user's courses for the dashboard.
type Stats struct {
	TotalCourses     int `json:"totalCourses"`
	CompletedCourses int `json:"completedCourses"`
	TotalGoals       int `json:"totalGoals"`
	CompletedGoals   int `json:"completedGoals"`
	TotalTasks       int `json:"totalTasks"`
	CompletedTasks   int `json:"completedTasks"`
	AverageProgress  int `json:"averageProgress"`
}

// Dashboard computes overall stats across courses. AverageProgress is the
// mean of each course's computed (non-overridden) percentage, with
// goalless courses contributing 0. CompletedCourses counts courses whose
// computed progress exceeds EffectivelyCompletedThreshold, independent of
// the completed flag.
func Dashboard(courses []*model.Course) Stats {
	stats := Stats{TotalCourses: len(courses)}

	totalProgress := 0.0
	for _, course := range courses {
		if len(course.Goals) == 0 {
			continue
		}

		courseGoals := len(course.Goals)
		courseCompletedGoals := 0
		courseTasks := 0
		courseCompletedTasks := 0
		for _, goal := range course.Goals {
			if goal.Completed {
				courseCompletedGoals++
			}
			courseTasks += len(goal.Tasks)
			for _, task := range goal.Tasks {
				if task.Completed {
					courseCompletedTasks++
				}
			}
		}

		stats.TotalGoals += courseGoals
		stats.CompletedGoals += courseCompletedGoals
		stats.TotalTasks += courseTasks
		stats.CompletedTasks += courseCompletedTasks

		courseProgress := 0.0
		if courseGoals > 0 {
			courseProgress += float64(courseCompletedGoals) / float64(courseGoals) * 50
		}
		if courseTasks > 0 {
			courseProgress += float64(courseCompletedTasks) / float64(courseTasks) * 50
		}

		totalProgress += courseProgress

		if courseProgress > EffectivelyCompletedThreshold {
			stats.CompletedCourses++
		}
	}

	if stats.TotalCourses > 0 {
		stats.AverageProgress = int(math.Round(totalProgress / float64(stats.TotalCourses)))
	}

	return stats
}
