package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studysync/studysync/internal/model"
)

func taskDone(done bool) *model.Task {
	return &model.Task{Completed: done}
}

func goalWith(done bool, tasks ...*model.Task) *model.Goal {
	return &model.Goal{Completed: done, Tasks: tasks}
}

func TestGoal_NoTasks(t *testing.T) {
	assert.Equal(t, 0, Goal(&model.Goal{}))
}

func TestGoal_Rounding(t *testing.T) {
	oneOfThree := goalWith(false, taskDone(true), taskDone(false), taskDone(false))
	assert.Equal(t, 33, Goal(oneOfThree))

	twoOfThree := goalWith(false, taskDone(true), taskDone(true), taskDone(false))
	assert.Equal(t, 67, Goal(twoOfThree))

	allDone := goalWith(false, taskDone(true), taskDone(true))
	assert.Equal(t, 100, Goal(allDone))
}

func TestCourse_WeightedSplit(t *testing.T) {
	// 2 goals (1 completed), 4 tasks (1 completed):
	// 50*1/2 + 50*1/4 = 25 + 12.5 -> 38
	course := &model.Course{
		Goals: []*model.Goal{
			goalWith(true, taskDone(true), taskDone(false)),
			goalWith(false, taskDone(false), taskDone(false)),
		},
	}
	assert.Equal(t, 38, Course(course))
}

func TestCourse_TasksCountedRegardlessOfGoalFlag(t *testing.T) {
	// The completed goal's open tasks still count toward the task ratio.
	course := &model.Course{
		Goals: []*model.Goal{
			goalWith(true, taskDone(false), taskDone(false)),
		},
	}
	// 50*1/1 + 50*0/2 = 50
	assert.Equal(t, 50, Course(course))
}

func TestCourse_NoGoals(t *testing.T) {
	assert.Equal(t, 0, Course(&model.Course{}))
}

func TestCourse_GoalsWithoutTasks(t *testing.T) {
	// Only the goal ratio contributes when no tasks exist anywhere.
	course := &model.Course{
		Goals: []*model.Goal{goalWith(true), goalWith(false)},
	}
	assert.Equal(t, 25, Course(course))
}

func TestCourseDisplay_CompletedOverride(t *testing.T) {
	course := &model.Course{
		Completed: true,
		Goals:     []*model.Goal{goalWith(false, taskDone(false))},
	}
	assert.Equal(t, 100, CourseDisplay(course))
	// The computed value is untouched by the override.
	assert.Equal(t, 0, Course(course))
}

func TestDashboard_AveragesComputedProgress(t *testing.T) {
	courses := []*model.Course{
		{Goals: []*model.Goal{goalWith(true, taskDone(true))}}, // 100
		{Goals: []*model.Goal{goalWith(false, taskDone(false))}}, // 0
	}
	stats := Dashboard(courses)
	assert.Equal(t, 50, stats.AverageProgress)
	assert.Equal(t, 2, stats.TotalCourses)
	assert.Equal(t, 2, stats.TotalGoals)
	assert.Equal(t, 1, stats.CompletedGoals)
	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
}

func TestDashboard_EffectivelyCompletedHeuristic(t *testing.T) {
	over90 := &model.Course{
		Goals: []*model.Goal{
			goalWith(true, taskDone(true), taskDone(true), taskDone(true), taskDone(true), taskDone(true),
				taskDone(true), taskDone(true), taskDone(true), taskDone(true), taskDone(false)),
		},
	}
	// 50 + 50*9/10 = 95 > 90, counted despite completed flag being false.
	stats := Dashboard([]*model.Course{over90})
	assert.Equal(t, 1, stats.CompletedCourses)

	exactly90 := &model.Course{
		Goals: []*model.Goal{
			goalWith(true, taskDone(true), taskDone(true), taskDone(true), taskDone(true), taskDone(false)),
		},
	}
	// 50 + 50*4/5 = 90, threshold is strict.
	stats = Dashboard([]*model.Course{exactly90})
	assert.Equal(t, 0, stats.CompletedCourses)
}

func TestDashboard_GoallessCourseExcludedFromHeuristic(t *testing.T) {
	// A course without goals contributes 0 to the average and is never
	// effectively completed, even when its completed flag is set.
	courses := []*model.Course{
		{Completed: true},
		{Goals: []*model.Goal{goalWith(true, taskDone(true))}},
	}
	stats := Dashboard(courses)
	assert.Equal(t, 1, stats.CompletedCourses)
	assert.Equal(t, 50, stats.AverageProgress)
}

func TestDashboard_NoCourses(t *testing.T) {
	stats := Dashboard(nil)
	assert.Equal(t, 0, stats.AverageProgress)
	assert.Equal(t, 0, stats.TotalCourses)
}
