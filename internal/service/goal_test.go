package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysync/studysync/internal/model"
	"github.com/studysync/studysync/internal/progress"
	"github.com/studysync/studysync/internal/repository"
)

func TestGoalService_CreateRequiresOwnedCourse(t *testing.T) {
	store := newFakeStore()
	seedCourse(store)
	svc := NewGoalService(&fakeGoalRepo{store: store}, &fakeCourseRepo{store: store})

	in := GoalInput{
		CourseID: "c1",
		Title:    "Deployment",
		Deadline: time.Now().AddDate(0, 1, 0),
		Priority: model.PriorityUrgent,
	}

	_, err := svc.Create("intruder", in)
	assert.ErrorIs(t, err, repository.ErrCourseNotFound)

	goal, err := svc.Create("owner", in)
	require.NoError(t, err)
	assert.Equal(t, "c1", goal.CourseID)
	assert.False(t, goal.Completed)
}

func TestGoalService_CreateValidation(t *testing.T) {
	store := newFakeStore()
	seedCourse(store)
	svc := NewGoalService(&fakeGoalRepo{store: store}, &fakeCourseRepo{store: store})

	_, err := svc.Create("owner", GoalInput{CourseID: "c1", Title: "", Deadline: time.Now(), Priority: model.PriorityLow})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create("owner", GoalInput{CourseID: "c1", Title: "x", Deadline: time.Now(), Priority: "SOMEDAY"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create("owner", GoalInput{CourseID: "c1", Title: "x", Priority: model.PriorityLow})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGoalService_ToggleScopedToOwner(t *testing.T) {
	store := newFakeStore()
	seedCourse(store)
	svc := NewGoalService(&fakeGoalRepo{store: store}, &fakeCourseRepo{store: store})

	_, err := svc.SetCompleted("intruder", "g1", true)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
	assert.False(t, store.goals["g1"].Completed)

	goal, err := svc.SetCompleted("owner", "g1", true)
	require.NoError(t, err)
	assert.True(t, goal.Completed)
}

func TestGoalService_ToggleReturnsGoalWithTasks(t *testing.T) {
	store := newFakeStore()
	seedCourse(store)
	store.tasks["t1"].Completed = true
	store.tasks["t2"].Completed = true
	svc := NewGoalService(&fakeGoalRepo{store: store}, &fakeCourseRepo{store: store})

	goal, err := svc.SetCompleted("owner", "g1", true)
	require.NoError(t, err)

	// The toggle response carries the tasks so progress computed from it
	// matches the stored state, not an empty child slice.
	require.Len(t, goal.Tasks, 2)
	assert.Equal(t, 100, progress.Goal(goal))

	goal, err = svc.SetCompleted("owner", "g1", false)
	require.NoError(t, err)
	require.Len(t, goal.Tasks, 2)
	assert.Equal(t, 100, progress.Goal(goal))
}

func TestGoalService_WithTasksFilters(t *testing.T) {
	store := newFakeStore()
	seedCourse(store)
	store.tasks["t1"].Completed = true
	svc := NewGoalService(&fakeGoalRepo{store: store}, &fakeCourseRepo{store: store})

	goal, err := svc.WithTasks("owner", "g1", "pending")
	require.NoError(t, err)
	require.Len(t, goal.Tasks, 1)
	assert.Equal(t, "t2", goal.Tasks[0].ID)
}

func TestTaskService_CreateValidation(t *testing.T) {
	store := newFakeStore()
	seedCourse(store)
	svc := NewTaskService(&fakeTaskRepo{store: store}, &fakeGoalRepo{store: store})

	negative := -2
	_, err := svc.Create("owner", TaskInput{GoalID: "g1", Title: "x", EstimatedHours: &negative})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create("intruder", TaskInput{GoalID: "g1", Title: "x"})
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)

	hours := 20
	task, err := svc.Create("owner", TaskInput{GoalID: "g1", Title: "HTML & CSS Grundlagen", EstimatedHours: &hours})
	require.NoError(t, err)
	assert.Equal(t, "g1", task.GoalID)
}

func TestProgressLogService_Create(t *testing.T) {
	store := newFakeStore()
	seedCourse(store)
	svc := NewProgressLogService(&fakeProgressLogRepo{store: store}, &fakeTaskRepo{store: store})

	_, err := svc.Create("owner", ProgressLogInput{TimeSpent: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	foreign := "t1"
	_, err = svc.Create("intruder", ProgressLogInput{TimeSpent: 2, TaskID: &foreign})
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	log, err := svc.Create("owner", ProgressLogInput{TimeSpent: 3, TaskID: &foreign, Notes: "Data cleaning geübt"})
	require.NoError(t, err)
	assert.False(t, log.Date.IsZero())

	logs, err := svc.Logs("owner")
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
