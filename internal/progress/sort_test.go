package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysync/studysync/internal/model"
)

func day(n int) time.Time {
	return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC)
}

func TestSortGoals_CompletedAlwaysLast(t *testing.T) {
	goals := []*model.Goal{
		{ID: "low", Completed: false, Priority: model.PriorityLow, Deadline: day(2)},
		{ID: "done-urgent", Completed: true, Priority: model.PriorityUrgent, Deadline: day(1)},
		{ID: "urgent", Completed: false, Priority: model.PriorityUrgent, Deadline: day(3)},
	}

	SortGoals(goals)

	require.Len(t, goals, 3)
	assert.Equal(t, "urgent", goals[0].ID)
	assert.Equal(t, "low", goals[1].ID)
	assert.Equal(t, "done-urgent", goals[2].ID)
}

func TestSortGoals_PriorityThenDeadline(t *testing.T) {
	goals := []*model.Goal{
		{ID: "high-late", Priority: model.PriorityHigh, Deadline: day(9)},
		{ID: "unknown", Priority: "SOMEDAY", Deadline: day(1)},
		{ID: "high-early", Priority: model.PriorityHigh, Deadline: day(4)},
		{ID: "medium", Priority: model.PriorityMedium, Deadline: day(1)},
	}

	SortGoals(goals)

	ids := []string{goals[0].ID, goals[1].ID, goals[2].ID, goals[3].ID}
	assert.Equal(t, []string{"high-early", "high-late", "medium", "unknown"}, ids)
}

func TestSortTasks_DueDateOrder(t *testing.T) {
	d1, d2 := day(1), day(5)
	tasks := []*model.Task{
		{ID: "no-date-a"},
		{ID: "late", DueDate: &d2},
		{ID: "done", Completed: true, DueDate: &d1},
		{ID: "early", DueDate: &d1},
		{ID: "no-date-b"},
	}

	SortTasks(tasks)

	ids := []string{tasks[0].ID, tasks[1].ID, tasks[2].ID, tasks[3].ID, tasks[4].ID}
	assert.Equal(t, []string{"early", "late", "no-date-a", "no-date-b", "done"}, ids)
}

func TestSortTasks_StableWithoutDueDates(t *testing.T) {
	tasks := []*model.Task{
		{ID: "first"},
		{ID: "second"},
		{ID: "third"},
	}

	SortTasks(tasks)

	assert.Equal(t, "first", tasks[0].ID)
	assert.Equal(t, "second", tasks[1].ID)
	assert.Equal(t, "third", tasks[2].ID)
}

func TestFilterTasks(t *testing.T) {
	tasks := []*model.Task{
		{ID: "a", Completed: true},
		{ID: "b"},
		{ID: "c", Completed: true},
	}

	pending := FilterTasks(tasks, FilterPending)
	require.Len(t, pending, 1)
	assert.Equal(t, "b", pending[0].ID)

	completed := FilterTasks(tasks, FilterCompleted)
	require.Len(t, completed, 2)
	assert.Equal(t, "a", completed[0].ID)
	assert.Equal(t, "c", completed[1].ID)

	assert.Len(t, FilterTasks(tasks, FilterAll), 3)
	assert.Len(t, FilterTasks(tasks, "bogus"), 3)
}

func TestFilterGoals_PreservesOrder(t *testing.T) {
	goals := []*model.Goal{
		{ID: "x"},
		{ID: "y", Completed: true},
		{ID: "z"},
	}

	pending := FilterGoals(goals, FilterPending)
	require.Len(t, pending, 2)
	assert.Equal(t, "x", pending[0].ID)
	assert.Equal(t, "z", pending[1].ID)
}

func TestPriorityRank_ExplicitMapping(t *testing.T) {
	assert.Equal(t, 0, model.PriorityRank(model.PriorityUrgent))
	assert.Equal(t, 1, model.PriorityRank(model.PriorityHigh))
	assert.Equal(t, 2, model.PriorityRank(model.PriorityMedium))
	assert.Equal(t, 3, model.PriorityRank(model.PriorityLow))
	assert.Equal(t, 4, model.PriorityRank("whatever"))
}
