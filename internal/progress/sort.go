package progress

import (
	"sort"

	"github.com/studysync/studysync/internal/model"
)

// Completion filter values for goal/task lists.
const (
	FilterAll       = "all"
	FilterPending   = "pending"
	FilterCompleted = "completed"
)

// SortGoals orders goals in place for display: incomplete before
// completed, then by priority rank (URGENT first, unknown last), then by
// deadline ascending. The sort is stable.
func SortGoals(goals []*model.Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		a, b := goals[i], goals[j]

		if a.Completed != b.Completed {
			return !a.Completed
		}

		aRank := model.PriorityRank(a.Priority)
		bRank := model.PriorityRank(b.Priority)
		if aRank != bRank {
			return aRank < bRank
		}

		return a.Deadline.Before(b.Deadline)
	})
}

// SortTasks orders tasks in place for display: incomplete before
// completed, tasks with a due date before tasks without, earlier due
// dates first. Tasks without due dates keep their relative order.
func SortTasks(tasks []*model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		if a.Completed != b.Completed {
			return !a.Completed
		}

		if a.DueDate != nil && b.DueDate != nil {
			return a.DueDate.Before(*b.DueDate)
		}
		if a.DueDate != nil {
			return true
		}
		if b.DueDate != nil {
			return false
		}

		return false
	})
}

// FilterGoals returns the goals matching filter without reordering them.
// Unknown filter values behave like FilterAll.
func FilterGoals(goals []*model.Goal, filter string) []*model.Goal {
	switch filter {
	case FilterPending, FilterCompleted:
	default:
		return goals
	}

	filtered := make([]*model.Goal, 0, len(goals))
	for _, goal := range goals {
		if goal.Completed == (filter == FilterCompleted) {
			filtered = append(filtered, goal)
		}
	}
	return filtered
}

// FilterTasks returns the tasks matching filter without reordering them.
// Unknown filter values behave like FilterAll.
func FilterTasks(tasks []*model.Task, filter string) []*model.Task {
	switch filter {
	case FilterPending, FilterCompleted:
	default:
		return tasks
	}

	filtered := make([]*model.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Completed == (filter == FilterCompleted) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}
