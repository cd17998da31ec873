package service

import (
	"time"

	"github.com/studysync/studysync/internal/model"
	"github.com/studysync/studysync/internal/repository"
)

// fakeStore is a shared in-memory backing for the repository fakes. It
// mirrors the real repositories' ownership scoping: lookups walk the
// task -> goal -> course -> user chain and report not-found for rows
// owned by someone else.
type fakeStore struct {
	users   map[string]*model.User
	courses map[string]*model.Course
	goals   map[string]*model.Goal
	tasks   map[string]*model.Task
	logs    []*model.ProgressLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   map[string]*model.User{},
		courses: map[string]*model.Course{},
		goals:   map[string]*model.Goal{},
		tasks:   map[string]*model.Task{},
	}
}

func (s *fakeStore) ownsCourse(userID, courseID string) bool {
	course, ok := s.courses[courseID]
	return ok && course.UserID == userID
}

func (s *fakeStore) ownsGoal(userID, goalID string) bool {
	goal, ok := s.goals[goalID]
	return ok && s.ownsCourse(userID, goal.CourseID)
}

func (s *fakeStore) ownsTask(userID, taskID string) bool {
	task, ok := s.tasks[taskID]
	return ok && s.ownsGoal(userID, task.GoalID)
}

func (s *fakeStore) courseGoals(courseID string) []*model.Goal {
	var goals []*model.Goal
	for _, goal := range s.goals {
		if goal.CourseID == courseID {
			goals = append(goals, goal)
		}
	}
	return goals
}

func (s *fakeStore) goalTasks(goalID string) []*model.Task {
	var tasks []*model.Task
	for _, task := range s.tasks {
		if task.GoalID == goalID {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(user *model.User) error {
	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.store.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ByID(id string) (*model.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) ByEmail(email string) (*model.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type fakeCourseRepo struct{ store *fakeStore }

func (r *fakeCourseRepo) Create(course *model.Course) error {
	r.store.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) ByID(userID, courseID string) (*model.Course, error) {
	if !r.store.ownsCourse(userID, courseID) {
		return nil, repository.ErrCourseNotFound
	}
	return r.store.courses[courseID], nil
}

func (r *fakeCourseRepo) WithChildren(userID, courseID string) (*model.Course, error) {
	course, err := r.ByID(userID, courseID)
	if err != nil {
		return nil, err
	}
	course.Goals = r.store.courseGoals(courseID)
	for _, goal := range course.Goals {
		goal.Tasks = r.store.goalTasks(goal.ID)
	}
	return course, nil
}

func (r *fakeCourseRepo) Courses(userID string) ([]*model.Course, error) {
	var courses []*model.Course
	for _, course := range r.store.courses {
		if course.UserID != userID {
			continue
		}
		course.Goals = r.store.courseGoals(course.ID)
		for _, goal := range course.Goals {
			goal.Tasks = r.store.goalTasks(goal.ID)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (r *fakeCourseRepo) Update(course *model.Course) error {
	if !r.store.ownsCourse(course.UserID, course.ID) {
		return repository.ErrCourseNotFound
	}
	r.store.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) Delete(userID, courseID string) error {
	if !r.store.ownsCourse(userID, courseID) {
		return repository.ErrCourseNotFound
	}
	delete(r.store.courses, courseID)
	return nil
}

func (r *fakeCourseRepo) CompleteCascade(userID, courseID string, completedAt time.Time) error {
	if !r.store.ownsCourse(userID, courseID) {
		return repository.ErrCourseNotFound
	}
	for _, goal := range r.store.courseGoals(courseID) {
		goal.Completed = true
		for _, task := range r.store.goalTasks(goal.ID) {
			task.Completed = true
		}
	}
	course := r.store.courses[courseID]
	course.Completed = true
	course.CompletedAt = &completedAt
	return nil
}

func (r *fakeCourseRepo) Reopen(userID, courseID string) error {
	if !r.store.ownsCourse(userID, courseID) {
		return repository.ErrCourseNotFound
	}
	course := r.store.courses[courseID]
	course.Completed = false
	course.CompletedAt = nil
	return nil
}

type fakeGoalRepo struct{ store *fakeStore }

func (r *fakeGoalRepo) Create(goal *model.Goal) error {
	r.store.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) ByID(userID, goalID string) (*model.Goal, error) {
	if !r.store.ownsGoal(userID, goalID) {
		return nil, repository.ErrGoalNotFound
	}
	return r.store.goals[goalID], nil
}

func (r *fakeGoalRepo) WithTasks(userID, goalID string) (*model.Goal, error) {
	goal, err := r.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}
	goal.Tasks = r.store.goalTasks(goalID)
	return goal, nil
}

func (r *fakeGoalRepo) SetCompleted(userID, goalID string, completed bool) error {
	if !r.store.ownsGoal(userID, goalID) {
		return repository.ErrGoalNotFound
	}
	r.store.goals[goalID].Completed = completed
	return nil
}

func (r *fakeGoalRepo) Delete(userID, goalID string) error {
	if !r.store.ownsGoal(userID, goalID) {
		return repository.ErrGoalNotFound
	}
	delete(r.store.goals, goalID)
	return nil
}

type fakeTaskRepo struct{ store *fakeStore }

func (r *fakeTaskRepo) Create(task *model.Task) error {
	r.store.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) ByID(userID, taskID string) (*model.Task, error) {
	if !r.store.ownsTask(userID, taskID) {
		return nil, repository.ErrTaskNotFound
	}
	return r.store.tasks[taskID], nil
}

func (r *fakeTaskRepo) SetCompleted(userID, taskID string, completed bool) error {
	if !r.store.ownsTask(userID, taskID) {
		return repository.ErrTaskNotFound
	}
	r.store.tasks[taskID].Completed = completed
	return nil
}

func (r *fakeTaskRepo) Delete(userID, taskID string) error {
	if !r.store.ownsTask(userID, taskID) {
		return repository.ErrTaskNotFound
	}
	delete(r.store.tasks, taskID)
	return nil
}

type fakeProgressLogRepo struct{ store *fakeStore }

func (r *fakeProgressLogRepo) Create(log *model.ProgressLog) error {
	r.store.logs = append(r.store.logs, log)
	return nil
}

func (r *fakeProgressLogRepo) ByUser(userID string) ([]*model.ProgressLog, error) {
	var logs []*model.ProgressLog
	for _, log := range r.store.logs {
		if log.UserID == userID {
			logs = append(logs, log)
		}
	}
	return logs, nil
}
