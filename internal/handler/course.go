package handler

import (
	"net/http"

	"github.com/studysync/studysync/internal/ctxkeys"
	"github.com/studysync/studysync/internal/service"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	courses, err := h.courseService.Courses(user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newCourseViews(courses))
}

func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.CourseInput
	if !decodeJSON(w, r, &in) {
		return
	}

	course, err := h.courseService.Create(user.ID, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, newCourseView(course))
}

func (h *CourseHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	courseID := r.PathValue("id")

	course, err := h.courseService.ByID(user.ID, courseID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newCourseView(course))
}

func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	courseID := r.PathValue("id")

	var in service.CourseInput
	if !decodeJSON(w, r, &in) {
		return
	}

	course, err := h.courseService.Update(user.ID, courseID, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newCourseView(course))
}

func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	courseID := r.PathValue("id")

	err := h.courseService.Delete(user.ID, courseID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type completeRequest struct {
	Completed bool `json:"completed"`
}

// Complete drives the completion state machine: completing cascades to
// all child goals and tasks, reopening reverts only the course itself.
func (h *CourseHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	courseID := r.PathValue("id")

	var req completeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	course, err := h.courseService.SetCompleted(user.ID, courseID, req.Completed)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newCourseView(course))
}
