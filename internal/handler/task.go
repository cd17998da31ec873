package handler

import (
	"net/http"

	"github.com/studysync/studysync/internal/ctxkeys"
	"github.com/studysync/studysync/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.TaskInput
	if !decodeJSON(w, r, &in) {
		return
	}

	task, err := h.taskService.Create(user.ID, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	taskID := r.PathValue("id")

	var req toggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.taskService.SetCompleted(user.ID, taskID, req.Completed)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	taskID := r.PathValue("id")

	err := h.taskService.Delete(user.ID, taskID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
