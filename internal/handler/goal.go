package handler

import (
	"net/http"

	"github.com/studysync/studysync/internal/ctxkeys"
	"github.com/studysync/studysync/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.GoalInput
	if !decodeJSON(w, r, &in) {
		return
	}

	goal, err := h.goalService.Create(user.ID, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, newGoalView(goal))
}

func (h *GoalHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	filter := r.URL.Query().Get("filter")

	goal, err := h.goalService.WithTasks(user.ID, goalID, filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newGoalView(goal))
}

type toggleRequest struct {
	Completed bool `json:"completed"`
}

func (h *GoalHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req toggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := h.goalService.SetCompleted(user.ID, goalID, req.Completed)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newGoalView(goal))
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(user.ID, goalID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
