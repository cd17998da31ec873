package handler

import (
	"net/http"

	"github.com/studysync/studysync/internal/ctxkeys"
	"github.com/studysync/studysync/internal/service"
)

type ProgressLogHandler struct {
	logService *service.ProgressLogService
}

func NewProgressLogHandler(logService *service.ProgressLogService) *ProgressLogHandler {
	return &ProgressLogHandler{logService: logService}
}

func (h *ProgressLogHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	logs, err := h.logService.Logs(user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, logs)
}

func (h *ProgressLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.ProgressLogInput
	if !decodeJSON(w, r, &in) {
		return
	}

	log, err := h.logService.Create(user.ID, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, log)
}
