package handler

import (
	"net/http"

	"github.com/studysync/studysync/internal/ctxkeys"
	"github.com/studysync/studysync/internal/progress"
	"github.com/studysync/studysync/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

type dashboardResponse struct {
	Courses []courseView   `json:"courses"`
	Stats   progress.Stats `json:"stats"`
}

func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	courses, stats, err := h.dashboardService.Overview(user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dashboardResponse{
		Courses: newCourseViews(courses),
		Stats:   stats,
	})
}
