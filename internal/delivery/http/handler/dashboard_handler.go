package handler

import (
	"net/http"

	"rhu-patient-portal/internal/usecase"
	"rhu-patient-portal/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.Get(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to get dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
