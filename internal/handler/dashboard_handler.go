package handler

import (
	"net/http"

	"github.com/atharvgarg18/iet-csbs-backend/internal/response"
	"github.com/atharvgarg18/iet-csbs-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin dashboard summary.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// GET /api/v1/admin/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	data, err := h.dashboardService.GetData(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"dashboard": data})
}
