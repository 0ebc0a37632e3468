package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mayank7tyagi/FitJourney-App/services"
)

type DashboardController struct {
	dashboard *services.DashboardService
	users     *services.UserService
}

func NewDashboardController(dashboard *services.DashboardService, users *services.UserService) *DashboardController {
	return &DashboardController{dashboard: dashboard, users: users}
}

// GetDashboard returns today's totals, the category pie chart and the 7-day
// calorie trend.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	userID := currentUserID(c)
	if _, err := dc.users.FindByID(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	resp, err := dc.dashboard.Dashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
