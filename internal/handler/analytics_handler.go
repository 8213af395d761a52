package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudesk/tms-api/internal/service"
	"github.com/edudesk/tms-api/pkg/response"
)

// AnalyticsHandler exposes the derived analytics collections.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs an analytics handler.
func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

// Report godoc
// @Summary Full analytics report
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics [get]
func (h *AnalyticsHandler) Report(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Report(c.Request.Context()), nil)
}

// Teachers godoc
// @Summary Per-teacher analytics
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/teachers [get]
func (h *AnalyticsHandler) Teachers(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Teachers(c.Request.Context()), nil)
}

// Subjects godoc
// @Summary Per-subject analytics
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/subjects [get]
func (h *AnalyticsHandler) Subjects(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Subjects(c.Request.Context()), nil)
}

// Refresh godoc
// @Summary Force analytics recomputation
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/refresh [post]
func (h *AnalyticsHandler) Refresh(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Refresh(c.Request.Context()), nil)
}
