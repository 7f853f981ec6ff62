package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/secureride/booking-service/internal/service"
)

// AdminHandler handles admin-only requests
type AdminHandler struct {
	auditService service.AuditService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(auditService service.AuditService) *AdminHandler {
	return &AdminHandler{
		auditService: auditService,
	}
}

// AuditLogs pages through recent audit log entries
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	response, err := h.auditService.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
