package handler

import (
	"net/http"
	"strconv"

	"supportcenter/internal/logger"
	"supportcenter/internal/service"
	"supportcenter/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
	log          logger.Recorder
}

func NewAuditHandler(auditService service.AuditService, log logger.Recorder) *AuditHandler {
	return &AuditHandler{auditService: auditService, log: log}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/audit-logs", h.GetAuditLogs)
}

// GetAuditLogs returns the most recent audit entries
// @Summary      Get audit logs
// @Description  Latest entries first. limit defaults to 20 and is capped at 100.
// @Tags         audit
// @Produce      json
// @Param        limit  query     int  false  "Number of entries (default 20, max 100)"
// @Success      200    {object}  response.Response{data=[]service.AuditLogResponse}
// @Failure      400    {object}  response.Response
// @Router       /api/v1/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	limit := service.DefaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	logs, err := h.auditService.ListAuditLogs(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, logs))
}
