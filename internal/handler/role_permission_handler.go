package handler

import (
	"net/http"

	"supportcenter/internal/logger"
	"supportcenter/internal/service"
	"supportcenter/pkg/response"

	"github.com/gin-gonic/gin"
)

type RolePermissionHandler struct {
	service service.RolePermissionService
	log     logger.Recorder
}

func NewRolePermissionHandler(svc service.RolePermissionService, log logger.Recorder) *RolePermissionHandler {
	return &RolePermissionHandler{service: svc, log: log}
}

func (h *RolePermissionHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/role-permissions")
	{
		group.POST("", h.AssignPermission)
		group.GET("/:role_id", h.GetPermissionsByRole)
		group.DELETE("", h.RemovePermission)
	}
}

// AssignPermission grants a permission to a role
// @Summary      Assign permission to role
// @Description  Idempotent: assigning an existing pair returns the existing association.
// @Tags         role-permissions
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RolePermissionRequest  true  "Role and permission ids"
// @Success      201      {object}  response.Response{data=service.RolePermissionResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/v1/role-permissions [post]
func (h *RolePermissionHandler) AssignPermission(c *gin.Context) {
	var req service.RolePermissionRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.service.AssignPermission(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessMessage(http.StatusCreated, "Permission assigned to role", link))
}

// GetPermissionsByRole lists the permissions granted to a role
// @Summary      Get permissions by role
// @Tags         role-permissions
// @Produce      json
// @Param        role_id  path      string  true  "Role ID"
// @Success      200      {object}  response.Response{data=[]service.PermissionResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/v1/role-permissions/{role_id} [get]
func (h *RolePermissionHandler) GetPermissionsByRole(c *gin.Context) {
	perms, err := h.service.GetPermissionsByRole(c.Request.Context(), c.Param("role_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, perms))
}

// RemovePermission revokes a permission from a role
// @Summary      Remove permission from role
// @Tags         role-permissions
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RolePermissionRequest  true  "Role and permission ids"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/v1/role-permissions [delete]
func (h *RolePermissionHandler) RemovePermission(c *gin.Context) {
	var req service.RolePermissionRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.RemovePermission(c.Request.Context(), req); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Permission removed from role", nil))
}
