package handler

import (
	"net/http"

	"supportcenter/internal/logger"
	"supportcenter/internal/service"
	"supportcenter/pkg/response"

	"github.com/gin-gonic/gin"
)

type PermissionHandler struct {
	permissionService service.PermissionService
	log               logger.Recorder
}

func NewPermissionHandler(permissionService service.PermissionService, log logger.Recorder) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService, log: log}
}

func (h *PermissionHandler) RegisterRoutes(router *gin.RouterGroup) {
	perms := router.Group("/permissions")
	{
		perms.GET("", h.ListPermissions)
		perms.GET("/:id", h.GetPermission)
		perms.POST("", h.CreatePermission)
		perms.PUT("/:id", h.UpdatePermission)
		perms.DELETE("/:id", h.DeletePermission)
	}
}

// ListPermissions returns all available permissions
// @Summary      List permissions
// @Tags         permissions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.PermissionResponse}
// @Router       /api/v1/permissions [get]
func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	perms, err := h.permissionService.ListPermissions(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, perms))
}

// @Summary      Get permission by ID
// @Tags         permissions
// @Produce      json
// @Param        id   path      string  true  "Permission ID"
// @Success      200  {object}  response.Response{data=service.PermissionResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/v1/permissions/{id} [get]
func (h *PermissionHandler) GetPermission(c *gin.Context) {
	perm, err := h.permissionService.GetPermission(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if perm == nil {
		notFound(c, "Permission")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, perm))
}

// @Summary      Create permission
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreatePermissionRequest  true  "Permission"
// @Success      201      {object}  response.Response{data=service.PermissionResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/v1/permissions [post]
func (h *PermissionHandler) CreatePermission(c *gin.Context) {
	var req service.CreatePermissionRequest
	if !bindJSON(c, &req) {
		return
	}

	perm, err := h.permissionService.CreatePermission(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessMessage(http.StatusCreated, "Permission created", perm))
}

// @Summary      Update permission
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Permission ID"
// @Param        payload  body      service.UpdatePermissionRequest  true  "Permission fields"
// @Success      200      {object}  response.Response{data=service.PermissionResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/v1/permissions/{id} [put]
func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	var req service.UpdatePermissionRequest
	if !bindJSON(c, &req) {
		return
	}

	perm, err := h.permissionService.UpdatePermission(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Permission updated", perm))
}

// @Summary      Delete permission
// @Tags         permissions
// @Produce      json
// @Param        id   path      string  true  "Permission ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/v1/permissions/{id} [delete]
func (h *PermissionHandler) DeletePermission(c *gin.Context) {
	if err := h.permissionService.DeletePermission(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Permission deleted", nil))
}
