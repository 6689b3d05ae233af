package service

import (
	"context"
	"fmt"
	"strings"

	"supportcenter/internal/logger"
	"supportcenter/internal/model"
	"supportcenter/internal/repository"
	"supportcenter/pkg/apperror"
)

type CreatePermissionRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description"`
}

type UpdatePermissionRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description"`
}

type PermissionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PermissionService interface {
	ListPermissions(ctx context.Context) ([]PermissionResponse, error)
	// GetPermission returns nil, nil when the permission does not exist.
	GetPermission(ctx context.Context, id string) (*PermissionResponse, error)
	CreatePermission(ctx context.Context, req CreatePermissionRequest) (*PermissionResponse, error)
	UpdatePermission(ctx context.Context, id string, req UpdatePermissionRequest) (*PermissionResponse, error)
	// DeletePermission refuses permissions still granted to a role.
	DeletePermission(ctx context.Context, id string) error
}

type permissionService struct {
	perms repository.PermissionRepository
	links repository.RolePermissionRepository
	tx    repository.TransactionManager
	audit AuditService
	log   logger.Recorder
}

func NewPermissionService(
	perms repository.PermissionRepository,
	links repository.RolePermissionRepository,
	tx repository.TransactionManager,
	audit AuditService,
	log logger.Recorder,
) PermissionService {
	return &permissionService{perms: perms, links: links, tx: tx, audit: audit, log: log}
}

func (s *permissionService) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	perms, err := s.perms.ListAll(ctx)
	if err != nil {
		return nil, fail(s.log, "fetch permissions", classify("failed to fetch permissions", err))
	}

	res := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		res = append(res, toPermissionResponse(p))
	}
	return res, nil
}

func (s *permissionService) GetPermission(ctx context.Context, id string) (*PermissionResponse, error) {
	permID, err := parseID("permission", id)
	if err != nil {
		return nil, err
	}

	perm, err := s.perms.FindByID(ctx, permID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fail(s.log, "fetch permission", classify("failed to fetch permission", err))
	}

	resp := toPermissionResponse(*perm)
	return &resp, nil
}

func (s *permissionService) CreatePermission(ctx context.Context, req CreatePermissionRequest) (*PermissionResponse, error) {
	const op = "create permission"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fail(s.log, op, apperror.Validation("permission name is required"))
	}

	perm := model.Permission{Name: name, Description: strings.TrimSpace(req.Description)}
	if err := s.perms.Create(ctx, &perm); err != nil {
		return nil, fail(s.log, op, classify("failed to create permission", err))
	}

	s.log.Record(fmt.Sprintf("Permission created with ID: %s", perm.ID), logger.SeverityInfo)
	s.audit.Record(ctx, model.ActionCreatePermission, "permission", perm.ID.String(), map[string]string{"name": perm.Name})

	resp := toPermissionResponse(perm)
	return &resp, nil
}

func (s *permissionService) UpdatePermission(ctx context.Context, id string, req UpdatePermissionRequest) (*PermissionResponse, error) {
	const op = "update permission"

	permID, err := parseID("permission", id)
	if err != nil {
		return nil, fail(s.log, op, err)
	}
	name := trimmed(req.Name)
	if name != nil && *name == "" {
		return nil, fail(s.log, op, apperror.Validation("permission name must not be blank"))
	}

	var perm *model.Permission
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		found, err := s.perms.FindByID(txCtx, permID)
		if err != nil {
			if isNotFound(err) {
				return apperror.NotFound("permission", permID.String())
			}
			return classify("failed to fetch permission", err)
		}
		if name != nil {
			found.Name = *name
		}
		if desc := trimmed(req.Description); desc != nil {
			found.Description = *desc
		}
		if err := s.perms.Update(txCtx, found); err != nil {
			return classify("failed to update permission", err)
		}
		perm = found
		return nil
	})
	if err != nil {
		return nil, fail(s.log, op, err)
	}

	s.log.Record(fmt.Sprintf("Permission updated with ID: %s", permID), logger.SeverityInfo)
	s.audit.Record(ctx, model.ActionUpdatePermission, "permission", permID.String(), map[string]string{"name": perm.Name})

	resp := toPermissionResponse(*perm)
	return &resp, nil
}

func (s *permissionService) DeletePermission(ctx context.Context, id string) error {
	const op = "delete permission"

	permID, err := parseID("permission", id)
	if err != nil {
		return fail(s.log, op, err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.perms.FindByIDLocked(txCtx, permID, repository.LockUpdate); err != nil {
			if isNotFound(err) {
				return nil
			}
			return classify("failed to fetch permission", err)
		}
		grants, err := s.links.CountByPermission(txCtx, permID)
		if err != nil {
			return classify("failed to count permission grants", err)
		}
		if grants > 0 {
			return apperror.Conflict("permission %s is still assigned to %d role(s)", permID, grants)
		}
		if err := s.perms.Delete(txCtx, permID); err != nil {
			return classify("failed to delete permission", err)
		}
		return nil
	})
	if err != nil {
		return fail(s.log, op, err)
	}

	s.log.Record(fmt.Sprintf("Permission deleted with ID: %s", permID), logger.SeverityInfo)
	s.audit.Record(ctx, model.ActionDeletePermission, "permission", permID.String(), nil)
	return nil
}

func toPermissionResponse(p model.Permission) PermissionResponse {
	return PermissionResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
	}
}
