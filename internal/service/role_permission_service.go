package service

import (
	"context"
	"errors"
	"fmt"

	"supportcenter/internal/logger"
	"supportcenter/internal/model"
	"supportcenter/internal/repository"
	"supportcenter/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RolePermissionRequest identifies an association by its (role, permission) pair.
type RolePermissionRequest struct {
	RoleID       string `json:"role_id" binding:"required,uuid"`
	PermissionID string `json:"permission_id" binding:"required,uuid"`
}

type RolePermissionResponse struct {
	ID           string `json:"id"`
	RoleID       string `json:"role_id"`
	PermissionID string `json:"permission_id"`
	CreatedAt    string `json:"created_at"`
}

type RolePermissionService interface {
	// AssignPermission grants a permission to a role. Assigning an existing
	// pair returns the existing association.
	AssignPermission(ctx context.Context, req RolePermissionRequest) (*RolePermissionResponse, error)
	// GetPermissionsByRole lists the permissions granted to a role; unknown
	// roles yield an empty list.
	GetPermissionsByRole(ctx context.Context, roleID string) ([]PermissionResponse, error)
	// RemovePermission revokes the pair; revoking an absent pair succeeds.
	RemovePermission(ctx context.Context, req RolePermissionRequest) error
}

type rolePermissionService struct {
	roles repository.RoleRepository
	perms repository.PermissionRepository
	links repository.RolePermissionRepository
	tx    repository.TransactionManager
	audit AuditService
	log   logger.Recorder
}

func NewRolePermissionService(
	roles repository.RoleRepository,
	perms repository.PermissionRepository,
	links repository.RolePermissionRepository,
	tx repository.TransactionManager,
	audit AuditService,
	log logger.Recorder,
) RolePermissionService {
	return &rolePermissionService{roles: roles, perms: perms, links: links, tx: tx, audit: audit, log: log}
}

func parsePair(req RolePermissionRequest) (uuid.UUID, uuid.UUID, error) {
	roleID, err := parseID("role", req.RoleID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	permID, err := parseID("permission", req.PermissionID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return roleID, permID, nil
}

func (s *rolePermissionService) AssignPermission(ctx context.Context, req RolePermissionRequest) (*RolePermissionResponse, error) {
	const op = "assign permission"

	roleID, permID, err := parsePair(req)
	if err != nil {
		return nil, fail(s.log, op, err)
	}

	var link *model.RolePermission
	created := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.roles.FindByIDLocked(txCtx, roleID, repository.LockShare); err != nil {
			if isNotFound(err) {
				return apperror.NotFound("role", roleID.String())
			}
			return classify("failed to fetch role", err)
		}
		if _, err := s.perms.FindByIDLocked(txCtx, permID, repository.LockShare); err != nil {
			if isNotFound(err) {
				return apperror.NotFound("permission", permID.String())
			}
			return classify("failed to fetch permission", err)
		}

		existing, err := s.links.Find(txCtx, roleID, permID)
		if err == nil {
			link = existing
			return nil
		}
		if !isNotFound(err) {
			return classify("failed to check assignment", err)
		}

		rp := &model.RolePermission{RoleID: roleID, PermissionID: permID}
		if err := s.links.Create(txCtx, rp); err != nil {
			// surfaced raw so a concurrent insert of the same pair can be resolved below
			return err
		}
		link, created = rp, true
		return nil
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// another caller inserted the pair between our check and insert
		existing, findErr := s.links.Find(ctx, roleID, permID)
		if findErr != nil {
			return nil, fail(s.log, op, classify("failed to load assignment", findErr))
		}
		link, err = existing, nil
	}
	if err != nil {
		return nil, fail(s.log, op, classify("failed to assign permission", err))
	}

	if created {
		s.log.Record(fmt.Sprintf("Permission %s assigned to role %s", permID, roleID), logger.SeverityInfo)
		s.audit.Record(ctx, model.ActionAssignPermission, "role_permission", link.ID.String(), map[string]string{
			"role_id":       roleID.String(),
			"permission_id": permID.String(),
		})
	}
	return toRolePermissionResponse(*link), nil
}

func (s *rolePermissionService) GetPermissionsByRole(ctx context.Context, roleID string) ([]PermissionResponse, error) {
	id, err := parseID("role", roleID)
	if err != nil {
		return nil, err
	}

	perms, err := s.links.ListPermissionsByRole(ctx, id)
	if err != nil {
		return nil, fail(s.log, "get permissions by role", classify("failed to fetch role permissions", err))
	}

	res := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		res = append(res, toPermissionResponse(p))
	}
	return res, nil
}

func (s *rolePermissionService) RemovePermission(ctx context.Context, req RolePermissionRequest) error {
	const op = "remove permission"

	roleID, permID, err := parsePair(req)
	if err != nil {
		return fail(s.log, op, err)
	}
	if err := s.links.Delete(ctx, roleID, permID); err != nil {
		return fail(s.log, op, classify("failed to remove permission", err))
	}

	s.log.Record(fmt.Sprintf("Permission %s removed from role %s", permID, roleID), logger.SeverityInfo)
	s.audit.Record(ctx, model.ActionRemovePermission, "role_permission", roleID.String()+":"+permID.String(), nil)
	return nil
}

func toRolePermissionResponse(rp model.RolePermission) *RolePermissionResponse {
	return &RolePermissionResponse{
		ID:           rp.ID.String(),
		RoleID:       rp.RoleID.String(),
		PermissionID: rp.PermissionID.String(),
		CreatedAt:    rp.CreatedAt.Format(timeLayout),
	}
}
