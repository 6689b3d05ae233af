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

// --- DTOs ---

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description"`
}

// UpdateRoleRequest supports full and partial updates; nil fields are kept.
type UpdateRoleRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description"`
}

type RoleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsSystem    bool   `json:"is_system"`
	CreatedAt   string `json:"created_at"`
}

// --- Interface ---

type RoleService interface {
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	// GetRole returns nil, nil when the role does not exist.
	GetRole(ctx context.Context, id string) (*RoleResponse, error)
	CreateRole(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*RoleResponse, error)
	// DeleteRole refuses system roles and roles still referenced by users or
	// permission assignments. Deleting an absent role succeeds.
	DeleteRole(ctx context.Context, id string) error
	SeedDefaults(ctx context.Context) error
}

type roleService struct {
	roles repository.RoleRepository
	perms repository.PermissionRepository
	links repository.RolePermissionRepository
	users repository.UserRepository
	tx    repository.TransactionManager
	audit AuditService
	log   logger.Recorder
}

func NewRoleService(
	roles repository.RoleRepository,
	perms repository.PermissionRepository,
	links repository.RolePermissionRepository,
	users repository.UserRepository,
	tx repository.TransactionManager,
	audit AuditService,
	log logger.Recorder,
) RoleService {
	return &roleService{
		roles: roles,
		perms: perms,
		links: links,
		users: users,
		tx:    tx,
		audit: audit,
		log:   log,
	}
}

// --- Implementation ---

func (s *roleService) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.roles.ListAll(ctx)
	if err != nil {
		return nil, fail(s.log, "fetch roles", classify("failed to fetch roles", err))
	}

	res := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		res = append(res, toRoleResponse(r))
	}
	return res, nil
}

func (s *roleService) GetRole(ctx context.Context, id string) (*RoleResponse, error) {
	roleID, err := parseID("role", id)
	if err != nil {
		return nil, err
	}

	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fail(s.log, "fetch role", classify("failed to fetch role", err))
	}

	resp := toRoleResponse(*role)
	return &resp, nil
}

func (s *roleService) CreateRole(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error) {
	const op = "create role"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fail(s.log, op, apperror.Validation("role name is required"))
	}

	role := model.Role{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.roles.Create(ctx, &role); err != nil {
		return nil, fail(s.log, op, classify("failed to create role", err))
	}

	s.log.Record(fmt.Sprintf("Role created with ID: %s", role.ID), logger.SeverityInfo)
	s.audit.Record(ctx, model.ActionCreateRole, "role", role.ID.String(), map[string]string{"name": role.Name})

	resp := toRoleResponse(role)
	return &resp, nil
}

func (s *roleService) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*RoleResponse, error) {
	const op = "update role"

	roleID, err := parseID("role", id)
	if err != nil {
		return nil, fail(s.log, op, err)
	}
	name := trimmed(req.Name)
	if name != nil && *name == "" {
		return nil, fail(s.log, op, apperror.Validation("role name must not be blank"))
	}

	var role *model.Role
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		found, err := s.roles.FindByID(txCtx, roleID)
		if err != nil {
			if isNotFound(err) {
				return apperror.NotFound("role", roleID.String())
			}
			return classify("failed to fetch role", err)
		}
		if name != nil {
			found.Name = *name
		}
		if desc := trimmed(req.Description); desc != nil {
			found.Description = *desc
		}
		if err := s.roles.Update(txCtx, found); err != nil {
			return classify("failed to update role", err)
		}
		role = found
		return nil
	})
	if err != nil {
		return nil, fail(s.log, op, err)
	}

	s.log.Record(fmt.Sprintf("Role updated with ID: %s", roleID), logger.SeverityInfo)
	s.audit.Record(ctx, model.ActionUpdateRole, "role", roleID.String(), map[string]string{"name": role.Name})

	resp := toRoleResponse(*role)
	return &resp, nil
}

func (s *roleService) DeleteRole(ctx context.Context, id string) error {
	const op = "delete role"

	roleID, err := parseID("role", id)
	if err != nil {
		return fail(s.log, op, err)
	}

	deleted := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		role, err := s.roles.FindByIDLocked(txCtx, roleID, repository.LockUpdate)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return classify("failed to fetch role", err)
		}
		if role.IsSystem {
			return apperror.Conflict("cannot delete system role '%s'", role.Name)
		}

		users, err := s.users.CountByRole(txCtx, roleID)
		if err != nil {
			return classify("failed to count role users", err)
		}
		if users > 0 {
			return apperror.Conflict("role '%s' is assigned to %d user(s)", role.Name, users)
		}

		grants, err := s.links.CountByRole(txCtx, roleID)
		if err != nil {
			return classify("failed to count role permissions", err)
		}
		if grants > 0 {
			return apperror.Conflict("role '%s' still has %d permission(s) assigned", role.Name, grants)
		}

		if err := s.roles.Delete(txCtx, roleID); err != nil {
			return classify("failed to delete role", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return fail(s.log, op, err)
	}

	if deleted {
		s.log.Record(fmt.Sprintf("Role deleted with ID: %s", roleID), logger.SeverityInfo)
		s.audit.Record(ctx, model.ActionDeleteRole, "role", roleID.String(), nil)
	}
	return nil
}

// defaultPermissions are created on startup; the Guest role receives the ones marked.
var defaultPermissions = []struct {
	Name        string
	Description string
	Guest       bool
}{
	{Name: "faqs.read", Description: "Read FAQs", Guest: true},
	{Name: "faqs.write", Description: "Create, edit and delete FAQs"},
	{Name: "users.manage", Description: "Manage user accounts"},
	{Name: "roles.manage", Description: "Manage roles and permission assignments"},
}

// SeedDefaults creates the Guest role and baseline permissions if not already present
func (s *roleService) SeedDefaults(ctx context.Context) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		guest := model.Role{
			ID:          model.GuestRoleID,
			Name:        model.GuestRoleName,
			Description: "Default role for users created without one",
			IsSystem:    true,
		}
		if err := s.roles.FindOrCreate(txCtx, &guest); err != nil {
			return classify("failed to seed guest role", err)
		}

		for _, def := range defaultPermissions {
			perm := model.Permission{Name: def.Name, Description: def.Description}
			if err := s.perms.FindOrCreateByName(txCtx, &perm); err != nil {
				return classify(fmt.Sprintf("failed to seed permission '%s'", def.Name), err)
			}
			if !def.Guest {
				continue
			}
			if _, err := s.links.Find(txCtx, guest.ID, perm.ID); err == nil {
				continue
			} else if !isNotFound(err) {
				return classify("failed to check guest permission", err)
			}
			if err := s.links.Create(txCtx, &model.RolePermission{RoleID: guest.ID, PermissionID: perm.ID}); err != nil {
				return classify("failed to grant guest permission", err)
			}
		}
		return nil
	})
	if err != nil {
		return fail(s.log, "seed default roles", err)
	}

	s.log.Record("Default roles and permissions seeded", logger.SeverityInfo)
	return nil
}

// --- Helpers ---

func toRoleResponse(r model.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
		IsSystem:    r.IsSystem,
		CreatedAt:   r.CreatedAt.Format(timeLayout),
	}
}
