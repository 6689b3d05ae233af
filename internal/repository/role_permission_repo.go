package repository

import (
	"context"

	"supportcenter/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RolePermissionRepository interface {
	Find(ctx context.Context, roleID, permissionID uuid.UUID) (*model.RolePermission, error)
	Create(ctx context.Context, rp *model.RolePermission) error
	Delete(ctx context.Context, roleID, permissionID uuid.UUID) error
	ListPermissionsByRole(ctx context.Context, roleID uuid.UUID) ([]model.Permission, error)
	CountByRole(ctx context.Context, roleID uuid.UUID) (int64, error)
	CountByPermission(ctx context.Context, permissionID uuid.UUID) (int64, error)
}

type rolePermissionRepository struct {
	db *gorm.DB
}

func NewRolePermissionRepository(db *gorm.DB) RolePermissionRepository {
	return &rolePermissionRepository{db: db}
}

func (r *rolePermissionRepository) Find(ctx context.Context, roleID, permissionID uuid.UUID) (*model.RolePermission, error) {
	var rp model.RolePermission
	err := GetDB(ctx, r.db).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		First(&rp).Error
	if err != nil {
		return nil, err
	}
	return &rp, nil
}

func (r *rolePermissionRepository) Create(ctx context.Context, rp *model.RolePermission) error {
	return GetDB(ctx, r.db).Create(rp).Error
}

func (r *rolePermissionRepository) Delete(ctx context.Context, roleID, permissionID uuid.UUID) error {
	return GetDB(ctx, r.db).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&model.RolePermission{}).Error
}

// ListPermissionsByRole joins role → role_permissions → permissions in assignment order.
func (r *rolePermissionRepository) ListPermissionsByRole(ctx context.Context, roleID uuid.UUID) ([]model.Permission, error) {
	perms := make([]model.Permission, 0)
	err := GetDB(ctx, r.db).
		Model(&model.Permission{}).
		Select("permissions.*").
		Joins("INNER JOIN role_permissions rp ON rp.permission_id = permissions.id").
		Where("rp.role_id = ?", roleID).
		Order("rp.created_at asc").
		Find(&perms).Error
	if err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *rolePermissionRepository) CountByRole(ctx context.Context, roleID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.RolePermission{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}

func (r *rolePermissionRepository) CountByPermission(ctx context.Context, permissionID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.RolePermission{}).Where("permission_id = ?", permissionID).Count(&count).Error
	return count, err
}
