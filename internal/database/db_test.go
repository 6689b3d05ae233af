package database_test

import (
	"context"
	"testing"

	"supportcenter/internal/config"
	"supportcenter/internal/database"
	"supportcenter/internal/database/dbtest"
	"supportcenter/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewConnectionMigratesAllTables(t *testing.T) {
	db := dbtest.New(t)

	for _, m := range database.Models() {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}
	require.NoError(t, database.Ping(context.Background(), db))
}

func TestRolePermissionPairIsUnique(t *testing.T) {
	db := dbtest.New(t)
	roleID, permID := uuid.New(), uuid.New()

	require.NoError(t, db.Create(&model.RolePermission{RoleID: roleID, PermissionID: permID}).Error)
	err := db.Create(&model.RolePermission{RoleID: roleID, PermissionID: permID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestBeforeCreateAssignsIDs(t *testing.T) {
	db := dbtest.New(t)

	role := model.Role{Name: "Editor"}
	require.NoError(t, db.Create(&role).Error)
	assert.NotEqual(t, uuid.Nil, role.ID)

	guest := model.Role{ID: model.GuestRoleID, Name: model.GuestRoleName}
	require.NoError(t, db.Create(&guest).Error)
	assert.Equal(t, model.GuestRoleID, guest.ID)
}

func TestNewConnectionRejectsUnknownDriver(t *testing.T) {
	_, err := database.NewConnection(config.DBConfig{Driver: "mysql"}, false)
	assert.Error(t, err)
}
