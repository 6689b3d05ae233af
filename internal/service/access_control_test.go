package service_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"supportcenter/internal/model"
	"supportcenter/internal/service"
	"supportcenter/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestEditorPublishScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	role, err := f.roles.CreateRole(ctx, service.CreateRoleRequest{Name: "Editor"})
	require.NoError(t, err)
	perm, err := f.perms.CreatePermission(ctx, service.CreatePermissionRequest{Name: "publish"})
	require.NoError(t, err)

	pair := service.RolePermissionRequest{RoleID: role.ID, PermissionID: perm.ID}
	link, err := f.links.AssignPermission(ctx, pair)
	require.NoError(t, err)
	assert.Equal(t, role.ID, link.RoleID)
	assert.Equal(t, perm.ID, link.PermissionID)

	got, err := f.links.GetPermissionsByRole(ctx, role.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, perm.ID, got[0].ID)
	assert.Equal(t, "publish", got[0].Name)

	require.NoError(t, f.links.RemovePermission(ctx, pair))

	got, err = f.links.GetPermissionsByRole(ctx, role.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAssignPermissionIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	role, err := f.roles.CreateRole(ctx, service.CreateRoleRequest{Name: "Support"})
	require.NoError(t, err)
	perm, err := f.perms.CreatePermission(ctx, service.CreatePermissionRequest{Name: "tickets.close"})
	require.NoError(t, err)
	pair := service.RolePermissionRequest{RoleID: role.ID, PermissionID: perm.ID}

	first, err := f.links.AssignPermission(ctx, pair)
	require.NoError(t, err)
	second, err := f.links.AssignPermission(ctx, pair)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := f.links.GetPermissionsByRole(ctx, role.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	var rows int64
	require.NoError(t, f.db.Model(&model.RolePermission{}).Where("role_id = ?", role.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestAssignPermissionConcurrentCallersShareOneAssociation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	role, err := f.roles.CreateRole(ctx, service.CreateRoleRequest{Name: "Moderator"})
	require.NoError(t, err)
	perm, err := f.perms.CreatePermission(ctx, service.CreatePermissionRequest{Name: "threads.lock"})
	require.NoError(t, err)
	pair := service.RolePermissionRequest{RoleID: role.ID, PermissionID: perm.ID}

	const callers = 8
	ids := make([]string, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			link, err := f.links.AssignPermission(ctx, pair)
			errs[i] = err
			if link != nil {
				ids[i] = link.ID
			}
		}(i)
	}
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	got, err := f.links.GetPermissionsByRole(ctx, role.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAssignPermissionRequiresExistingEntities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	perm, err := f.perms.CreatePermission(ctx, service.CreatePermissionRequest{Name: "reports.view"})
	require.NoError(t, err)

	_, err = f.links.AssignPermission(ctx, service.RolePermissionRequest{RoleID: uuid.NewString(), PermissionID: perm.ID})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.links.AssignPermission(ctx, service.RolePermissionRequest{RoleID: model.GuestRoleID.String(), PermissionID: uuid.NewString()})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.links.AssignPermission(ctx, service.RolePermissionRequest{RoleID: "not-a-uuid", PermissionID: perm.ID})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestRemoveUnassignedPairIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.links.RemovePermission(ctx, service.RolePermissionRequest{
		RoleID:       uuid.NewString(),
		PermissionID: uuid.NewString(),
	})
	assert.NoError(t, err)
}

func TestGetPermissionsByUnknownRoleIsEmpty(t *testing.T) {
	f := newFixture(t)

	got, err := f.links.GetPermissionsByRole(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreateUserDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.CreateUser(ctx, service.CreateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, service.DefaultFullName, user.FullName)
	assert.Equal(t, model.GuestRoleID, user.RoleID)
	assert.Contains(t, user.Email, "@dtp.com")

	var stored model.User
	require.NoError(t, f.db.First(&stored, "id = ?", user.ID).Error)
	assert.NotEqual(t, service.DefaultPassword, stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, service.DefaultPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(service.DefaultPassword)))

	ok, err := f.users.VerifyPassword(ctx, user.ID.String(), service.DefaultPassword)
	require.NoError(t, err)
	assert.True(t, ok)

	// placeholder emails stay unique across back-to-back creations
	other, err := f.users.CreateUser(ctx, service.CreateUserRequest{})
	require.NoError(t, err)
	assert.NotEqual(t, user.Email, other.Email)

	for _, msg := range f.log.bySeverity("INFO") {
		assert.NotContains(t, msg, service.DefaultPassword)
	}
}

func TestAnnChangesPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.CreateUser(ctx, service.CreateUserRequest{FullName: "Ann", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, model.GuestRoleID, user.RoleID)

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	updated, err := f.users.UpdateUser(ctx, user.ID.String(), service.UpdateUserRequest{Password: strPtr("pw2")})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.FullName)
	assert.Equal(t, "a@x.com", updated.Email)

	ok, err := f.users.VerifyPassword(ctx, user.ID.String(), "pw1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.users.VerifyPassword(ctx, user.ID.String(), "pw2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateUserIsPartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	role, err := f.roles.CreateRole(ctx, service.CreateRoleRequest{Name: "Agent"})
	require.NoError(t, err)
	user, err := f.users.CreateUser(ctx, service.CreateUserRequest{FullName: "Bob", Email: "bob@x.com", Password: "secret"})
	require.NoError(t, err)

	updated, err := f.users.UpdateUser(ctx, user.ID.String(), service.UpdateUserRequest{RoleID: strPtr(role.ID)})
	require.NoError(t, err)
	assert.Equal(t, role.ID, updated.RoleID.String())
	assert.Equal(t, "Bob", updated.FullName)
	assert.Equal(t, "bob@x.com", updated.Email)

	ok, err := f.users.VerifyPassword(ctx, user.ID.String(), "secret")
	require.NoError(t, err)
	assert.True(t, ok, "password must survive an update that does not touch it")

	_, err = f.users.UpdateUser(ctx, user.ID.String(), service.UpdateUserRequest{RoleID: strPtr(uuid.NewString())})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.users.UpdateUser(ctx, uuid.NewString(), service.UpdateUserRequest{FullName: strPtr("Ghost")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.users.UpdateUser(ctx, user.ID.String(), service.UpdateUserRequest{Email: strPtr("nope")})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCreateUserRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.CreateUser(ctx, service.CreateUserRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = f.users.CreateUser(ctx, service.CreateUserRequest{RoleID: uuid.NewString()})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.users.CreateUser(ctx, service.CreateUserRequest{Email: "dup@x.com"})
	require.NoError(t, err)
	_, err = f.users.CreateUser(ctx, service.CreateUserRequest{Email: "dup@x.com"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.NotEmpty(t, f.log.bySeverity("WARN"))
}

func TestGetReturnsNilForAbsentIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	missing := uuid.NewString()

	user, err := f.users.GetUserByID(ctx, missing)
	assert.NoError(t, err)
	assert.Nil(t, user)

	role, err := f.roles.GetRole(ctx, missing)
	assert.NoError(t, err)
	assert.Nil(t, role)

	perm, err := f.perms.GetPermission(ctx, missing)
	assert.NoError(t, err)
	assert.Nil(t, perm)

	_, err = f.users.GetUserByID(ctx, "42")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestGetUserOmitsPasswordHash(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.users.CreateUser(ctx, service.CreateUserRequest{FullName: "Cleo", Password: "hunter2"})
	require.NoError(t, err)

	user, err := f.users.GetUserByID(ctx, created.ID.String())
	require.NoError(t, err)
	require.NotNil(t, user)

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$")

	users, err := f.users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestDeleteAbsentEntitiesSucceeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.NoError(t, f.users.DeleteUser(ctx, uuid.NewString()))
	assert.NoError(t, f.roles.DeleteRole(ctx, uuid.NewString()))
	assert.NoError(t, f.perms.DeletePermission(ctx, uuid.NewString()))
	assert.NoError(t, f.links.RemovePermission(ctx, service.RolePermissionRequest{
		RoleID:       uuid.NewString(),
		PermissionID: uuid.NewString(),
	}))
	assert.NoError(t, f.faqs.DeleteFAQ(ctx, uuid.NewString()))
}

func TestDeleteUserRemovesRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.CreateUser(ctx, service.CreateUserRequest{FullName: "Dana"})
	require.NoError(t, err)
	require.NoError(t, f.users.DeleteUser(ctx, user.ID.String()))

	got, err := f.users.GetUserByID(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteRoleIsBlockedByDependents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.roles.DeleteRole(ctx, model.GuestRoleID.String())
	assert.ErrorIs(t, err, apperror.ErrConflict)

	role, err := f.roles.CreateRole(ctx, service.CreateRoleRequest{Name: "Billing"})
	require.NoError(t, err)
	user, err := f.users.CreateUser(ctx, service.CreateUserRequest{RoleID: role.ID})
	require.NoError(t, err)

	err = f.roles.DeleteRole(ctx, role.ID)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	require.NoError(t, f.users.DeleteUser(ctx, user.ID.String()))

	perm, err := f.perms.CreatePermission(ctx, service.CreatePermissionRequest{Name: "refunds.issue"})
	require.NoError(t, err)
	pair := service.RolePermissionRequest{RoleID: role.ID, PermissionID: perm.ID}
	_, err = f.links.AssignPermission(ctx, pair)
	require.NoError(t, err)

	err = f.roles.DeleteRole(ctx, role.ID)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	err = f.perms.DeletePermission(ctx, perm.ID)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	require.NoError(t, f.links.RemovePermission(ctx, pair))
	require.NoError(t, f.roles.DeleteRole(ctx, role.ID))
	require.NoError(t, f.perms.DeletePermission(ctx, perm.ID))

	got, err := f.roles.GetRole(ctx, role.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRoleAndPermissionUpdates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	role, err := f.roles.CreateRole(ctx, service.CreateRoleRequest{Name: "Ops", Description: "operations"})
	require.NoError(t, err)

	updated, err := f.roles.UpdateRole(ctx, role.ID, service.UpdateRoleRequest{Description: strPtr("on-call")})
	require.NoError(t, err)
	assert.Equal(t, "Ops", updated.Name)
	assert.Equal(t, "on-call", updated.Description)

	_, err = f.roles.UpdateRole(ctx, role.ID, service.UpdateRoleRequest{Name: strPtr("   ")})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = f.roles.UpdateRole(ctx, uuid.NewString(), service.UpdateRoleRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.roles.CreateRole(ctx, service.CreateRoleRequest{Name: "Ops"})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	perm, err := f.perms.CreatePermission(ctx, service.CreatePermissionRequest{Name: "deploy"})
	require.NoError(t, err)
	renamed, err := f.perms.UpdatePermission(ctx, perm.ID, service.UpdatePermissionRequest{Name: strPtr("deploy.prod")})
	require.NoError(t, err)
	assert.Equal(t, "deploy.prod", renamed.Name)

	_, err = f.perms.UpdatePermission(ctx, perm.ID, service.UpdatePermissionRequest{Name: strPtr("faqs.read")})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.roles.SeedDefaults(ctx))

	roles, err := f.roles.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, model.GuestRoleName, roles[0].Name)
	assert.True(t, roles[0].IsSystem)

	perms, err := f.perms.ListPermissions(ctx)
	require.NoError(t, err)
	assert.Len(t, perms, 4)

	granted, err := f.links.GetPermissionsByRole(ctx, model.GuestRoleID.String())
	require.NoError(t, err)
	require.Len(t, granted, 1)
	assert.Equal(t, "faqs.read", granted[0].Name)
}
