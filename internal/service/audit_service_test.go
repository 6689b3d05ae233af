package service_test

import (
	"context"
	"testing"

	"supportcenter/internal/actor"
	"supportcenter/internal/model"
	"supportcenter/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritesAreAudited(t *testing.T) {
	f := newFixture(t)
	ctx := actor.WithID(context.Background(), "agent-7")

	role, err := f.roles.CreateRole(ctx, service.CreateRoleRequest{Name: "Auditor"})
	require.NoError(t, err)
	_, err = f.users.CreateUser(ctx, service.CreateUserRequest{FullName: "Eve", Password: "topsecret"})
	require.NoError(t, err)

	logs, err := f.audits.ListAuditLogs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	actions := make(map[string]service.AuditLogResponse)
	for _, l := range logs {
		assert.Equal(t, "agent-7", l.ActorID)
		actions[l.Action] = l
	}
	require.Contains(t, actions, model.ActionCreateRole)
	assert.Equal(t, role.ID, actions[model.ActionCreateRole].EntityID)
	require.Contains(t, actions, model.ActionCreateUser)
	assert.NotContains(t, actions[model.ActionCreateUser].Details, "topsecret")
}

func TestPasswordChangeAuditOmitsValue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.CreateUser(ctx, service.CreateUserRequest{Password: "first"})
	require.NoError(t, err)
	_, err = f.users.UpdateUser(ctx, user.ID.String(), service.UpdateUserRequest{Password: strPtr("second")})
	require.NoError(t, err)

	var entry model.AuditLog
	require.NoError(t, f.db.Where("action = ?", model.ActionUpdateUser).First(&entry).Error)
	assert.Contains(t, entry.Details, "password")
	assert.NotContains(t, entry.Details, "second")
	assert.Empty(t, entry.ActorID)
}

func TestListAuditLogsCapsLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		f.audits.Record(ctx, model.ActionDeleteFAQ, "faq", "x", nil)
	}

	logs, err := f.audits.ListAuditLogs(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	logs, err = f.audits.ListAuditLogs(ctx, service.MaxAuditLimit+50)
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}
