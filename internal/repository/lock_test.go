package repository

import (
	"testing"

	"supportcenter/internal/database/dbtest"
	"supportcenter/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestLockRowOnPostgres(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=support dbname=support sslmode=disable",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	id := uuid.New()
	for mode, want := range map[LockMode]string{LockShare: "FOR SHARE", LockUpdate: "FOR UPDATE"} {
		sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			return tx.Scopes(lockRow(mode)).First(&model.Role{}, "id = ?", id)
		})
		assert.Contains(t, sql, want)
	}
}

func TestLockRowIsDroppedOnSqlite(t *testing.T) {
	db := dbtest.New(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Scopes(lockRow(LockUpdate)).First(&model.Role{}, "id = ?", uuid.New())
	})
	assert.NotContains(t, sql, "FOR UPDATE")
}

func TestLikeOperatorFollowsDialect(t *testing.T) {
	pg, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=support dbname=support sslmode=disable",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	assert.Equal(t, "ILIKE", likeOperator(pg))
	assert.Equal(t, "LIKE", likeOperator(dbtest.New(t)))
}
