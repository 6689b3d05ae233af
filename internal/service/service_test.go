package service_test

import (
	"context"
	"sync"
	"testing"

	"supportcenter/internal/database/dbtest"
	"supportcenter/internal/logger"
	"supportcenter/internal/repository"
	"supportcenter/internal/service"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type entry struct {
	message  string
	severity logger.Severity
}

// spyRecorder keeps every recorded message for assertions.
type spyRecorder struct {
	mu      sync.Mutex
	entries []entry
}

func (s *spyRecorder) Record(message string, severity logger.Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry{message: message, severity: severity})
}

func (s *spyRecorder) bySeverity(severity logger.Severity) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, e := range s.entries {
		if e.severity == severity {
			out = append(out, e.message)
		}
	}
	return out
}

type fixture struct {
	db     *gorm.DB
	log    *spyRecorder
	users  service.UserService
	roles  service.RoleService
	perms  service.PermissionService
	links  service.RolePermissionService
	faqs   service.FAQService
	audits service.AuditService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.New(t)
	log := &spyRecorder{}

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permRepo := repository.NewPermissionRepository(db)
	linkRepo := repository.NewRolePermissionRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	tx := repository.NewTransactionManager(db)

	audits := service.NewAuditService(auditRepo, log)
	f := &fixture{
		db:     db,
		log:    log,
		users:  service.NewUserService(userRepo, roleRepo, tx, audits, log, service.WithHashCost(bcrypt.MinCost)),
		roles:  service.NewRoleService(roleRepo, permRepo, linkRepo, userRepo, tx, audits, log),
		perms:  service.NewPermissionService(permRepo, linkRepo, tx, audits, log),
		links:  service.NewRolePermissionService(roleRepo, permRepo, linkRepo, tx, audits, log),
		faqs:   service.NewFAQService(faqRepo, tx, audits, log),
		audits: audits,
	}

	require.NoError(t, f.roles.SeedDefaults(context.Background()))
	return f
}
