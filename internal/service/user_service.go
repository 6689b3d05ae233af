package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"supportcenter/internal/logger"
	"supportcenter/internal/model"
	"supportcenter/internal/repository"
	"supportcenter/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Fallbacks applied by CreateUser when the caller omits a field. These are
// placeholders, not secure defaults.
const (
	DefaultFullName  = "Guest User"
	DefaultPassword  = "guest123"
	guestEmailDomain = "dtp.com"
)

// DTOs for Request validation
type CreateUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
	RoleID   string `json:"role_id" binding:"omitempty,uuid"`
}

// UpdateUserRequest carries a partial update; nil fields are left unchanged.
type UpdateUserRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,notblank"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=1"`
	RoleID   *string `json:"role_id" binding:"omitempty,uuid"`
}

// DTO for returning User without exposing the password hash
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	RoleID    uuid.UUID `json:"role_id"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// UserService defines the interface for business logic related to User
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	// GetUserByID returns nil, nil when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error)
	// DeleteUser succeeds when the user is already gone.
	DeleteUser(ctx context.Context, id string) error
	// VerifyPassword reports whether password matches the stored hash.
	VerifyPassword(ctx context.Context, id, password string) (bool, error)
}

type userService struct {
	repo     repository.UserRepository
	roles    repository.RoleRepository
	tx       repository.TransactionManager
	audit    AuditService
	log      logger.Recorder
	validate *validator.Validate
	hashCost int
	now      func() time.Time
}

// UserOption customises a UserService.
type UserOption func(*userService)

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func WithHashCost(cost int) UserOption {
	return func(s *userService) { s.hashCost = cost }
}

// NewUserService returns a new instance of UserService
func NewUserService(
	repo repository.UserRepository,
	roles repository.RoleRepository,
	tx repository.TransactionManager,
	audit AuditService,
	log logger.Recorder,
	opts ...UserOption,
) UserService {
	s := &userService{
		repo:     repo,
		roles:    roles,
		tx:       tx,
		audit:    audit,
		log:      log,
		validate: validator.New(),
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Helper: parse model to standard json API response
func mapToResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		RoleID:    user.RoleID,
		CreatedAt: user.CreatedAt.Format(timeLayout),
		UpdatedAt: user.UpdatedAt.Format(timeLayout),
	}
}

func (s *userService) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", apperror.Validation("failed to hash password: %v", err)
	}
	return string(hashed), nil
}

func (s *userService) placeholderEmail() string {
	return fmt.Sprintf("guest%d.%s@%s", s.now().UnixNano(), uuid.NewString()[:8], guestEmailDomain)
}

func (s *userService) validEmail(email string) error {
	if err := s.validate.Var(email, "email"); err != nil {
		return apperror.Validation("invalid email format")
	}
	return nil
}

// requireRole fails with a not-found error when roleID does not resolve. The
// role row stays share-locked until the surrounding tx ends.
func (s *userService) requireRole(ctx context.Context, roleID uuid.UUID) error {
	if _, err := s.roles.FindByIDLocked(ctx, roleID, repository.LockShare); err != nil {
		if isNotFound(err) {
			return apperror.NotFound("role", roleID.String())
		}
		return classify("failed to fetch role", err)
	}
	return nil
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	const op = "create user"

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		fullName = DefaultFullName
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = s.placeholderEmail()
	} else if err := s.validEmail(email); err != nil {
		return nil, fail(s.log, op, err)
	}

	roleID := model.GuestRoleID
	if strings.TrimSpace(req.RoleID) != "" {
		parsed, err := parseID("role", req.RoleID)
		if err != nil {
			return nil, fail(s.log, op, err)
		}
		roleID = parsed
	}

	password := req.Password
	if password == "" {
		password = DefaultPassword
	}
	passwordHash, err := s.hash(password)
	if err != nil {
		return nil, fail(s.log, op, err)
	}

	user := &model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		RoleID:       roleID,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireRole(txCtx, roleID); err != nil {
			return err
		}
		if err := s.repo.Create(txCtx, user); err != nil {
			return classify("failed to create user", err)
		}
		return nil
	})
	if err != nil {
		return nil, fail(s.log, op, err)
	}

	s.log.Record(fmt.Sprintf("User created with ID: %s", user.ID), logger.SeverityInfo)
	s.audit.Record(ctx, model.ActionCreateUser, "user", user.ID.String(), map[string]interface{}{
		"email":   user.Email,
		"role_id": user.RoleID,
	})
	return mapToResponse(user), nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*UserResponse, error) {
	userID, err := parseID("user", id)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fail(s.log, "fetch user", classify("failed to fetch user", err))
	}
	return mapToResponse(user), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(s.log, "fetch users", classify("failed to fetch users", err))
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *mapToResponse(&users[i]))
	}
	return responses, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error) {
	const op = "update user"

	userID, err := parseID("user", id)
	if err != nil {
		return nil, fail(s.log, op, err)
	}

	fields := make(map[string]interface{})
	changed := make([]string, 0, 4)

	if name := trimmed(req.FullName); name != nil {
		if *name == "" {
			return nil, fail(s.log, op, apperror.Validation("full_name must not be blank"))
		}
		fields["full_name"] = *name
		changed = append(changed, "full_name")
	}
	if email := trimmed(req.Email); email != nil {
		if err := s.validEmail(*email); err != nil {
			return nil, fail(s.log, op, err)
		}
		fields["email"] = *email
		changed = append(changed, "email")
	}
	var roleID *uuid.UUID
	if req.RoleID != nil {
		parsed, err := parseID("role", *req.RoleID)
		if err != nil {
			return nil, fail(s.log, op, err)
		}
		roleID = &parsed
		fields["role_id"] = parsed
		changed = append(changed, "role_id")
	}
	if req.Password != nil {
		if *req.Password == "" {
			return nil, fail(s.log, op, apperror.Validation("password must not be empty"))
		}
		passwordHash, err := s.hash(*req.Password)
		if err != nil {
			return nil, fail(s.log, op, err)
		}
		fields["password_hash"] = passwordHash
		changed = append(changed, "password")
	}

	var user *model.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetByID(txCtx, userID); err != nil {
			if isNotFound(err) {
				return apperror.NotFound("user", userID.String())
			}
			return classify("failed to fetch user", err)
		}
		if roleID != nil {
			if err := s.requireRole(txCtx, *roleID); err != nil {
				return err
			}
		}
		if len(fields) > 0 {
			if err := s.repo.UpdateFields(txCtx, userID, fields); err != nil {
				return classify("failed to update user", err)
			}
		}
		updated, err := s.repo.GetByID(txCtx, userID)
		if err != nil {
			return classify("failed to reload user", err)
		}
		user = updated
		return nil
	})
	if err != nil {
		return nil, fail(s.log, op, err)
	}

	if len(changed) > 0 {
		s.log.Record(fmt.Sprintf("User updated with ID: %s", userID), logger.SeverityInfo)
		s.audit.Record(ctx, model.ActionUpdateUser, "user", userID.String(), map[string]interface{}{"fields": changed})
	}
	return mapToResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	const op = "delete user"

	userID, err := parseID("user", id)
	if err != nil {
		return fail(s.log, op, err)
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fail(s.log, op, classify("failed to delete user", err))
	}

	s.log.Record(fmt.Sprintf("User deleted with ID: %s", userID), logger.SeverityInfo)
	s.audit.Record(ctx, model.ActionDeleteUser, "user", userID.String(), nil)
	return nil
}

func (s *userService) VerifyPassword(ctx context.Context, id, password string) (bool, error) {
	userID, err := parseID("user", id)
	if err != nil {
		return false, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fail(s.log, "verify password", classify("failed to fetch user", err))
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil, nil
}
