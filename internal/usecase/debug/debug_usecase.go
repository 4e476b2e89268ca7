// Package debug backs the admin-gated diagnostics surface: schema health,
// test-user creation and identity lookups.
package debug

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/repository"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/identity"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type DebugUseCase struct {
	schemaRepo repository.SchemaRepository
	userRepo   repository.UserRepository
	identity   identity.Resolver
	validate   *validator.Validate
}

func NewDebugUseCase(
	schemaRepo repository.SchemaRepository,
	userRepo repository.UserRepository,
	resolver identity.Resolver,
) *DebugUseCase {
	return &DebugUseCase{
		schemaRepo: schemaRepo,
		userRepo:   userRepo,
		identity:   resolver,
		validate:   validator.New(),
	}
}

// SchemaHealth reports which known tables and optional columns exist.
func (uc *DebugUseCase) SchemaHealth(ctx context.Context) (*repository.SchemaReport, error) {
	return uc.schemaRepo.Health(ctx)
}

// CreateUserRequest is the minimal test-user payload. The national id is
// mandatory because the users DDL requires it.
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=6"`
	AadharNo string  `json:"aadhar_no" validate:"required,len=12"`
	UserType *string `json:"user_type" validate:"omitempty,oneof=resident roommate"`
}

// CreateUser inserts a fully-specified user row for testing.
func (uc *DebugUseCase) CreateUser(ctx context.Context, req *CreateUserRequest) (int, error) {
	if err := uc.validate.Struct(req); err != nil {
		return 0, apperrors.InvalidArg(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeInternal, "failed to hash password", err)
	}
	password := string(hashed)

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: &password,
		AadharNo: &req.AadharNo,
		UserType: req.UserType,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// UserInfo resolves any identifier shape and returns the user row.
func (uc *DebugUseCase) UserInfo(ctx context.Context, identifier string) (*domain.User, error) {
	userID, err := uc.identity.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return uc.userRepo.GetByID(ctx, userID)
}

// ListUsers returns up to limit recent users.
func (uc *DebugUseCase) ListUsers(ctx context.Context, limit int) ([]*domain.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.userRepo.List(ctx, limit)
}
