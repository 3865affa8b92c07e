package usecases

import (
	"context"
	"fmt"

	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/domain/user"
	"kostera/internal/shared/authorization"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
)

// LimitChecker mirrors the subscription CheckLimitUseCase.
type LimitChecker interface {
	Execute(ctx context.Context, tenantID uint, resource vo.LimitResource) error
}

// PasswordHasher mirrors auth.BcryptPasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type StaffDTO struct {
	ID       uint     `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	IsActive bool     `json:"is_active"`
	Roles    []string `json:"roles"`
}

func toStaffDTO(u *user.User) StaffDTO {
	roles := make([]string, 0, len(u.Roles()))
	for _, role := range u.Roles() {
		roles = append(roles, role.String())
	}
	return StaffDTO{
		ID:       u.ID(),
		Email:    u.Email(),
		FullName: u.Name(),
		IsActive: u.IsActive(),
		Roles:    roles,
	}
}

type CreateStaffCommand struct {
	TenantID uint
	Email    string
	Password string
	FullName string
}

// CreateStaffUseCase adds a staff account under the tenant. New staff carry
// both STAFF and TENANT_STAFF so they count against the plan's staff limit
// and pass every staff-scoped endpoint.
type CreateStaffUseCase struct {
	userRepo     user.UserRepository
	hasher       PasswordHasher
	limitChecker LimitChecker
	logger       logger.Interface
}

func NewCreateStaffUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	limitChecker LimitChecker,
	logger logger.Interface,
) *CreateStaffUseCase {
	return &CreateStaffUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		limitChecker: limitChecker,
		logger:       logger,
	}
}

func (uc *CreateStaffUseCase) Execute(ctx context.Context, cmd CreateStaffCommand) (*StaffDTO, error) {
	if err := uc.limitChecker.Execute(ctx, cmd.TenantID, vo.LimitStaff); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email already registered", cmd.Email)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tenantID := cmd.TenantID
	staff, err := user.NewUser(cmd.Email, hash, cmd.FullName, &tenantID,
		[]authorization.Role{authorization.RoleStaff, authorization.RoleTenantStaff})
	if err != nil {
		return nil, errors.NewValidationError("invalid staff account", err.Error())
	}
	if err := uc.userRepo.Create(ctx, staff); err != nil {
		uc.logger.Errorw("failed to create staff", "error", err, "tenant_id", cmd.TenantID)
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	uc.logger.Infow("staff created", "user_id", staff.ID(), "tenant_id", cmd.TenantID)
	result := toStaffDTO(staff)
	return &result, nil
}

type ListStaffUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListStaffUseCase(userRepo user.UserRepository, logger logger.Interface) *ListStaffUseCase {
	return &ListStaffUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListStaffUseCase) Execute(ctx context.Context, tenantID uint) ([]StaffDTO, error) {
	staff, err := uc.userRepo.ListByTenantAndRole(ctx, tenantID, authorization.RoleStaff)
	if err != nil {
		uc.logger.Errorw("failed to list staff", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	result := make([]StaffDTO, 0, len(staff))
	for _, u := range staff {
		result = append(result, toStaffDTO(u))
	}
	return result, nil
}

// RemoveStaffUseCase deletes a staff account. Owners cannot be removed here
// and a staff member from another tenant is invisible.
type RemoveStaffUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewRemoveStaffUseCase(userRepo user.UserRepository, logger logger.Interface) *RemoveStaffUseCase {
	return &RemoveStaffUseCase{userRepo: userRepo, logger: logger}
}

func (uc *RemoveStaffUseCase) Execute(ctx context.Context, tenantID, userID uint) error {
	staff, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if staff.TenantID() == nil || *staff.TenantID() != tenantID {
		return user.ErrUserNotFound
	}
	if !staff.HasRole(authorization.RoleStaff) {
		return errors.NewForbiddenError("only staff accounts can be removed")
	}
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		uc.logger.Errorw("failed to remove staff", "error", err, "user_id", userID)
		return fmt.Errorf("failed to remove staff: %w", err)
	}
	uc.logger.Infow("staff removed", "user_id", userID, "tenant_id", tenantID)
	return nil
}
