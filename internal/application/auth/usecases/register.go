package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/tenant"
	"kostera/internal/domain/user"
	"kostera/internal/shared/authorization"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type RegisterCommand struct {
	KostName string
	Email    string
	Password string
	FullName string
	Phone    string
}

// TrialStarter creates the trial subscription for a fresh tenant.
// Satisfied by subscription usecases.StartTrialUseCase.
type TrialStarter interface {
	Execute(ctx context.Context, tenantID uint) error
}

// TxRunner mirrors db.TransactionManager.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RegisterUseCase signs up a new workspace: tenant, owner account and trial
// subscription in one transaction, then logs the owner in.
type RegisterUseCase struct {
	tenantRepo   tenant.TenantRepository
	userRepo     user.UserRepository
	hasher       PasswordHasher
	tokens       TokenIssuer
	trialStarter TrialStarter
	txManager    TxRunner
	logger       logger.Interface
}

func NewRegisterUseCase(
	tenantRepo tenant.TenantRepository,
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	trialStarter TrialStarter,
	txManager TxRunner,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		tenantRepo:   tenantRepo,
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		trialStarter: trialStarter,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*LoginResult, error) {
	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email already registered", cmd.Email)
	}

	slug := utils.Slugify(cmd.KostName)
	slugTaken, err := uc.tenantRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if slugTaken {
		return nil, tenant.ErrSlugExists
	}

	newTenant, err := tenant.NewTenant(cmd.KostName, slug, cmd.Phone, "Indonesia")
	if err != nil {
		return nil, errors.NewValidationError("invalid tenant", err.Error())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var owner *user.User
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.tenantRepo.Create(txCtx, newTenant); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		tenantID := newTenant.ID()
		owner, err = user.NewUser(cmd.Email, hash, cmd.FullName, &tenantID, []authorization.Role{authorization.RoleOwner})
		if err != nil {
			return errors.NewValidationError("invalid user", err.Error())
		}
		if err := uc.userRepo.Create(txCtx, owner); err != nil {
			return fmt.Errorf("failed to create owner: %w", err)
		}

		if err := uc.trialStarter.Execute(txCtx, tenantID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("registration failed", "error", err, "email", cmd.Email)
		return nil, err
	}

	token, err := uc.tokens.Generate(owner.ID(), owner.TenantID(), owner.Roles())
	if err != nil {
		uc.logger.Errorw("failed to sign access token", "error", err, "user_id", owner.ID())
		return nil, err
	}

	uc.logger.Infow("tenant registered", "tenant_id", newTenant.ID(), "slug", slug, "owner_id", owner.ID())
	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   uc.tokens.ExpiresIn(),
		User:        toAuthenticatedUser(owner),
	}, nil
}
