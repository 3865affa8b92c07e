package usecases

import (
	"context"

	"kostera/internal/domain/user"
	"kostera/internal/shared/authorization"
	"kostera/internal/shared/logger"
)

// PasswordHasher hashes and verifies passwords. Satisfied by
// auth.BcryptPasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs access tokens. Satisfied by auth.JWTService.
type TokenIssuer interface {
	Generate(userID uint, tenantID *uint, roles []authorization.Role) (string, error)
	ExpiresIn() int64
}

type LoginCommand struct {
	Email    string
	Password string
}

type AuthenticatedUser struct {
	ID       uint     `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	TenantID *uint    `json:"tenant_id,omitempty"`
	Roles    []string `json:"roles"`
}

type LoginResult struct {
	AccessToken string            `json:"access_token"`
	ExpiresIn   int64             `json:"expires_in"`
	User        AuthenticatedUser `json:"user"`
}

// LoginUseCase authenticates by email and password. Unknown email, wrong
// password and deactivated account all produce the same error so callers
// cannot probe which emails exist.
type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	account, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Debugw("login failed, email not found", "email", cmd.Email)
		return nil, user.ErrInvalidCredentials
	}
	if !account.IsActive() {
		uc.logger.Infow("login rejected, account deactivated", "user_id", account.ID())
		return nil, user.ErrInvalidCredentials
	}
	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Debugw("login failed, password mismatch", "user_id", account.ID())
		return nil, user.ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(account.ID(), account.TenantID(), account.Roles())
	if err != nil {
		uc.logger.Errorw("failed to sign access token", "error", err, "user_id", account.ID())
		return nil, err
	}

	uc.logger.Infow("user logged in", "user_id", account.ID())
	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   uc.tokens.ExpiresIn(),
		User:        toAuthenticatedUser(account),
	}, nil
}

func toAuthenticatedUser(account *user.User) AuthenticatedUser {
	roles := make([]string, 0, len(account.Roles()))
	for _, role := range account.Roles() {
		roles = append(roles, role.String())
	}
	return AuthenticatedUser{
		ID:       account.ID(),
		Email:    account.Email(),
		FullName: account.Name(),
		TenantID: account.TenantID(),
		Roles:    roles,
	}
}
