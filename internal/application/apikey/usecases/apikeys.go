package usecases

import (
	"context"
	"fmt"
	"time"

	"kostera/internal/domain/apikey"
	"kostera/internal/shared/logger"
)

type APIKeyDTO struct {
	ID        uint      `json:"id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// GeneratedAPIKeyDTO carries the plaintext exactly once, at creation.
// Afterwards only the hash exists.
type GeneratedAPIKeyDTO struct {
	APIKeyDTO
	Key string `json:"key"`
}

type GenerateAPIKeyUseCase struct {
	apiKeyRepo apikey.APIKeyRepository
	logger     logger.Interface
}

func NewGenerateAPIKeyUseCase(apiKeyRepo apikey.APIKeyRepository, logger logger.Interface) *GenerateAPIKeyUseCase {
	return &GenerateAPIKeyUseCase{apiKeyRepo: apiKeyRepo, logger: logger}
}

func (uc *GenerateAPIKeyUseCase) Execute(ctx context.Context, tenantID uint) (*GeneratedAPIKeyDTO, error) {
	key, plaintext, err := apikey.Generate(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key: %w", err)
	}
	if err := uc.apiKeyRepo.Create(ctx, key); err != nil {
		uc.logger.Errorw("failed to store api key", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to store api key: %w", err)
	}

	uc.logger.Infow("api key generated", "key_id", key.ID(), "tenant_id", tenantID)
	return &GeneratedAPIKeyDTO{
		APIKeyDTO: APIKeyDTO{ID: key.ID(), IsActive: key.IsActive(), CreatedAt: key.CreatedAt()},
		Key:       plaintext,
	}, nil
}

type ListAPIKeysUseCase struct {
	apiKeyRepo apikey.APIKeyRepository
	logger     logger.Interface
}

func NewListAPIKeysUseCase(apiKeyRepo apikey.APIKeyRepository, logger logger.Interface) *ListAPIKeysUseCase {
	return &ListAPIKeysUseCase{apiKeyRepo: apiKeyRepo, logger: logger}
}

func (uc *ListAPIKeysUseCase) Execute(ctx context.Context, tenantID uint) ([]APIKeyDTO, error) {
	keys, err := uc.apiKeyRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list api keys", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	result := make([]APIKeyDTO, 0, len(keys))
	for _, key := range keys {
		result = append(result, APIKeyDTO{ID: key.ID(), IsActive: key.IsActive(), CreatedAt: key.CreatedAt()})
	}
	return result, nil
}

// APIUsageReader reports calls consumed in the current quota window.
// Satisfied by ratelimit.APICallLimiter.
type APIUsageReader interface {
	Used(ctx context.Context, tenantID uint) (int64, error)
}

type APIUsageDTO struct {
	CallsThisMonth int64 `json:"calls_this_month"`
}

type GetAPIUsageUseCase struct {
	usage  APIUsageReader
	logger logger.Interface
}

func NewGetAPIUsageUseCase(usage APIUsageReader, logger logger.Interface) *GetAPIUsageUseCase {
	return &GetAPIUsageUseCase{usage: usage, logger: logger}
}

func (uc *GetAPIUsageUseCase) Execute(ctx context.Context, tenantID uint) (*APIUsageDTO, error) {
	used, err := uc.usage.Used(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to read api call usage", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to read api call usage: %w", err)
	}
	return &APIUsageDTO{CallsThisMonth: used}, nil
}

type RevokeAPIKeyUseCase struct {
	apiKeyRepo apikey.APIKeyRepository
	logger     logger.Interface
}

func NewRevokeAPIKeyUseCase(apiKeyRepo apikey.APIKeyRepository, logger logger.Interface) *RevokeAPIKeyUseCase {
	return &RevokeAPIKeyUseCase{apiKeyRepo: apiKeyRepo, logger: logger}
}

func (uc *RevokeAPIKeyUseCase) Execute(ctx context.Context, tenantID, keyID uint) error {
	keys, err := uc.apiKeyRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to list api keys: %w", err)
	}
	owned := false
	for _, key := range keys {
		if key.ID() == keyID {
			owned = true
			break
		}
	}
	if !owned {
		return apikey.ErrAPIKeyNotFound
	}

	if err := uc.apiKeyRepo.Revoke(ctx, keyID); err != nil {
		uc.logger.Errorw("failed to revoke api key", "error", err, "key_id", keyID)
		return err
	}
	uc.logger.Infow("api key revoked", "key_id", keyID, "tenant_id", tenantID)
	return nil
}
