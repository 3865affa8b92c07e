package apikey

import "context"

type APIKeyRepository interface {
	Create(ctx context.Context, key *APIKey) error
	// GetActiveByHash resolves a presented key to its tenant. Revoked keys
	// do not match.
	GetActiveByHash(ctx context.Context, keyHash string) (*APIKey, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]*APIKey, error)
	Revoke(ctx context.Context, id uint) error
}
