package apikey

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

var ErrAPIKeyNotFound = errors.New("api key not found")

// APIKey authenticates public storefront calls for a tenant. Only the SHA-256
// hash is stored; the plaintext is shown once at creation.
type APIKey struct {
	id        uint
	tenantID  uint
	keyHash   string
	isActive  bool
	createdAt time.Time
}

// Generate mints a fresh key for the tenant and returns the aggregate along
// with the plaintext key.
func Generate(tenantID uint) (*APIKey, string, error) {
	if tenantID == 0 {
		return nil, "", fmt.Errorf("tenant ID is required")
	}

	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return nil, "", fmt.Errorf("generate api key: %w", err)
	}
	plaintext := "kst_" + hex.EncodeToString(raw)

	return &APIKey{
		tenantID:  tenantID,
		keyHash:   HashKey(plaintext),
		isActive:  true,
		createdAt: time.Now(),
	}, plaintext, nil
}

// HashKey maps a plaintext key to its stored form.
func HashKey(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func ReconstructAPIKey(id, tenantID uint, keyHash string, isActive bool, createdAt time.Time) (*APIKey, error) {
	if id == 0 {
		return nil, fmt.Errorf("api key ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if keyHash == "" {
		return nil, fmt.Errorf("key hash is required")
	}

	return &APIKey{
		id:        id,
		tenantID:  tenantID,
		keyHash:   keyHash,
		isActive:  isActive,
		createdAt: createdAt,
	}, nil
}

func (k *APIKey) ID() uint {
	return k.id
}

func (k *APIKey) SetID(id uint) error {
	if k.id != 0 {
		return fmt.Errorf("api key ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("api key ID cannot be zero")
	}
	k.id = id
	return nil
}

func (k *APIKey) TenantID() uint {
	return k.tenantID
}

func (k *APIKey) KeyHash() string {
	return k.keyHash
}

func (k *APIKey) IsActive() bool {
	return k.isActive
}

func (k *APIKey) CreatedAt() time.Time {
	return k.createdAt
}

func (k *APIKey) Revoke() {
	k.isActive = false
}
