package tenant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant_ValidInput(t *testing.T) {
	tn, err := NewTenant("Kost Melati", "kost-melati", "+628123456789", "Jl. Melati 5, Bandung")

	require.NoError(t, err)
	require.NotNil(t, tn)
	assert.Equal(t, "Kost Melati", tn.Name())
	assert.Equal(t, "kost-melati", tn.Slug())
	assert.True(t, tn.IsActive())
}

func TestNewTenant_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		tName   string
		slug    string
		wantErr string
	}{
		{"empty name", "", "slug", "tenant name is required"},
		{"empty slug", "Kost", "", "tenant slug is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tn, err := NewTenant(tc.tName, tc.slug, "", "")
			assert.Error(t, err)
			assert.Nil(t, tn)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestTenant_SuspendAndReactivate(t *testing.T) {
	tn, err := NewTenant("Kost Melati", "kost-melati", "", "")
	require.NoError(t, err)

	tn.Suspend()
	assert.False(t, tn.IsActive())

	tn.Reactivate()
	assert.True(t, tn.IsActive())
}

func TestReconstructTenant(t *testing.T) {
	now := time.Now().UTC()

	tn, err := ReconstructTenant(4, "Kost Mawar", "kost-mawar", "", "", false, now, now)

	require.NoError(t, err)
	assert.Equal(t, uint(4), tn.ID())
	assert.False(t, tn.IsActive())
}

func TestReconstructTenant_ZeroID(t *testing.T) {
	now := time.Now().UTC()

	tn, err := ReconstructTenant(0, "Kost Mawar", "kost-mawar", "", "", true, now, now)

	assert.Error(t, err)
	assert.Nil(t, tn)
}
