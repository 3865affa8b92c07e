package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Kost Bahagia", "kost-bahagia"},
		{"mixed case and punctuation", "Wisma Melati (Pusat)!", "wisma-melati-pusat"},
		{"leading and trailing spaces", "  Griya Asri  ", "griya-asri"},
		{"multiple spaces collapse", "Kost   Putri   Anggrek", "kost-putri-anggrek"},
		{"already a slug", "demo-kost", "demo-kost"},
		{"non-latin characters dropped", "Kost 日本 24", "kost-24"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
