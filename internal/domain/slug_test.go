package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Gran Rifa Navidad", "gran-rifa-navidad"},
		{"accents folded", "Rifa de Año Nuevo ¡Increíble!", "rifa-de-ano-nuevo-increible"},
		{"spanish vowels", "Súper Rifón", "super-rifon"},
		{"punctuation collapsed", "iPhone 15 -- Pro!! Max", "iphone-15-pro-max"},
		{"leading and trailing noise", "  ((Rifa))  ", "rifa"},
		{"empty falls back", "", "raffle"},
		{"symbols only falls back", "!!!", "raffle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyAccentFoldTable(t *testing.T) {
	require.Equal(t, "nina-facil", Slugify("Niña Fácil"))
	require.Equal(t, "pinguino", Slugify("Pingüino"))
}

func TestSlugifyLengthCap(t *testing.T) {
	long := strings.Repeat("rifa ", 100)
	slug := Slugify(long)
	require.LessOrEqual(t, len(slug), 200)
	require.False(t, strings.HasSuffix(slug, "-"))
}
