package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"valid 809", "8095551234", false},
		{"valid 829 with formatting", "(829) 555-1234", false},
		{"valid 849", "849-555-1234", false},
		{"wrong prefix", "7095551234", true},
		{"too short", "809555123", true},
		{"too long", "80955512345", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	require.Equal(t, "8095551234", NormalizePhone("(809) 555-1234"))
	require.Equal(t, "", NormalizePhone("abc"))
}

func TestValidateBuyer(t *testing.T) {
	t.Run("normalizes in place", func(t *testing.T) {
		buyer := BuyerInfo{
			Name:  "  Juan Pérez ",
			Phone: "(809) 555-1234",
			Email: " juan@example.com ",
		}
		require.NoError(t, buyer.ValidateBuyer())
		require.Equal(t, "JUAN PÉREZ", buyer.Name)
		require.Equal(t, "8095551234", buyer.Phone)
		require.Equal(t, "juan@example.com", buyer.Email)
	})

	t.Run("rejects short name", func(t *testing.T) {
		buyer := BuyerInfo{Name: "Jo", Phone: "8095551234", Email: "a@b.com"}
		require.ErrorIs(t, buyer.ValidateBuyer(), ErrValidation)
	})

	t.Run("rejects digits in name", func(t *testing.T) {
		buyer := BuyerInfo{Name: "Juan 2", Phone: "8095551234", Email: "a@b.com"}
		require.ErrorIs(t, buyer.ValidateBuyer(), ErrValidation)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		buyer := BuyerInfo{Name: "Juan Pérez", Phone: "8095551234", Email: "not-an-email"}
		require.ErrorIs(t, buyer.ValidateBuyer(), ErrValidation)
	})
}

func TestMaskPhone(t *testing.T) {
	require.Equal(t, "809555****", MaskPhone("8095551234"))
	require.Equal(t, "809555****", MaskPhone("(809) 555-1234"))
	require.Equal(t, "****", MaskPhone("123"))
	require.Equal(t, "****", MaskPhone(""))
}
