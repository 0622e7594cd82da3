package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	t.Run("valid US number", func(t *testing.T) {
		result, err := ValidatePhone("(415) 555-2671", "US")
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, "+14155552671", result.E164Format)
		assert.Equal(t, "US", result.CountryCode)
	})

	t.Run("defaults to US region", func(t *testing.T) {
		result, err := ValidatePhone("4155552671", "")
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, "+14155552671", result.E164Format)
	})

	t.Run("empty number", func(t *testing.T) {
		_, err := ValidatePhone("", "US")
		assert.Error(t, err)
	})

	t.Run("unparseable input", func(t *testing.T) {
		_, err := ValidatePhone("not a number", "US")
		assert.Error(t, err)
	})
}

func TestNormalizePhone(t *testing.T) {
	t.Run("normalizes to E.164", func(t *testing.T) {
		normalized, err := NormalizePhone("415-555-2671", "US")
		require.NoError(t, err)
		assert.Equal(t, "+14155552671", normalized)
	})

	t.Run("rejects invalid number", func(t *testing.T) {
		_, err := NormalizePhone("123", "US")
		assert.Error(t, err)
	})
}
