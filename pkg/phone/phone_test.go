package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("national number with default region", func(t *testing.T) {
		got, err := Normalize("613-520-2600", "CA")
		require.NoError(t, err)
		assert.Equal(t, "+16135202600", got)
	})

	t.Run("already E.164 passes through", func(t *testing.T) {
		got, err := Normalize("+16135202600", "")
		require.NoError(t, err)
		assert.Equal(t, "+16135202600", got)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := Normalize("not a phone", "CA")
		assert.Error(t, err)
	})

	t.Run("empty is rejected", func(t *testing.T) {
		_, err := Normalize("", "CA")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	res, err := Validate("+16135202600", "CA")
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.Equal(t, "+16135202600", res.E164Format)
	assert.Equal(t, "CA", res.Region)
}
