package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SeisDigitos(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "solo dígitos: %s", code)
		}
		// Nunca empieza por cero: el rango es [100000, 999999].
		assert.NotEqual(t, byte('0'), code[0])
	}
}

func TestHashVerify(t *testing.T) {
	code, err := Generate()
	require.NoError(t, err)

	hash := Hash(code)
	assert.NotEqual(t, code, hash)
	assert.Len(t, hash, 64, "hex de SHA-256")

	assert.True(t, Verify(code, hash))
	assert.False(t, Verify("000000", hash))
	assert.False(t, Verify(code, Hash("otro")))
}
