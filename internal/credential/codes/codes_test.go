package codes

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.Len(t, code, CodeLength)
		for _, r := range code {
			assert.Contains(t, Alphabet, string(r))
		}
	}
}

func TestGenerateCode_NoObviousRepeats(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s after %d draws", code, i)
		seen[code] = true
	}
}

func TestGenerateCode_UppercaseOnly(t *testing.T) {
	code, err := GenerateCode()
	require.NoError(t, err)
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestGenerateToken_IsUUID(t *testing.T) {
	token := GenerateToken()
	parsed, err := uuid.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := GenerateToken()
		assert.False(t, seen[token])
		seen[token] = true
	}
}
