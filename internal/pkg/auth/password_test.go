package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPIN(t *testing.T) {
	hash, err := HashPINWithCost("4321", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "4321", hash)

	assert.True(t, CheckPIN(hash, "4321"))
	assert.False(t, CheckPIN(hash, "1234"))
	assert.False(t, CheckPIN("not-a-hash", "4321"))
}
