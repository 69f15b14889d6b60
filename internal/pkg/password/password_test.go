package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerify(t *testing.T) {
	digest, err := Hash("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", digest)

	ok, err := Verify("s3cretpass", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("wrong", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_Salted(t *testing.T) {
	a, err := Hash("same")
	require.NoError(t, err)
	b, err := Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerify_MalformedDigest(t *testing.T) {
	ok, err := Verify("x", "plaintext-not-bcrypt")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMalformedDigest)
}
