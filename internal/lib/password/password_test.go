package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := Hash("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, Verify("s3cret-pass", hash))
	assert.False(t, Verify("wrong", hash))
	assert.False(t, Verify("s3cret-pass", "not-a-hash"))
}

func TestHashesAreSalted(t *testing.T) {
	t.Parallel()

	a, err := Hash("s3cret-pass")
	require.NoError(t, err)

	b, err := Hash("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
