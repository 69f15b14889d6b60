package id

import (
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsParseableULID(t *testing.T) {
	_, err := ulid.Parse(New())
	require.NoError(t, err)
}

func TestObjectKey(t *testing.T) {
	k := ObjectKey("/posts/", ".jpg")
	assert.True(t, strings.HasPrefix(k, "posts/"))
	assert.True(t, strings.HasSuffix(k, ".jpg"))
	assert.Len(t, k, len("posts/")+26+len(".jpg"))
	assert.NotEqual(t, k, ObjectKey("posts", ".jpg"))
}
