package revoke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserNameFromARN(t *testing.T) {
	name, err := userNameFromARN("arn:aws:iam::123456789012:user/alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	name, err = userNameFromARN("arn:aws:iam::123456789012:user/engineering/bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", name)

	_, err = userNameFromARN("arn:aws:iam::123456789012:role/admin")
	assert.Error(t, err)

	_, err = userNameFromARN("arn:aws:iam::123456789012:user/")
	assert.Error(t, err)
}
