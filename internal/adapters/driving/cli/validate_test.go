package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCmd_ValidQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "validate", "(tag:work OR tag:personal) AND NOT archived")

	require.NoError(t, err)
	assert.Contains(t, out, "Query is valid.")
}

func TestValidateCmd_InvalidQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "validate", "(tag:work")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parenthesis")
}

func TestValidateCmd_UnknownField(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "validate", "author:smith")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "author"`)
}
