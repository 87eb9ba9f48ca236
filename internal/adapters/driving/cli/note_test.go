package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteAddCmd_CreatesNote(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "note", "add", "Reading list", "-b", "books to read", "-t", "personal")

	require.NoError(t, err)
	assert.Contains(t, out, "Created note ")

	// The new note is searchable straight away.
	out, err = execute(t, "search", "title:reading")
	require.NoError(t, err)
	assert.Contains(t, out, "Reading list")
}

func TestNoteAddCmd_EmptyTitleFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "note", "add", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestNoteListCmd_ListsFixtures(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "note", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Project kickoff")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "[work, meeting]")
}

func TestNoteRmCmd_DeletesNote(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "note", "rm", "n2")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted note n2")

	// Removed from the corpus too.
	out, err = execute(t, "search", "tag:personal")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestNoteRmCmd_MissingNote(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "note", "rm", "missing")
	assert.Error(t, err)
}
