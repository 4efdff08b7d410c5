package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiretrack_backend/internal/kvstore"
	"hiretrack_backend/internal/models"
)

func TestSessionRepository_SaveGetClear(t *testing.T) {
	store := newTestKV(t)
	repo := NewSessionRepository(store)

	assert.Nil(t, repo.Get())

	session := models.Session{
		ID:       1,
		Username: "emilys",
		Role:     models.UserRoleTAMember,
		Token:    "remote-opaque-token",
	}
	repo.Save(session)

	got := repo.Get()
	require.NotNil(t, got)
	assert.Equal(t, session, *got)

	repo.Clear()
	assert.Nil(t, repo.Get())
}

func TestSessionRepository_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := kvstore.NewStore(dir)
	require.NoError(t, err)
	NewSessionRepository(store).Save(models.Session{ID: 2, Username: "michaelw", Role: models.UserRoleAdmin})

	reopened, err := kvstore.NewStore(dir)
	require.NoError(t, err)

	got := NewSessionRepository(reopened).Get()
	require.NotNil(t, got)
	assert.Equal(t, "michaelw", got.Username)
}

func TestSessionRepository_CorruptDataMeansLoggedOut(t *testing.T) {
	dir := t.TempDir()

	store, err := kvstore.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{broken"), 0o644))

	assert.Nil(t, NewSessionRepository(store).Get())
}
