package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiretrack_backend/internal/config"
	"hiretrack_backend/internal/models"
)

func setupTestConfig(t *testing.T, ttlMinutes int) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg

	t.Cleanup(func() { config.AppConfig = nil })
}

func TestGenerateAndParseToken(t *testing.T) {
	setupTestConfig(t, 60)

	token, err := GenerateToken(7, "emilys", models.UserRolePanelist)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "emilys", claims.Username)
	assert.Equal(t, models.UserRolePanelist, claims.Role)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	setupTestConfig(t, 60)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsExpired(t *testing.T) {
	// Отрицательный TTL: токен истекает в момент выпуска
	setupTestConfig(t, -1)

	token, err := GenerateToken(7, "emilys", models.UserRoleAdmin)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestPermissions(t *testing.T) {
	assert.True(t, HasPermission(models.UserRoleAdmin, "Manage user roles"))
	assert.True(t, HasPermission(models.UserRolePanelist, "Submit feedback"))
	assert.False(t, HasPermission(models.UserRolePanelist, "Manage candidates"))
	assert.False(t, HasPermission(models.UserRole("ghost"), "Submit feedback"))

	assert.Equal(t, "TA Member", RoleLabel(models.UserRoleTAMember))

	assert.NoError(t, ValidateRole(models.UserRoleAdmin))
	assert.Error(t, ValidateRole(models.UserRole("superuser")))
}
