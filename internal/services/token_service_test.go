package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmori/task-manager-api/internal/models"
	"github.com/tmori/task-manager-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTokenServiceTest(t *testing.T) (*gorm.DB, *TokenService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.AccessToken{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, NewTokenService(repository.NewTokenRepository(db))
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Name: "Test", Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestTokenService_IssueAndResolve(t *testing.T) {
	db, tokens := setupTokenServiceTest(t)
	userA := createUser(t, db, "a@example.com")
	userB := createUser(t, db, "b@example.com")

	tokenA, err := tokens.Issue(userA.ID)
	require.NoError(t, err)
	require.Len(t, tokenA, 64)

	tokenB, err := tokens.Issue(userB.ID)
	require.NoError(t, err)
	require.NotEqual(t, tokenA, tokenB)

	// Each token resolves to its own user and nobody else
	resolved, err := tokens.Resolve(tokenA)
	require.NoError(t, err)
	require.Equal(t, userA.ID, resolved.ID)

	resolved, err = tokens.Resolve(tokenB)
	require.NoError(t, err)
	require.Equal(t, userB.ID, resolved.ID)
}

func TestTokenService_PlaintextNeverStored(t *testing.T) {
	db, tokens := setupTokenServiceTest(t)
	user := createUser(t, db, "a@example.com")

	plaintext, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	var stored models.AccessToken
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&stored).Error)
	require.NotEqual(t, plaintext, stored.TokenHash)
	require.Len(t, stored.TokenHash, 64)
}

func TestTokenService_Resolve_Unknown(t *testing.T) {
	_, tokens := setupTokenServiceTest(t)

	_, err := tokens.Resolve("not-a-real-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Resolve("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RevokeAll(t *testing.T) {
	db, tokens := setupTokenServiceTest(t)
	userA := createUser(t, db, "a@example.com")
	userB := createUser(t, db, "b@example.com")

	tokenA1, err := tokens.Issue(userA.ID)
	require.NoError(t, err)
	tokenA2, err := tokens.Issue(userA.ID)
	require.NoError(t, err)
	tokenB, err := tokens.Issue(userB.ID)
	require.NoError(t, err)

	require.NoError(t, tokens.RevokeAll(userA.ID))

	_, err = tokens.Resolve(tokenA1)
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = tokens.Resolve(tokenA2)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Other users keep their sessions
	resolved, err := tokens.Resolve(tokenB)
	require.NoError(t, err)
	require.Equal(t, userB.ID, resolved.ID)

	// Revoking again is idempotent
	require.NoError(t, tokens.RevokeAll(userA.ID))
}
