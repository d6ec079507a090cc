package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tmori/task-manager-api/internal/models"
	"github.com/tmori/task-manager-api/internal/repository"
	"github.com/tmori/task-manager-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMiddlewareTest(t *testing.T) (*gorm.DB, *services.TokenService) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.AccessToken{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, services.NewTokenService(repository.NewTokenRepository(db))
}

func protectedRouter(tokens *services.TokenService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id in context"})
			return
		}
		user, ok := GetUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": user.Email})
	})
	return r
}

func TestRequireAuth_ValidToken(t *testing.T) {
	db, tokens := setupMiddlewareTest(t)

	user := models.User{Name: "John", Email: "john@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	plaintext, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	r := protectedRouter(tokens)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+plaintext)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "john@example.com")
}

func TestRequireAuth_Rejections(t *testing.T) {
	_, tokens := setupMiddlewareTest(t)
	r := protectedRouter(tokens)

	cases := map[string]string{
		"missing header":  "",
		"wrong scheme":    "Basic am9objpzZWNyZXQ=",
		"empty token":     "Bearer ",
		"unknown token":   "Bearer deadbeefdeadbeefdeadbeefdeadbeef",
		"no bearer space": "Bearertoken",
	}

	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestRequireAuth_RevokedToken(t *testing.T) {
	db, tokens := setupMiddlewareTest(t)

	user := models.User{Name: "John", Email: "john@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	plaintext, err := tokens.Issue(user.ID)
	require.NoError(t, err)
	require.NoError(t, tokens.RevokeAll(user.ID))

	r := protectedRouter(tokens)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+plaintext)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
