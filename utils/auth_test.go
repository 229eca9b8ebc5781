package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticAuthenticator(t *testing.T) {
	auth := StaticAuthenticator{Password: "admin123"}
	assert.True(t, auth.Verify("admin123"))
	assert.False(t, auth.Verify("wrong"))
	assert.False(t, auth.Verify(""))
}

func TestBcryptAuthenticator(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	auth := BcryptAuthenticator{Hash: string(hash)}
	assert.True(t, auth.Verify("s3cret"))
	assert.False(t, auth.Verify("admin123"))
}

func TestAuthenticatorFromEnv(t *testing.T) {
	t.Run("DefaultPassword", func(t *testing.T) {
		t.Setenv("ADMIN_PASSWORD", "")
		t.Setenv("ADMIN_PASSWORD_HASH", "")
		assert.True(t, AuthenticatorFromEnv().Verify("admin123"))
	})

	t.Run("ExplicitPassword", func(t *testing.T) {
		t.Setenv("ADMIN_PASSWORD", "other")
		t.Setenv("ADMIN_PASSWORD_HASH", "")
		auth := AuthenticatorFromEnv()
		assert.True(t, auth.Verify("other"))
		assert.False(t, auth.Verify("admin123"))
	})

	t.Run("HashWins", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("hashed"), bcrypt.MinCost)
		require.NoError(t, err)
		t.Setenv("ADMIN_PASSWORD", "other")
		t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
		auth := AuthenticatorFromEnv()
		assert.True(t, auth.Verify("hashed"))
		assert.False(t, auth.Verify("other"))
	})
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateToken("admin")
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString("subject")})
	})

	t.Run("MissingHeader", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := GenerateToken("admin")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
