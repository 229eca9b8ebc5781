// utils/auth.go
package utils

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator checks the shared admin credential. The viewer component
// only sees this interface, so the static check below can be swapped for
// real credential verification without touching it.
type Authenticator interface {
	Verify(credential string) bool
}

// StaticAuthenticator compares against a plaintext constant. This is the
// stock single-shop setup; it offers no lockout or rate limiting.
type StaticAuthenticator struct {
	Password string
}

func (a StaticAuthenticator) Verify(credential string) bool {
	return credential == a.Password
}

// BcryptAuthenticator compares against a bcrypt hash, for deployments that
// do not want the credential in the environment in the clear.
type BcryptAuthenticator struct {
	Hash string
}

func (a BcryptAuthenticator) Verify(credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Hash), []byte(credential)) == nil
}

// AuthenticatorFromEnv prefers ADMIN_PASSWORD_HASH, then ADMIN_PASSWORD,
// then the stock default.
func AuthenticatorFromEnv() Authenticator {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return BcryptAuthenticator{Hash: hash}
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	return StaticAuthenticator{Password: password}
}

// GenerateToken issues a JWT for an authenticated admin session.
func GenerateToken(subject string) (string, error) {
	expiryHours := 24 // default
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// Auth middleware
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header required"})
			return
		}

		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
			tokenString = tokenString[7:]
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("subject", claims["sub"])
		} else {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Next()
	}
}
