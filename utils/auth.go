// utils/auth.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Context keys set by AuthMiddleware.
const (
	ContextAccountID = "accountId"
	ContextRole      = "role"
)

// TokenCookie is the cookie name the login handler sets.
const TokenCookie = "token"

// BcryptCost is the work factor used by HashPassword. Tests lower it.
var BcryptCost = 14

// Generate JWT secret key (used when none is configured in debug mode)
func GenerateJWTSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate JWT secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

func NewTokenIssuer(secret string, expiry time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), expiry: expiry}, nil
}

// Expiry is the lifetime of issued tokens.
func (ti *TokenIssuer) Expiry() time.Duration {
	return ti.expiry
}

// Generate JWT token
func (ti *TokenIssuer) Generate(accountID, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  accountID,
		"role": role,
		"exp":  now.Add(ti.expiry).Unix(),
		"iat":  now.Unix(),
	})
	return token.SignedString(ti.secret)
}

// Parse validates tokenString and returns the subject and role claims.
func (ti *TokenIssuer) Parse(tokenString string) (accountID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return ti.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}
	accountID, _ = claims["sub"].(string)
	role, _ = claims["role"].(string)
	if accountID == "" || role == "" {
		return "", "", errors.New("invalid token claims")
	}
	return accountID, role, nil
}

// Auth middleware. The token is taken from the Authorization header, or
// from the session cookie when the header is absent.
func AuthMiddleware(ti *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			tokenString, _ = c.Cookie(TokenCookie)
		}
		if tokenString == "" {
			RespondWithError(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
			tokenString = tokenString[7:]
		}

		accountID, role, err := ti.Parse(tokenString)
		if err != nil {
			RespondWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(ContextAccountID, accountID)
		c.Set(ContextRole, role)
		c.Next()
	}
}
