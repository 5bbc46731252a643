package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/models"
)

// Verification failures. All of them surface to clients as a generic 401;
// the split exists for callers and tests.
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrUnknownSubject = errors.New("unknown subject")
)

// Claims are the payload of an issued token. The subject is the user's
// email; Role rides along for display purposes only.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens. It is constructed
// from AuthConfig at startup; there is no package-level secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{secret: cfg.Secret, ttl: cfg.TokenTTL}
}

// Generate signs a token for the user, valid from now until now+TTL.
func (s *TokenService) Generate(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and checks a token string. Expiry is a strict comparison
// against the current time; no leeway is granted.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResolveUser maps verified claims back to the stored user record.
func (s *TokenService) ResolveUser(claims *Claims) (models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", claims.Subject).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUnknownSubject
	}
	return user, err
}

// unexported type prevents collisions in context
type ctxKey int

const (
	claimsKey ctxKey = iota
	userKey
)

// Middleware validates the bearer token, resolves the user and stashes
// both in the request context. Any failure yields 401 with a
// WWW-Authenticate hint and a deliberately generic body.
func (s *TokenService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		parts := strings.SplitN(auth, " ", 2)
		if auth == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			unauthorized(w, "Not authenticated")
			return
		}

		claims, err := s.Verify(parts[1])
		if err != nil {
			unauthorized(w, "Could not validate credentials")
			return
		}

		user, err := s.ResolveUser(claims)
		if err != nil {
			unauthorized(w, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		ctx = context.WithValue(ctx, userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

// GetClaims pulls the *Claims out of the request context (or nil).
func GetClaims(r *http.Request) *Claims {
	if c, ok := r.Context().Value(claimsKey).(*Claims); ok {
		return c
	}
	return nil
}

// GetUser returns the authenticated user stored by Middleware.
func GetUser(r *http.Request) models.User {
	if u, ok := r.Context().Value(userKey).(models.User); ok {
		return u
	}
	return models.User{}
}
