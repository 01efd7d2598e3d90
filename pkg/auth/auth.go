package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

type UserKey struct{}

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidHeader  = errors.New("authorization format must be Bearer {token}")
	ErrUnknownAccount = errors.New("user not found")
)

type UserRepository interface {
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

type Manager struct {
	conf   configs.Auth
	repo   UserRepository
	logger *zap.Logger
}

func NewAuthManager(conf configs.Auth, repo UserRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// UserFromContext returns the authenticated caller, or nil for anonymous requests.
func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey{}).(*model.User)

	return user
}

// Middleware resolves the bearer token of a request into a user. Requests
// without an Authorization header continue anonymously; a header that does
// not resolve to a user is rejected with 401.
func (a *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)

			return
		}

		user, err := a.Authenticate(r.Context(), r.Header)
		if err != nil {
			status := http.StatusUnauthorized
			if !errors.Is(err, ErrInvalidToken) && !errors.Is(err, ErrInvalidHeader) && !errors.Is(err, ErrUnknownAccount) {
				status = http.StatusInternalServerError
			}

			writeError(w, status, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserKey{}, user)))
	})
}

// Authenticate validates the bearer token in header and loads its user by the email claim.
func (a *Manager) Authenticate(ctx context.Context, header http.Header) (*model.User, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	accessToken, err := extractTokenFromHeader(header)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Warn("error parsing token", zap.Error(err))

		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err.Error())
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Warn("invalid token", zap.Any("claims", claims))

		return nil, ErrInvalidToken
	}

	if a.conf.Audience != "" && !claims.VerifyAudience(a.conf.Audience, true) {
		a.logger.Warn("token audience mismatch", zap.Any("aud", claims["aud"]))

		return nil, fmt.Errorf("%w: audience mismatch", ErrInvalidToken)
	}

	email, found := claims["email"].(string)
	if !found || email == "" {
		a.logger.Warn("unable to get email from token", zap.Any("claims", claims))

		return nil, fmt.Errorf("%w: no email claim", ErrInvalidToken)
	}

	user, err := a.repo.GetUserFromEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUnknownAccount
		}

		a.logger.Error("error authenticating user", zap.Error(err))

		return nil, fmt.Errorf("error authenticating user: %w", err)
	}

	return user, nil
}

// IssueToken signs an HS256 token for user that expires after ttl.
func (a *Manager) IssueToken(user *model.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": user.Email,
		"sub":   user.UUID.String(),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	if a.conf.Audience != "" {
		claims["aud"] = a.conf.Audience
	}

	if a.conf.Domain != "" {
		claims["iss"] = a.conf.Domain
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.conf.SecretKey))
}

func extractTokenFromHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found || token == "" {
		return "", ErrInvalidHeader
	}

	return token, nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"errors": err.Error()})
}
