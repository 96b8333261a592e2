package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/pkg/contextx"
	"berry_buddy/pkg/logx"
)

const (
	userCacheTTL     = time.Minute
	userCacheCleanup = 5 * time.Minute
)

var (
	ErrNoToken       = errors.New("no bearer token")
	ErrNotConfigured = errors.New("token resolution is not configured")
)

// OTPProvider runs the passwordless email flow of the hosted auth service.
type OTPProvider interface {
	SendOTP(ctx context.Context, email string, createUser bool) error
	VerifyOTP(ctx context.Context, email, token string) (entity.AuthResult, error)
}

// UserProvider resolves an access token to its user.
type UserProvider interface {
	GetUser(ctx context.Context, accessToken string) (contextx.User, error)
}

type Service struct {
	otp       OTPProvider
	users     UserProvider
	jwtSecret []byte
	cache     *cache.Cache
}

// NewService builds the auth service. Tokens are verified locally when
// jwtSecret is set and looked up through users otherwise; users may be nil
// when only local verification is wanted.
func NewService(otp OTPProvider, users UserProvider, jwtSecret string) *Service {
	s := &Service{
		otp:   otp,
		users: users,
		cache: cache.New(userCacheTTL, userCacheCleanup),
	}

	if jwtSecret != "" {
		s.jwtSecret = []byte(jwtSecret)
	}

	return s
}

// StartOTP sends a one-time code to email. Unknown emails get an account
// unless createIfMissing is explicitly false.
func (s *Service) StartOTP(ctx context.Context, email string, createIfMissing *bool) error {
	createUser := createIfMissing == nil || *createIfMissing

	if err := s.otp.SendOTP(ctx, email, createUser); err != nil {
		return fmt.Errorf("otp.SendOTP: %w", err)
	}

	logger(ctx).Info("otp sent", slog.Bool("create-user", createUser))

	return nil
}

func (s *Service) VerifyOTP(ctx context.Context, email, token string) (entity.AuthResult, error) {
	result, err := s.otp.VerifyOTP(ctx, email, token)
	if err != nil {
		return entity.AuthResult{}, fmt.Errorf("otp.VerifyOTP: %w", err)
	}

	return result, nil
}

// ResolveUser maps a bearer token to its user. Results are cached per token
// for a minute, or until the token expires if that comes first.
func (s *Service) ResolveUser(ctx context.Context, token string) (contextx.User, error) {
	if token == "" {
		return contextx.User{}, ErrNoToken
	}

	if cached, ok := s.cache.Get(token); ok {
		return cached.(contextx.User), nil //nolint:forcetypeassert
	}

	user, err := s.resolve(ctx, token)
	if err != nil {
		return contextx.User{}, err
	}

	if ttl := cacheTTL(token); ttl > 0 {
		s.cache.Set(token, user, ttl)
	}

	logger(ctx).Debug("user resolved", slog.String(logx.FieldUserID, user.ID.String()))

	return user, nil
}

func (s *Service) resolve(ctx context.Context, token string) (contextx.User, error) {
	if s.jwtSecret != nil {
		return s.verifyLocally(token)
	}

	if s.users == nil {
		return contextx.User{}, ErrNotConfigured
	}

	user, err := s.users.GetUser(ctx, token)
	if err != nil {
		return contextx.User{}, fmt.Errorf("users.GetUser: %w", err)
	}

	return user, nil
}

func (s *Service) verifyLocally(raw string) (contextx.User, error) {
	token, err := jwt.Parse(
		raw,
		func(*jwt.Token) (any, error) { return s.jwtSecret, nil },
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return contextx.User{}, fmt.Errorf("jwt.Parse: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return contextx.User{}, errors.New("unexpected claims type")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return contextx.User{}, errors.New("token has no subject")
	}

	email, _ := claims["email"].(string)

	return contextx.User{ID: contextx.UserID(sub), Email: email}, nil
}

// cacheTTL caps userCacheTTL at the token's exp claim. Tokens that are not
// JWTs or carry no exp keep the default.
func cacheTTL(raw string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return userCacheTTL
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return userCacheTTL
	}

	return min(userCacheTTL, time.Until(exp.Time))
}
