package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/flaviorefit/projetos/internal/config"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password.
// The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the configured operator accounts and manages the
// token lifecycle. There is no user table: accounts come from configuration,
// refresh tokens live in Redis so they can be rotated and revoked.
type AuthService struct {
	users map[string]config.AuthUser
	rdb   *redis.Client
	cfg   config.JWTConfig
}

func NewAuthService(users []config.AuthUser, rdb *redis.Client, cfg config.JWTConfig) *AuthService {
	byName := make(map[string]config.AuthUser, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &AuthService{users: byName, rdb: rdb, cfg: cfg}
}

// TokenPair is the login/refresh response.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UserProfile is the authenticated identity exposed to handlers.
type UserProfile struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Login checks the password against the account's bcrypt hash and issues a
// token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (*UserProfile, *TokenPair, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return &UserProfile{Username: user.Username, Name: user.Name, Role: user.Role}, pair, nil
}

// RefreshToken rotates a refresh token: validate, drop the old jti, issue a
// fresh pair.
func (s *AuthService) RefreshToken(ctx context.Context, refreshTokenString string) (*TokenPair, error) {
	token, err := jwt.Parse(refreshTokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims["type"] != "refresh" {
		return nil, errors.New("invalid token type")
	}

	jti, _ := claims["jti"].(string)
	sub, _ := claims["sub"].(string)

	// Without Redis there is no revocation list; the signature and expiry
	// above are then the whole check.
	if s.rdb != nil {
		username, err := s.rdb.Get(ctx, refreshKey(jti)).Result()
		if err != nil {
			return nil, errors.New("refresh token expired or invalid")
		}
		sub = username
		s.rdb.Del(ctx, refreshKey(jti))
	}

	user, ok := s.users[sub]
	if !ok {
		return nil, errors.New("account no longer exists")
	}

	return s.generateTokenPair(ctx, user)
}

// Logout revokes the refresh token. The access token simply runs out.
func (s *AuthService) Logout(ctx context.Context, refreshTokenString string) error {
	if s.rdb == nil {
		return nil
	}

	token, err := jwt.Parse(refreshTokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		// Already unusable; nothing to revoke.
		return nil
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if jti, ok := claims["jti"].(string); ok {
			s.rdb.Del(ctx, refreshKey(jti))
		}
	}
	return nil
}

// CurrentUser resolves the authenticated username back to its profile.
func (s *AuthService) CurrentUser(username string) (*UserProfile, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, errors.New("account no longer exists")
	}
	return &UserProfile{Username: user.Username, Name: user.Name, Role: user.Role}, nil
}

func (s *AuthService) generateTokenPair(ctx context.Context, user config.AuthUser) (*TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"sub":  user.Username,
		"uid":  user.Username,
		"name": user.Name,
		"role": user.Role,
		"iss":  s.cfg.Issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.AccessTokenExpire).Unix(),
		"jti":  uuid.New().String(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshJti := uuid.New().String()
	refreshClaims := jwt.MapClaims{
		"sub":  user.Username,
		"type": "refresh",
		"iss":  s.cfg.Issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.RefreshTokenExpire).Unix(),
		"jti":  refreshJti,
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	if s.rdb != nil {
		s.rdb.Set(ctx, refreshKey(refreshJti), user.Username, s.cfg.RefreshTokenExpire)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.AccessTokenExpire.Seconds()),
	}, nil
}

func refreshKey(jti string) string {
	return "token:refresh:" + jti
}
