// Package auth provides JWT issuance and password hashing.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appauth "hostelhub/internal/application/auth"
	"hostelhub/internal/shared/biztime"
	"hostelhub/internal/shared/config"
)

type tokenType string

const (
	tokenTypeAccess  tokenType = "access"
	tokenTypeRefresh tokenType = "refresh"
)

type claims struct {
	Role      string    `json:"role"`
	TokenType tokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTService signs and validates HS256 access/refresh token pairs. The user
// ID travels in the registered subject claim.
type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secret:           []byte(cfg.Secret),
		accessExpMinutes: cfg.AccessExpMinutes,
		refreshExpDays:   cfg.RefreshExpDays,
	}
}

func (s *JWTService) GenerateTokenPair(userID uint, role string) (*appauth.TokenPair, error) {
	now := biztime.NowUTC()
	subject := strconv.FormatUint(uint64(userID), 10)

	accessToken, err := s.sign(subject, role, tokenTypeAccess, now,
		now.Add(time.Duration(s.accessExpMinutes)*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := s.sign(subject, role, tokenTypeRefresh, now,
		now.Add(time.Duration(s.refreshExpDays)*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &appauth.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

func (s *JWTService) ValidateAccessToken(token string) (uint, string, error) {
	return s.validate(token, tokenTypeAccess)
}

func (s *JWTService) ValidateRefreshToken(token string) (uint, string, error) {
	return s.validate(token, tokenTypeRefresh)
}

func (s *JWTService) sign(subject, role string, typ tokenType, issuedAt, expiresAt time.Time) (string, error) {
	c := &claims{
		Role:      role,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *JWTService) validate(tokenString string, expected tokenType) (uint, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to parse token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid token")
	}
	if c.TokenType != expected {
		return 0, "", fmt.Errorf("unexpected token type: %s", c.TokenType)
	}

	userID, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid token subject: %w", err)
	}

	return uint(userID), c.Role, nil
}
