package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"kittens-api/internal/config"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller passed explicitly into every
// mutating operation.
type Identity struct {
	UserID   int64
	Username string
}

type TokenPair struct {
	Access  string
	Refresh string
}

type claims struct {
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 access/refresh token pairs.
type Tokens struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokens(cfg config.AuthConfig) *Tokens {
	return &Tokens{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
}

func (t *Tokens) IssuePair(identity Identity) (TokenPair, error) {
	access, err := t.sign(identity, TokenTypeAccess, t.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := t.sign(identity, TokenTypeRefresh, t.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (t *Tokens) Refresh(refreshToken string) (string, Identity, error) {
	identity, err := t.parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", Identity{}, err
	}
	access, err := t.sign(identity, TokenTypeAccess, t.accessTTL)
	if err != nil {
		return "", Identity{}, err
	}
	return access, identity, nil
}

func (t *Tokens) ParseAccess(token string) (Identity, error) {
	return t.parse(token, TokenTypeAccess)
}

func (t *Tokens) sign(identity Identity, tokenType string, ttl time.Duration) (string, error) {
	if len(t.secret) == 0 {
		return "", errors.New("jwt secret is empty")
	}

	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username:  identity.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    t.issuer,
			Subject:   strconv.FormatInt(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (t *Tokens) parse(tokenStr, tokenType string) (Identity, error) {
	if len(t.secret) == 0 || tokenStr == "" {
		return Identity{}, ErrInvalidToken
	}

	var parsed claims
	tok, err := jwt.ParseWithClaims(tokenStr, &parsed, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	if parsed.TokenType != tokenType {
		return Identity{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parsed.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: userID, Username: parsed.Username}, nil
}
