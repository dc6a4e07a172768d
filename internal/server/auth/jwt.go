// Package auth implements the signed-token codec. Tokens are compact HS256
// JWTs carrying the registered claims sub, iat, exp and, for refresh tokens,
// jti. The codec only verifies signatures and structure; expiration is a
// claim the caller must check after parsing.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vkarpovs/crudboard/internal/common"
)

// Codec signs and parses access and refresh tokens. The HMAC key is derived
// once from the configured secret; a Codec is immutable and safe for
// concurrent use.
type Codec struct {
	key        []byte
	parser     *jwt.Parser
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewCodec builds a Codec from the process-wide secret and the configured
// token lifetimes.
func NewCodec(secret string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		key: []byte(secret),
		// Expiration is deliberately left to callers: a refresh token must
		// be checked against the store before its exp claim matters.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken signs an access token for subject with exp = issuedAt
// plus the access TTL. Timestamps are truncated to second precision.
func (c *Codec) IssueAccessToken(subject string, issuedAt time.Time) (string, error) {
	return c.sign(jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.accessTTL)),
	})
}

// IssueRefreshToken signs a refresh token for subject embedding tokenID as
// the jti claim, with exp = issuedAt plus the refresh TTL.
func (c *Codec) IssueRefreshToken(subject string, tokenID uuid.UUID, issuedAt time.Time) (string, error) {
	return c.sign(jwt.RegisteredClaims{
		Subject:   subject,
		ID:        tokenID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.refreshTTL)),
	})
}

// ParseAndVerify checks the signature and structural well-formedness of
// tokenString and returns its claims. Malformed tokens, signature
// mismatches, and unsupported algorithms all yield common.ErrInvalidToken.
// Expired tokens parse successfully; callers must check ExpiresAt.
func (c *Codec) ParseAndVerify(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := c.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

func (c *Codec) sign(claims jwt.RegisteredClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}
