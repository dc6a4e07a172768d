// Package services contains server-side business logic. This file implements
// AuthService, which owns the token-lifecycle protocol: issuing access and
// refresh token pairs, renewing access tokens, and revoking sessions.
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vkarpovs/crudboard/internal/common"
	"github.com/vkarpovs/crudboard/internal/password"
	"github.com/vkarpovs/crudboard/internal/server/auth"
	"github.com/vkarpovs/crudboard/internal/server/repositories/refreshtokens"
	"github.com/vkarpovs/crudboard/internal/server/repositories/users"
)

// dummyHash is a structurally valid bcrypt hash compared against when the
// email is unknown, so both authentication failure paths cost one bcrypt
// verification.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService orchestrates authentication and the refresh-token protocol.
// The refresh-token store is the authority on whether a session is still
// alive; the codec is the authority on signatures.
type AuthService struct {
	users  users.Repository
	tokens refreshtokens.Repository
	codec  *auth.Codec

	// now is a seam for tests that need to move the clock.
	now func() time.Time
}

// NewAuthService constructs an AuthService over the given collaborators.
func NewAuthService(u users.Repository, t refreshtokens.Repository, c *auth.Codec) *AuthService {
	return &AuthService{users: u, tokens: t, codec: c, now: time.Now}
}

// Authenticate verifies email/password credentials and returns the user id.
// Unknown email and wrong password fail identically with
// common.ErrorUnauthorized so callers cannot enumerate accounts.
func (s *AuthService) Authenticate(ctx context.Context, email, rawPassword string) (int64, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			password.Verify(rawPassword, dummyHash)
			return 0, common.ErrorUnauthorized
		}
		return 0, common.ErrorInternal
	}

	if !password.Verify(rawPassword, user.PasswordHash) {
		return 0, common.ErrorUnauthorized
	}

	return user.ID, nil
}

// Login issues a fresh access/refresh pair for userID. Exactly one
// refresh-token record is persisted per successful call; its identifier is
// embedded in the refresh token as the jti claim, and both tokens are based
// on the same issue time.
func (s *AuthService) Login(ctx context.Context, userID int64) (*TokenPair, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	now := s.now()
	subject := strconv.FormatInt(user.ID, 10)

	tokenID, err := s.tokens.Create(ctx, user.ID, now)
	if err != nil {
		return nil, fmt.Errorf("creating refresh token record: %w", err)
	}

	refresh, err := s.codec.IssueRefreshToken(subject, tokenID, now)
	if err != nil {
		return nil, common.ErrorInternal
	}

	access, err := s.codec.IssueAccessToken(subject, now)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RenewAccessToken validates a refresh token and mints a new access token
// for its subject. The refresh token itself is not rotated; it stays valid
// until its own expiration or an explicit Revoke.
func (s *AuthService) RenewAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	access, err := s.codec.IssueAccessToken(claims.Subject, s.now())
	if err != nil {
		return "", common.ErrorInternal
	}

	return access, nil
}

// ValidateRefreshToken runs the full refresh validation sequence and returns
// the token's claims when it is still good. Checks are ordered: signature
// first (cheapest, rejects tampering), then jti extraction, then the store
// lookup (the authority on terminated sessions), expiration last. Any
// protocol failure yields common.ErrInvalidRefreshToken.
func (s *AuthService) ValidateRefreshToken(ctx context.Context, refreshToken string) (*jwt.RegisteredClaims, error) {
	claims, err := s.codec.ParseAndVerify(refreshToken)
	if err != nil {
		return nil, common.ErrInvalidRefreshToken
	}

	if claims.ID == "" {
		return nil, common.ErrInvalidRefreshToken
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, common.ErrInvalidRefreshToken
	}

	exists, err := s.tokens.Exists(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("checking refresh token record: %w", err)
	}
	if !exists {
		// Covers both revoked and never-issued tokens.
		return nil, common.ErrInvalidRefreshToken
	}

	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(s.now()) {
		return nil, common.ErrInvalidRefreshToken
	}

	return claims, nil
}

// ValidateAccessToken reports whether the access token has a valid signature
// and an expiration in the future. Access tokens are stateless: no store
// lookup happens here, so revoking a refresh token does not retroactively
// invalidate access tokens already issued.
func (s *AuthService) ValidateAccessToken(token string) bool {
	claims, err := s.codec.ParseAndVerify(token)
	if err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Time.After(s.now())
}

// AccessTokenSubject validates an access token the same way
// ValidateAccessToken does and returns the user id from its subject claim.
// Any failure yields common.ErrInvalidToken.
func (s *AuthService) AccessTokenSubject(token string) (int64, error) {
	claims, err := s.codec.ParseAndVerify(token)
	if err != nil {
		return 0, common.ErrInvalidToken
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(s.now()) {
		return 0, common.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	return userID, nil
}

// Revoke terminates the session behind a refresh token by deleting its
// store record. The deletion is idempotent; a token whose record is already
// gone revokes cleanly. Already-issued access tokens are not affected.
func (s *AuthService) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := s.codec.ParseAndVerify(refreshToken)
	if err != nil {
		return common.ErrInvalidRefreshToken
	}

	if claims.ID == "" {
		return common.ErrInvalidRefreshToken
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return common.ErrInvalidRefreshToken
	}

	if err := s.tokens.Delete(ctx, tokenID); err != nil {
		return fmt.Errorf("deleting refresh token record: %w", err)
	}

	return nil
}
