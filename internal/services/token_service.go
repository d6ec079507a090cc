package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/tmori/task-manager-api/internal/constants"
	"github.com/tmori/task-manager-api/internal/models"
	"github.com/tmori/task-manager-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidToken        = errors.New("invalid or revoked token")
	ErrFailedToIssueToken  = errors.New("failed to issue token")
	ErrFailedToRevokeToken = errors.New("failed to revoke tokens")
)

// TokenService issues and revokes opaque bearer tokens. The plaintext is
// random hex with no embedded structure; only its SHA-256 digest is stored,
// so a leaked table does not leak usable credentials.
type TokenService struct {
	tokenRepo repository.TokenRepository
}

// NewTokenService creates a new TokenService.
func NewTokenService(tokenRepo repository.TokenRepository) *TokenService {
	return &TokenService{
		tokenRepo: tokenRepo,
	}
}

// Issue generates a new token for the user and returns the plaintext. The
// plaintext is returned exactly once and cannot be recovered later.
func (s *TokenService) Issue(userID uint64) (string, error) {
	buf := make([]byte, constants.TokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToIssueToken, err)
	}
	plaintext := hex.EncodeToString(buf)

	token := &models.AccessToken{
		UserID:    userID,
		TokenHash: hashToken(plaintext),
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToIssueToken, err)
	}

	return plaintext, nil
}

// Resolve maps a presented token back to its user. Unknown and revoked
// tokens are indistinguishable.
func (s *TokenService) Resolve(plaintext string) (*models.User, error) {
	if plaintext == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.tokenRepo.FindUserByHash(hashToken(plaintext))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	return user, nil
}

// RevokeAll deletes every token belonging to the user. Revoking a user with
// no live tokens is a no-op.
func (s *TokenService) RevokeAll(userID uint64) error {
	if err := s.tokenRepo.DeleteByUser(userID); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToRevokeToken, err)
	}
	return nil
}

func hashToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
