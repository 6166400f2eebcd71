// Package session issues and validates admin bearer tokens.
//
// A session lives under session:<token> and dies only by TTL expiry; there is
// no server-side revocation, logging out just means the client drops its token.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/store"
)

const (
	// TTL is the lifetime of every session.
	TTL = 24 * time.Hour

	tokenBytes = 32
)

// Store handles session persistence on top of a store.KV
type Store struct {
	kv     store.KV
	logger logger.Logger
	now    func() time.Time
}

// NewStore creates a session store. now defaults to time.Now.
func NewStore(kv store.KV, log logger.Logger, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		kv:     kv,
		logger: log,
		now:    now,
	}
}

// Create issues a new token for userID.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("%w: generate token: %w", domain.ErrStorage, err)
	}

	data, err := json.Marshal(domain.Session{UserID: userID, CreatedAt: s.now().UTC()})
	if err != nil {
		return "", fmt.Errorf("%w: marshal session: %w", domain.ErrStorage, err)
	}

	if err := s.kv.Put(ctx, store.SessionKey(token), string(data), TTL); err != nil {
		return "", fmt.Errorf("%w: save session: %w", domain.ErrStorage, err)
	}
	return token, nil
}

// Validate resolves token to its session.
// Unknown, expired, malformed and undecodable tokens all yield domain.ErrUnauthorized.
func (s *Store) Validate(ctx context.Context, token string) (domain.Session, error) {
	if !wellFormed(token) {
		return domain.Session{}, domain.ErrUnauthorized
	}

	raw, err := s.kv.Get(ctx, store.SessionKey(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, domain.ErrUnauthorized
		}
		return domain.Session{}, fmt.Errorf("%w: lookup session: %w", domain.ErrStorage, err)
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil || sess.UserID == "" {
		s.logger.Warn("discarding undecodable session value", logger.Error(err))
		return domain.Session{}, domain.ErrUnauthorized
	}
	return sess, nil
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// wellFormed rejects anything that cannot be a token we issued, so garbage
// never reaches the store.
func wellFormed(token string) bool {
	if len(token) != tokenBytes*2 {
		return false
	}
	_, err := hex.DecodeString(token)
	return err == nil
}
