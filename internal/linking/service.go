package linking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrTokenNotFound		= errors.New("link token not found or expired")
	ErrTokenAlreadyUsed		= errors.New("link token has already been used")
	ErrFailedToGenerateToken	= errors.New("failed to generate link token")
	ErrNotLinked			= errors.New("telegram account is not linked")
)

const (
	linkTokenTTL		= 10 * time.Minute
	linkTokenLengthBytes	= 16
)

type LinkTokenInfo struct {
	UserID		string
	ExpiresAt	time.Time
	Used		bool
}

// Service issues one-time tokens that bind a Telegram account to a journal user
// and remembers the resulting links.
type Service struct {
	mu	sync.RWMutex
	tokens	map[string]LinkTokenInfo
	links	map[int64]string
	now	func() time.Time
}

func NewService() *Service {
	return &Service{
		tokens:	make(map[string]LinkTokenInfo),
		links:	make(map[int64]string),
		now:	time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GenerateLinkToken(userID string) (string, error) {
	bytes := make([]byte, linkTokenLengthBytes)
	if _, err := rand.Read(bytes); err != nil {
		logrus.Errorf("Failed to read random bytes for link token: %v", err)
		return "", ErrFailedToGenerateToken
	}
	token := hex.EncodeToString(bytes)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = LinkTokenInfo{
		UserID:		userID,
		ExpiresAt:	s.now().Add(linkTokenTTL),
	}
	logrus.Debugf("Generated link token for user %s, expires at %v", userID, s.tokens[token].ExpiresAt)
	return token, nil
}

func (s *Service) ValidateAndUseLinkToken(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, exists := s.tokens[token]
	if !exists {
		logrus.Warn("Attempt to use an unknown link token")
		return "", ErrTokenNotFound
	}

	if s.now().After(info.ExpiresAt) {
		logrus.Warnf("Attempt to use a link token that expired at %v", info.ExpiresAt)
		delete(s.tokens, token)
		return "", ErrTokenNotFound
	}

	if info.Used {
		logrus.Warnf("Attempt to reuse a link token for user %s", info.UserID)
		return "", ErrTokenAlreadyUsed
	}

	info.Used = true
	s.tokens[token] = info

	logrus.Infof("Link token used for user %s", info.UserID)
	return info.UserID, nil
}

// LinkTelegram consumes token and binds telegramID to the token's user.
func (s *Service) LinkTelegram(token string, telegramID int64) (string, error) {
	userID, err := s.ValidateAndUseLinkToken(token)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.links[telegramID] = userID
	s.mu.Unlock()

	logrus.Infof("Linked telegram account %d to user %s", telegramID, userID)
	return userID, nil
}

func (s *Service) UserForTelegram(telegramID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.links[telegramID]
	if !ok {
		return "", ErrNotLinked
	}
	return userID, nil
}

// StartCleanup drops expired and used tokens until ctx is done.
func (s *Service) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(linkTokenTTL / 2)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.cleanupExpiredTokens()
			}
		}
	}()
}

func (s *Service) cleanupExpiredTokens() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, info := range s.tokens {
		if now.After(info.ExpiresAt) || info.Used {
			delete(s.tokens, token)
			removed++
		}
	}
	if removed > 0 {
		logrus.Debugf("Removed %d stale link tokens", removed)
	}
	return removed
}
