package auth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"cortex/internal/domain/entity"
	"cortex/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// stateTTL bounds how long a user may sit on the provider consent page.
const stateTTL = 10 * time.Minute

type pendingState struct {
	userID    uuid.UUID
	provider  entity.Provider
	expiresAt time.Time
}

// memoryStateStore keeps OAuth CSRF state in process memory.
// Callbacks must land on the instance that issued the state.
type memoryStateStore struct {
	mu     sync.Mutex
	states map[string]pendingState
	now    func() time.Time
}

// NewStateStore creates the in-memory OAuth state store.
func NewStateStore() service.OAuthStateStore {
	return newStateStore(time.Now)
}

func newStateStore(now func() time.Time) *memoryStateStore {
	return &memoryStateStore{
		states: make(map[string]pendingState),
		now:    now,
	}
}

// Issue generates a random state bound to the user and provider.
func (s *memoryStateStore) Issue(userID uuid.UUID, provider entity.Provider) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate oauth state")
	}
	state := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupExpired()
	s.states[state] = pendingState{
		userID:    userID,
		provider:  provider,
		expiresAt: s.now().Add(stateTTL),
	}

	return state, nil
}

// Consume removes state whether or not it is still valid, so it can never be replayed.
func (s *memoryStateStore) Consume(state string) (uuid.UUID, entity.Provider, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, exists := s.states[state]
	if !exists {
		return uuid.Nil, "", false
	}
	delete(s.states, state)

	if s.now().After(pending.expiresAt) {
		return uuid.Nil, "", false
	}

	return pending.userID, pending.provider, true
}

func (s *memoryStateStore) cleanupExpired() {
	now := s.now()
	for state, pending := range s.states {
		if now.After(pending.expiresAt) {
			delete(s.states, state)
		}
	}
}
