package sessions

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionTTL is how long a session lives without activity. Reads refresh it.
const SessionTTL = 12 * time.Hour

// ErrSessionNotFound is returned when a session ID does not resolve to a live
// session, either because it never existed or because it expired.
var ErrSessionNotFound = errors.New("session not found")

// Data is the server-side state associated with a logged-in user. The client
// only ever holds the opaque session ID.
type Data struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// Store defines the interface for session persistence.
type Store interface {
	Create(ctx context.Context, data Data) (string, error)
	Get(ctx context.Context, sessionID string) (*Data, error)
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Used when no Redis address is
// configured; sessions do not survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Create(ctx context.Context, data Data) (string, error) {
	sessionID := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = memoryEntry{data: data, expiresAt: time.Now().Add(SessionTTL)}
	return sessionID, nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return nil, ErrSessionNotFound
	}

	// Sliding expiry: any authenticated request keeps the session alive.
	entry.expiresAt = time.Now().Add(SessionTTL)
	s.entries[sessionID] = entry

	data := entry.data
	return &data, nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}
