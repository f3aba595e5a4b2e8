package external

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

const defaultSessionTTL = 12 * time.Hour

// SessionStoreAdapter bridges generic CacheProvider to the SessionStore port.
// Values are JSON encoded under keys scoped to one session id.
type SessionStoreAdapter struct {
	cacheProvider ports.CacheProvider
	sessionID     string
	ttl           time.Duration
}

// SessionStoreParams holds parameters for creating the session store
type SessionStoreParams struct {
	Cache ports.CacheProvider
	// SessionID defaults to a random UUID
	SessionID string
	TTL       time.Duration
}

// NewSessionStoreAdapter creates a session store over a generic cache provider
func NewSessionStoreAdapter(params SessionStoreParams) (*SessionStoreAdapter, error) {
	if params.Cache == nil {
		return nil, errors.NewConfigurationError("session store requires a cache provider", nil)
	}

	sessionID := params.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	ttl := params.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &SessionStoreAdapter{
		cacheProvider: params.Cache,
		sessionID:     sessionID,
		ttl:           ttl,
	}, nil
}

// SessionID returns the id scoping this store's keys
func (s *SessionStoreAdapter) SessionID() string {
	return s.sessionID
}

func (s *SessionStoreAdapter) Load(ctx context.Context, key string, target interface{}) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("session key cannot be empty")
	}

	data, err := s.cacheProvider.Get(ctx, s.scopedKey(key))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return false, errors.NewParseError("failed to deserialize session value "+key, err)
	}
	return true, nil
}

func (s *SessionStoreAdapter) Store(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return errors.NewValidationError("session key cannot be empty")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewValidationError("failed to serialize session value " + key + ": " + err.Error())
	}

	return s.cacheProvider.Set(ctx, s.scopedKey(key), data, s.ttl)
}

func (s *SessionStoreAdapter) Remove(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("session key cannot be empty")
	}
	return s.cacheProvider.Delete(ctx, s.scopedKey(key))
}

func (s *SessionStoreAdapter) scopedKey(key string) string {
	return "session:" + s.sessionID + ":" + key
}
