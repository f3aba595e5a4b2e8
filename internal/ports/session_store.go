package ports

import "context"

// Fixed keys used by the settings flow
const (
	SessionKeySettings = "settings"
	SessionKeyTheme    = "theme"
)

// SessionStore defines session-scoped key/value persistence with JSON values
type SessionStore interface {
	// Load decodes the value stored under key into target and reports whether it was present
	Load(ctx context.Context, key string, target interface{}) (bool, error)
	Store(ctx context.Context, key string, value interface{}) error
	Remove(ctx context.Context, key string) error
}
