package ports

import "time"

// ServerConfig represents server configuration
type ServerConfig struct {
	Host string
	Port int
}

// LocationConfig represents the fallback location used when geolocation is unavailable
type LocationConfig struct {
	Fallback Coordinates
}

// GeocodingConfig represents geocoding gateway configuration
type GeocodingConfig struct {
	BaseURL     string
	EnableCache bool
	CacheTTL    time.Duration
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// SessionConfig represents session store configuration
type SessionConfig struct {
	TTL time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetLocationConfig() LocationConfig
	GetGeocodingConfig() GeocodingConfig
	GetCacheConfig() CacheConfig
	GetSessionConfig() SessionConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCycle(outcome string, duration time.Duration)
	RecordGatewayCall(gateway string, success bool, duration time.Duration)
	RecordCacheHit(cache string)
	RecordCacheMiss(cache string)
}
