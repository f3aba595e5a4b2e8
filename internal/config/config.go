package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"prayertimes.app/pkg/errors"
	"prayertimes.app/pkg/validation"
)

const (
	maxRedisDB           = 15
	maxCacheTTLMinutes   = 1440
	maxSessionTTLMinutes = 10080
	maxPortNumber        = 65535
	maxTimeoutSeconds    = 120
)

// Default fallback location (Sydney) used when the device position is unavailable
const (
	DefaultFallbackLatitude  = -33.8688
	DefaultFallbackLongitude = 151.2093
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Timings     TimingsConfig     `split_words:"true"`
	Geocoding   GeocodingConfig   `split_words:"true"`
	Geolocation GeolocationConfig `split_words:"true"`
	Location    LocationConfig    `split_words:"true"`
	Cache       CacheConfig       `split_words:"true"`
	Session     SessionConfig     `split_words:"true"`
	Logging     LoggingConfig     `split_words:"true"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"127.0.0.1"`
	Port int    `envconfig:"SERVER_PORT" default:"8080"`
}

// Addr returns the listen address for the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type TimingsConfig struct {
	BaseURL        string `envconfig:"TIMINGS_API_BASE_URL" default:"https://alislam.org"`
	TimeoutSeconds int    `envconfig:"TIMINGS_API_TIMEOUT" default:"10"`
}

type GeocodingConfig struct {
	BaseURL         string `envconfig:"GEOCODING_API_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	UserAgent       string `envconfig:"GEOCODING_USER_AGENT" default:"prayertimes.app/1.0"`
	TimeoutSeconds  int    `envconfig:"GEOCODING_API_TIMEOUT" default:"10"`
	EnableCache     bool   `envconfig:"GEOCODING_ENABLE_CACHE" default:"true"`
	CacheTTLMinutes int    `envconfig:"GEOCODING_CACHE_TTL_MINUTES" default:"60"`
}

// GeolocationProvider selects the platform geolocation capability
type GeolocationProvider int

const (
	GeolocationProviderUnknown GeolocationProvider = iota
	GeolocationProviderNone
	GeolocationProviderStatic
	GeolocationProviderIP
)

// String returns the string representation of the geolocation provider
func (g GeolocationProvider) String() string {
	switch g {
	case GeolocationProviderNone:
		return "none"
	case GeolocationProviderStatic:
		return "static"
	case GeolocationProviderIP:
		return "ip"
	default:
		return "unknown"
	}
}

// IsValid checks if the geolocation provider is valid
func (g GeolocationProvider) IsValid() bool {
	return g == GeolocationProviderNone || g == GeolocationProviderStatic || g == GeolocationProviderIP
}

// GeolocationProviderFromString converts string to GeolocationProvider enum
func GeolocationProviderFromString(s string) GeolocationProvider {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return GeolocationProviderNone
	case "static":
		return GeolocationProviderStatic
	case "ip":
		return GeolocationProviderIP
	default:
		return GeolocationProviderUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (g *GeolocationProvider) UnmarshalText(text []byte) error {
	*g = GeolocationProviderFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (g GeolocationProvider) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

type GeolocationConfig struct {
	Provider        GeolocationProvider `envconfig:"GEOLOCATION_PROVIDER" default:"ip"`
	IPBaseURL       string              `envconfig:"GEOLOCATION_IP_BASE_URL" default:"http://ip-api.com"`
	TimeoutSeconds  int                 `envconfig:"GEOLOCATION_TIMEOUT" default:"5"`
	DeviceLatitude  string              `envconfig:"GEOLOCATION_DEVICE_LATITUDE"`
	DeviceLongitude string              `envconfig:"GEOLOCATION_DEVICE_LONGITUDE"`
}

type LocationConfig struct {
	FallbackLatitude  float64 `envconfig:"LOCATION_FALLBACK_LATITUDE" default:"-33.8688"`
	FallbackLongitude float64 `envconfig:"LOCATION_FALLBACK_LONGITUDE" default:"151.2093"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type SessionConfig struct {
	TTLMinutes int `envconfig:"SESSION_TTL_MINUTES" default:"720"`
}

type LoggingConfig struct {
	Level                string `envconfig:"LOG_LEVEL" default:"info"`
	Format               string `envconfig:"LOG_FORMAT" default:"json"`
	EnableGatewayLogging bool   `envconfig:"GATEWAY_ENABLE_LOGGING" default:"true"`
	GatewayLogFilePath   string `envconfig:"GATEWAY_LOG_FILE_PATH" default:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Timings.Validate(); err != nil {
		return err
	}
	if err := c.Geocoding.Validate(); err != nil {
		return err
	}
	if err := c.Geolocation.Validate(); err != nil {
		return err
	}
	if err := c.Location.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func validateBaseURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

func validateTimeout(name string, seconds int) error {
	if seconds < 1 || seconds > maxTimeoutSeconds {
		return errors.NewConfigurationError(fmt.Sprintf("%s must be between 1 and %d seconds", name, maxTimeoutSeconds), nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if strings.TrimSpace(s.Host) == "" {
		return errors.NewConfigurationError("SERVER_HOST cannot be empty", nil)
	}
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (t *TimingsConfig) Validate() error {
	if err := validateBaseURL("TIMINGS_API_BASE_URL", t.BaseURL); err != nil {
		return err
	}
	return validateTimeout("TIMINGS_API_TIMEOUT", t.TimeoutSeconds)
}

func (g *GeocodingConfig) Validate() error {
	if err := validateBaseURL("GEOCODING_API_BASE_URL", g.BaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(g.UserAgent) == "" {
		return errors.NewConfigurationError("GEOCODING_USER_AGENT cannot be empty", nil)
	}
	if err := validateTimeout("GEOCODING_API_TIMEOUT", g.TimeoutSeconds); err != nil {
		return err
	}
	if g.EnableCache && (g.CacheTTLMinutes < 1 || g.CacheTTLMinutes > maxCacheTTLMinutes) {
		return errors.NewConfigurationError("GEOCODING_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}

func (g *GeolocationConfig) Validate() error {
	if !g.Provider.IsValid() {
		return errors.NewConfigurationError("GEOLOCATION_PROVIDER must be one of: none, static, ip", nil)
	}

	switch g.Provider {
	case GeolocationProviderIP:
		if err := validateBaseURL("GEOLOCATION_IP_BASE_URL", g.IPBaseURL); err != nil {
			return err
		}
		return validateTimeout("GEOLOCATION_TIMEOUT", g.TimeoutSeconds)
	case GeolocationProviderStatic:
		if _, _, ok := g.DevicePosition(); !ok {
			return errors.NewConfigurationError(
				"GEOLOCATION_DEVICE_LATITUDE and GEOLOCATION_DEVICE_LONGITUDE must be valid coordinates when GEOLOCATION_PROVIDER is static", nil)
		}
	}
	return nil
}

// DevicePosition parses the configured static device position
func (g GeolocationConfig) DevicePosition() (float64, float64, bool) {
	lat, latOK := validation.ParseNumber(g.DeviceLatitude)
	lng, lngOK := validation.ParseNumber(g.DeviceLongitude)
	if !latOK || !lngOK || !validation.IsValidLatitude(lat) || !validation.IsValidLongitude(lng) {
		return 0, 0, false
	}
	return lat, lng, true
}

func (l *LocationConfig) Validate() error {
	if !validation.IsValidLatitude(l.FallbackLatitude) {
		return errors.NewConfigurationError("LOCATION_FALLBACK_LATITUDE must be between -90 and 90", nil)
	}
	if !validation.IsValidLongitude(l.FallbackLongitude) {
		return errors.NewConfigurationError("LOCATION_FALLBACK_LONGITUDE must be between -180 and 180", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (s *SessionConfig) Validate() error {
	if s.TTLMinutes < 1 || s.TTLMinutes > maxSessionTTLMinutes {
		return errors.NewConfigurationError("SESSION_TTL_MINUTES must be between 1 and 10080 minutes", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	return nil
}
