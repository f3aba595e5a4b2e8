package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Remote gateways
	TimingsGateway   TimingsGateway
	GeocodingGateway GeocodingGateway

	// Platform capabilities
	Geolocator       Geolocator
	TimezoneDetector TimezoneDetector

	// Session persistence
	SessionStore SessionStore
	CacheStats   CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
}
