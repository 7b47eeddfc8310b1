package config

import "time"

const (
	defaultVersion        = "1.0.0"
	defaultLogLevel       = "debug"
	defaultHTTPAddress    = "localhost:8000"
	defaultRequestTimeout = 30 * time.Second

	defaultAdapterAddress = "http://localhost:8000"
	defaultAdapterTimeout = 10 * time.Second
	defaultSmokeUsername  = "alice"
	defaultSmokePassword  = "password123"
)

// defaultConfig returns the values used for every field no source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  defaultVersion,
			LogLevel: defaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Smoke: Smoke{
			Username: defaultSmokeUsername,
			Password: defaultSmokePassword,
		},
	}
}
