package config

import (
	"fmt"
	"time"
)

// defaultClientDSN is used when no database DSN is configured: the journal
// lives in the working directory.
const defaultClientDSN = "daykeeper.db"

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the semantic version string of the running application.
	Version string
}

// ClientGate holds launch-gate handshake overrides used by the client
// transport layer. Zero values mean "use the built-in defaults".
type ClientGate struct {
	// EndpointURL overrides the built-in launch-gate endpoint.
	EndpointURL string
	// RequestTimeout overrides the launch-config fetch timeout.
	RequestTimeout time.Duration
	// ProbeTimeout overrides the destination reachability-check timeout.
	ProbeTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Gate contains launch-gate handshake overrides.
	Gate ClientGate
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = defaultClientDSN
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Gate: ClientGate{
			EndpointURL:    cfg.Gate.EndpointURL,
			RequestTimeout: cfg.Gate.RequestTimeout,
			ProbeTimeout:   cfg.Gate.ProbeTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: dsn,
			},
		},
	}

	return clientCfg, clientCfg.validate()
}
