package config

import (
	"fmt"
	"time"
)

const (
	DefaultHTTPAddress          = ":8080"
	DefaultServerDSN            = "babynumtime.db"
	DefaultServerRequestTimeout = 30 * time.Second
)

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	// DB holds the record store connection settings. A postgres:// DSN opens
	// PostgreSQL; anything else is treated as an SQLite file path.
	DB DB
}

// ServerConfig is the server-specific configuration view assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains application-level settings.
	App App
	// Server contains listen address and timeouts.
	Server Server
	// Storage contains record store settings.
	Storage ServerStorage
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration, filling defaults for anything unset.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: ServerStorage{DB: cfg.Storage.DB},
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if serverCfg.Server.RequestTimeout <= 0 {
		serverCfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if serverCfg.Storage.DB.DSN == "" {
		serverCfg.Storage.DB.DSN = DefaultServerDSN
	}

	return serverCfg, serverCfg.validate()
}
