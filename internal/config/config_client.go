package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Defaults applied by GetClientConfig when the merged config leaves a field
// empty. DefaultSyncInterval matches the application's periodic sync cadence.
const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultSyncInterval   = 30 * time.Minute
	DefaultRequestTimeout = 15 * time.Second
)

// ClientAdapter holds network settings used by the agent's transport layer.
type ClientAdapter struct {
	// BaseURL is the record backend endpoint used by the agent.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the agent.
type ClientDB struct {
	// DSN is the SQLite file path of the local record store.
	DSN string
}

// ClientStorage groups agent storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains background sync job settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic sync cycle runs.
	SyncInterval time.Duration
}

// ClientConfig is the agent-specific configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains transport address and timeout.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates an agent-specific config view from the
// merged structured configuration, filling defaults for anything unset. The
// default local database lives under the XDG data directory.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	if clientCfg.Adapter.BaseURL == "" {
		clientCfg.Adapter.BaseURL = DefaultBaseURL
	}
	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Workers.SyncInterval <= 0 {
		clientCfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = filepath.Join(xdg.DataHome, "babynumtime", "records.db")
	}

	return clientCfg, clientCfg.validate()
}
