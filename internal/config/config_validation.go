package config

// validate checks structural sanity of the merged config. Emptiness of
// role-specific fields is checked by the client/server views, not here:
// a server does not need an adapter base URL and an agent does not need a
// listen address.
func (c *StructuredConfig) validate() error {
	if c.Workers.SyncInterval < 0 {
		return ErrNegativeSyncInterval
	}
	if c.Server.RequestTimeout < 0 || c.Adapter.RequestTimeout < 0 {
		return ErrNegativeRequestTimeout
	}

	return nil
}

func (c *ClientConfig) validate() error {
	if c.Adapter.BaseURL == "" {
		return ErrEmptyBaseURL
	}

	return nil
}

func (c *ServerConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		return ErrEmptyHTTPAddress
	}

	return nil
}
