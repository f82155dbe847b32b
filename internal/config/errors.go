package config

import "errors"

var (
	ErrNegativeSyncInterval   = errors.New("sync interval cannot be negative")
	ErrNegativeRequestTimeout = errors.New("request timeout cannot be negative")
	ErrEmptyBaseURL           = errors.New("record backend base URL is empty")
	ErrEmptyHTTPAddress       = errors.New("http server address is empty")
)
