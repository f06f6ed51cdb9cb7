package config

import "errors"

var (
	// ErrInvalidAdapterConfigs wraps problems with the service address or
	// request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidStorageConfigs wraps problems with the session database file.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
