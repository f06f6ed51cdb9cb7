package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by [RegisterFlags] and [parseFlags].
const (
	flagAddress        = "address"
	flagRequestTimeout = "request-timeout"
	flagDB             = "db"
	flagLogFile        = "log-file"
	flagLogLevel       = "log-level"
	flagConfig         = "config"
)

// RegisterFlags adds the configuration flags to fs.
//
// Flags:
//
//	-a/--address          record service base URL (e.g. http://localhost:8000/api)
//	--request-timeout     request timeout (e.g. "15s", "1m")
//	-d/--db               SQLite file used for the session token
//	--log-file            log file path
//	--log-level           log level (debug, info, warn, error)
//	-c/--config           JSON or YAML config file path
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagAddress, "a", "", "Record service base URL")
	fs.Duration(flagRequestTimeout, 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringP(flagDB, "d", "", "SQLite database file for the session")
	fs.String(flagLogFile, "", "Log file path")
	fs.String(flagLogLevel, "", "Log level")
	fs.StringP(flagConfig, "c", "", "JSON or YAML config file path")
}

// parseFlags reads the values registered by RegisterFlags. Flags that were
// never registered on fs are left at their zero value.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	var err error
	if cfg.Adapter.HTTPAddress, err = stringFlag(fs, flagAddress); err != nil {
		return nil, err
	}
	if fs.Lookup(flagRequestTimeout) != nil {
		if cfg.Adapter.RequestTimeout, err = fs.GetDuration(flagRequestTimeout); err != nil {
			return nil, fmt.Errorf("error reading flag %s: %w", flagRequestTimeout, err)
		}
	}
	if cfg.Storage.DB.DSN, err = stringFlag(fs, flagDB); err != nil {
		return nil, err
	}
	if cfg.Log.File, err = stringFlag(fs, flagLogFile); err != nil {
		return nil, err
	}
	if cfg.Log.Level, err = stringFlag(fs, flagLogLevel); err != nil {
		return nil, err
	}
	if cfg.FilePath, err = stringFlag(fs, flagConfig); err != nil {
		return nil, err
	}

	return cfg, nil
}

func stringFlag(fs *pflag.FlagSet, name string) (string, error) {
	if fs.Lookup(name) == nil {
		return "", nil
	}
	v, err := fs.GetString(name)
	if err != nil {
		return "", fmt.Errorf("error reading flag %s: %w", name, err)
	}
	return v, nil
}
