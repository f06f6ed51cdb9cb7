// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// validate reports every problem at once, each wrapped in the sentinel of
// its group.
func (cfg *ClientConfig) validate() error {
	var errs []error

	dsn := strings.TrimSpace(cfg.Storage.DB.DSN)
	switch {
	case dsn == "":
		errs = append(errs, fmt.Errorf("%w: empty database file", ErrInvalidStorageConfigs))
	case strings.Contains(dsn, "memory"):
		// the token must survive restarts
		errs = append(errs, fmt.Errorf("%w: in-memory database %q", ErrInvalidStorageConfigs, dsn))
	}

	address := strings.TrimSpace(cfg.Adapter.HTTPAddress)
	if address == "" {
		errs = append(errs, fmt.Errorf("%w: empty service address", ErrInvalidAdapterConfigs))
	} else if u, err := url.Parse(address); err != nil || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: service address %q is not an absolute URL", ErrInvalidAdapterConfigs, address))
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout %s", ErrInvalidAdapterConfigs, cfg.Adapter.RequestTimeout))
	}

	return errors.Join(errs...)
}
