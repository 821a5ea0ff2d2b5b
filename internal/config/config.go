// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package config

import (
	"fmt"

	"github.com/OmeoneChain/omeonechain-sub013/internal/logging"
	"github.com/OmeoneChain/omeonechain-sub013/internal/trust"
)

// Config is the top-level application configuration.
type Config struct {
	// Trust holds the scoring engine parameters.
	Trust trust.Config `koanf:"trust"`

	// Logging holds the log output parameters.
	Logging logging.Config `koanf:"logging"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Trust.Validate(); err != nil {
		return fmt.Errorf("trust: %w", err)
	}

	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}
