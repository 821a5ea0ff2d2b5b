// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

// Package config loads application configuration with layered sources:
// built-in defaults, an optional YAML config file, and environment
// variables. Precedence is ENV > file > defaults.
package config
