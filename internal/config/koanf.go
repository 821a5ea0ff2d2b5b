// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/OmeoneChain/omeonechain-sub013/internal/logging"
	"github.com/OmeoneChain/omeonechain-sub013/internal/trust"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/omeonechain/config.yaml",
	"/etc/omeonechain/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Trust:   *trust.DefaultConfig(),
		Logging: logging.DefaultConfig(),
	}
}

// Load builds configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in scoring constants
//  2. Config file: optional YAML file (if one exists)
//  3. Environment variables: override any setting
func Load() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile is Load with an explicit config file path. An empty path
// skips the file layer.
func LoadFile(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file, checking the path override
// env var before the default paths. Returns "" when none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc maps environment variable names to koanf config
// paths. Unmapped variables are skipped so stray environment noise
// cannot pollute the configuration.
//
// Examples:
//   - TRUST_MAX_SOCIAL_DISTANCE -> trust.graph.max_social_distance
//   - TRUST_WEIGHT_SOCIAL -> trust.weights.social
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Graph traversal
		"trust_max_social_distance": "trust.graph.max_social_distance",

		// Signal weights
		"trust_weight_social":    "trust.weights.social",
		"trust_weight_quality":   "trust.weights.quality",
		"trust_weight_recency":   "trust.weights.recency",
		"trust_weight_diversity": "trust.weights.diversity",

		// Distance weights
		"trust_distance_self":       "trust.distance.self",
		"trust_distance_direct":     "trust.distance.direct_follow",
		"trust_distance_second_hop": "trust.distance.second_hop",

		// Interaction values and reinforcement
		"trust_upvote_value":        "trust.interaction.upvote_value",
		"trust_save_value":          "trust.interaction.save_value",
		"trust_share_value":         "trust.interaction.share_value",
		"trust_downvote_value":      "trust.interaction.downvote_value",
		"trust_reinforcement_base":  "trust.interaction.reinforcement_base",
		"trust_reinforcement_range": "trust.interaction.reinforcement_range",

		// Recency
		"trust_half_life_days":        "trust.recency.half_life_days",
		"trust_boost_per_interaction": "trust.recency.boost_per_interaction",
		"trust_boost_window_days":     "trust.recency.boost_window_days",
		"trust_max_boost":             "trust.recency.max_boost",

		// Diversity
		"trust_diversity_per_user":     "trust.diversity.per_user",
		"trust_diversity_user_cap":     "trust.diversity.user_cap",
		"trust_diversity_per_distance": "trust.diversity.per_distance",
		"trust_diversity_distance_cap": "trust.diversity.distance_cap",
		"trust_diversity_per_type":     "trust.diversity.per_type",
		"trust_diversity_type_cap":     "trust.diversity.type_cap",

		// Confidence
		"trust_confidence_per_interaction": "trust.confidence.per_interaction",
		"trust_confidence_interaction_cap": "trust.confidence.interaction_cap",
		"trust_confidence_min":             "trust.confidence.min",
		"trust_confidence_max":             "trust.confidence.max",

		// Score scale and threshold
		"trust_max_score":     "trust.max_score",
		"trust_min_threshold": "trust.min_trust_threshold",

		// Neighborhood cache
		"trust_cache_enabled":        "trust.cache.enabled",
		"trust_cache_max_evaluators": "trust.cache.max_evaluators",

		// Logging
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	return ""
}
