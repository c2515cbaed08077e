// Package config loads the demo command's YAML configuration.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure. It carries only the two
// ambient concerns this module has: telemetry export and the optional
// lifecycle event bus bridge.
type Config struct {
	Telemetry TelemetryConfig `yaml:"telemetry"`
	EventBus  EventBusConfig  `yaml:"eventbus"`
}

// TelemetryConfig configures the OpenTelemetry trace exporter and the
// Prometheus metrics listener.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
	MetricsPort  int    `yaml:"metrics_port"`
}

// MetricsPortOrDefault returns the configured metrics port, falling back
// to an environment variable and then a hardcoded default.
func (t *TelemetryConfig) MetricsPortOrDefault() int {
	return getPortWithEnvFallback(t.MetricsPort, "BLOCKNETWORK_METRICS_PORT", 2112)
}

// EventBusConfig configures the optional NATS JetStream bridge that
// publishes network lifecycle envelopes.
type EventBusConfig struct {
	URL       string `yaml:"url"`
	Stream    string `yaml:"stream"`
	Retention int    `yaml:"retention_hours"`
}

func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}
	return defaultPort
}

// Load reads a YAML config file. If path is empty it tries the
// BLOCKNETWORK_CONFIG environment variable and, failing that, returns a
// nil Config so callers fall back to their own defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("BLOCKNETWORK_CONFIG")
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
