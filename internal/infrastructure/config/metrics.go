package config

// MetricsConfig holds metrics collection configuration
type MetricsConfig struct {
	// Enabled controls whether task material metrics are collected
	Enabled bool `mapstructure:"enabled"`

	// Namespace prefixes every metric name
	Namespace string `mapstructure:"namespace" validate:"required"`

	// TextfilePath receives the collected metrics in text exposition format
	// when a command finishes. Empty disables the export.
	TextfilePath string `mapstructure:"textfile_path"`
}
