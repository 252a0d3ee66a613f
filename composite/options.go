package composite

// Config holds builder settings.
type Config struct {
	// WindowDuration is the moving-average span in seconds. The window
	// length in samples is derived from the reference timebase per file.
	WindowDuration float64
	Chart          ChartConfig
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used by the study's analysis runs.
func DefaultConfig() Config {
	return Config{
		WindowDuration: 5,
		Chart:          DefaultChartConfig(),
	}
}

// WithWindowDuration sets the moving-average span in seconds.
func WithWindowDuration(seconds float64) Option {
	return func(cfg *Config) {
		if seconds > 0 {
			cfg.WindowDuration = seconds
		}
	}
}

// WithChartConfig sets the chart rendering configuration.
func WithChartConfig(chart ChartConfig) Option {
	return func(cfg *Config) {
		cfg.Chart = chart
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
