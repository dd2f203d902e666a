package config

import "time"

// CoincapConfig configures the secondary (fallback) upstream adapter
type CoincapConfig struct {
	BaseURL        string        `yaml:"base_url"` // Override for CoinCap API base URL
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxRetries     int           `yaml:"max_retries"`

	// WindowSize is how many assets are fetched per listing call.
	// CoinCap has no server-side pagination for our page sizes, so the
	// adapter fetches one window and slices it locally.
	WindowSize int `yaml:"window_size"`
}

const coincapPublicURL = "https://api.coincap.io/v2"

func (c *CoincapConfig) GetBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return coincapPublicURL
}

func (c *CoincapConfig) GetRequestTimeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return 10 * time.Second
}

func (c *CoincapConfig) GetMaxRetries() int {
	if c.MaxRetries > 0 {
		return c.MaxRetries
	}
	return 3
}

func (c *CoincapConfig) GetWindowSize() int {
	if c.WindowSize > 0 {
		return c.WindowSize
	}
	return 100
}
