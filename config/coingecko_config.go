package config

import "time"

// CoingeckoConfig configures the primary upstream adapter
type CoingeckoConfig struct {
	BaseURL string `yaml:"base_url"` // Override for CoinGecko API base URL
	APIKey  string `yaml:"api_key"`  // Optional demo API key

	RequestTimeout      time.Duration `yaml:"request_timeout"`       // Timeout for markets/coin/search calls
	ChartRequestTimeout time.Duration `yaml:"chart_request_timeout"` // Timeout for market chart calls (larger payloads)
	MaxRetries          int           `yaml:"max_retries"`
}

const coingeckoPublicURL = "https://api.coingecko.com/api/v3"

func (c *CoingeckoConfig) GetBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return coingeckoPublicURL
}

func (c *CoingeckoConfig) GetRequestTimeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return 10 * time.Second
}

func (c *CoingeckoConfig) GetChartRequestTimeout() time.Duration {
	if c.ChartRequestTimeout > 0 {
		return c.ChartRequestTimeout
	}
	return 15 * time.Second
}

func (c *CoingeckoConfig) GetMaxRetries() int {
	if c.MaxRetries > 0 {
		return c.MaxRetries
	}
	return 3
}
