package config

import "time"

// APIConfig configures the HTTP surface
type APIConfig struct {
	// WSPushInterval is the default interval between watchlist pushes on
	// the websocket stream; clients may request a longer one
	WSPushInterval time.Duration `yaml:"ws_push_interval"`
}

func (c *APIConfig) GetWSPushInterval() time.Duration {
	if c.WSPushInterval > 0 {
		return c.WSPushInterval
	}
	return 10 * time.Second
}
