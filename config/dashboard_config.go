package config

import "time"

// DashboardConfig configures the dashboard state controller
type DashboardConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"` // Polling interval for the active view
	PerPage         int           `yaml:"per_page"`         // Page size for the markets list
	WatchlistFile   string        `yaml:"watchlist_file"`   // Durable storage path for the watchlist id set
}

func (c *DashboardConfig) GetRefreshInterval() time.Duration {
	if c.RefreshInterval > 0 {
		return c.RefreshInterval
	}
	return 60 * time.Second
}

func (c *DashboardConfig) GetPerPage() int {
	if c.PerPage > 0 {
		return c.PerPage
	}
	return 20
}

func (c *DashboardConfig) GetWatchlistFile() string {
	if c.WatchlistFile != "" {
		return c.WatchlistFile
	}
	return "watchlist.json"
}
