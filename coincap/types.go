package coincap

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cryptodash/market-gateway/interfaces"
)

// assetsResponse wraps the multi-asset listing payload
type assetsResponse struct {
	Data []Asset `json:"data"`
}

// assetResponse wraps the single-asset lookup payload
type assetResponse struct {
	Data Asset `json:"data"`
}

// Asset is the upstream asset schema. All numeric fields are strings and
// require explicit parsing; prices are always quoted in USD.
type Asset struct {
	ID                string `json:"id"`
	Rank              string `json:"rank"`
	Symbol            string `json:"symbol"`
	Name              string `json:"name"`
	PriceUsd          string `json:"priceUsd"`
	ChangePercent24Hr string `json:"changePercent24Hr"`
	MarketCapUsd      string `json:"marketCapUsd"`
	VolumeUsd24Hr     string `json:"volumeUsd24Hr"`
}

// iconURL synthesizes the deterministic icon location for a symbol; the
// upstream asset payload carries no image field
func iconURL(symbol string) string {
	return fmt.Sprintf("https://assets.coincap.io/assets/icons/%s@2x.png", strings.ToLower(symbol))
}

// parseFloat tolerates the empty strings the upstream occasionally sends
func parseFloat(value string) float64 {
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// toCoin coerces an asset into the normalized coin shape.
// rank is caller-supplied: page-relative for listings, provider-parsed for
// single lookups.
func (a Asset) toCoin(rank int) interfaces.Coin {
	return interfaces.Coin{
		ID:                       a.ID,
		Name:                     a.Name,
		Symbol:                   strings.ToLower(a.Symbol),
		CurrentPrice:             parseFloat(a.PriceUsd),
		PriceChangePercentage24h: parseFloat(a.ChangePercent24Hr),
		MarketCap:                parseFloat(a.MarketCapUsd),
		TotalVolume:              parseFloat(a.VolumeUsd24Hr),
		Image:                    iconURL(a.Symbol),
		MarketCapRank:            rank,
		LastUpdated:              time.Now().UTC().Format(time.RFC3339),
	}
}

// providerRank parses the provider-assigned rank string, falling back to 0
// when it is absent or malformed
func (a Asset) providerRank() int {
	rank, err := strconv.Atoi(a.Rank)
	if err != nil {
		return 0
	}
	return rank
}
