package coingecko

import "github.com/cryptodash/market-gateway/interfaces"

// searchResponse is the upstream search payload; only the coins section
// is consumed
type searchResponse struct {
	Coins []searchCoin `json:"coins"`
}

// searchCoin is one row of the upstream search payload
type searchCoin struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
	Thumb         string `json:"thumb"`
}

func (c searchCoin) toSearchResult() interfaces.SearchResult {
	return interfaces.SearchResult{
		ID:            c.ID,
		Name:          c.Name,
		Symbol:        c.Symbol,
		MarketCapRank: c.MarketCapRank,
		Thumb:         c.Thumb,
	}
}
