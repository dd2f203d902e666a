package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cryptodash/market-gateway/interfaces"
)

func TestCoinsKey(t *testing.T) {
	assert.Equal(t, "coins:1:20:usd:all",
		coinsKey(interfaces.CoinsQuery{Page: 1, PerPage: 20, Currency: "usd"}))
	assert.Equal(t, "coins:2:50:eur:doge",
		coinsKey(interfaces.CoinsQuery{Page: 2, PerPage: 50, Currency: "eur", Query: "doge"}))
}

func TestCoinKey(t *testing.T) {
	assert.Equal(t, "coin:bitcoin:usd", coinKey("bitcoin", "usd"))
}

func TestChartKey(t *testing.T) {
	assert.Equal(t, "chart:bitcoin:usd:7",
		chartKey(interfaces.ChartParams{ID: "bitcoin", Currency: "usd", Days: 7}))
}

func TestSearchKey(t *testing.T) {
	assert.Equal(t, "search:doge", searchKey("doge"))
}

func TestWatchlistKey(t *testing.T) {
	ids := []string{"ethereum", "bitcoin", "cardano"}

	key := watchlistKey(ids, "usd")
	assert.Equal(t, "watchlist:bitcoin,cardano,ethereum:usd", key)

	// The caller's slice is left untouched
	assert.Equal(t, []string{"ethereum", "bitcoin", "cardano"}, ids)
}
