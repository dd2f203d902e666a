package e2etest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// MockUpstream emulates both upstream APIs on a single test server. The
// primary provider's endpoints live under /coins and /search, the
// fallback provider's under /assets, so one base URL serves both
// adapter configurations.
type MockUpstream struct {
	server *httptest.Server

	mu          sync.Mutex
	primaryDown bool
}

type mockCoin struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Symbol                   string  `json:"symbol"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	MarketCap                float64 `json:"market_cap"`
	TotalVolume              float64 `json:"total_volume"`
	Image                    string  `json:"image"`
	MarketCapRank            int     `json:"market_cap_rank"`
	LastUpdated              string  `json:"last_updated"`
}

var mockCoins = []mockCoin{
	{
		ID: "bitcoin", Name: "Bitcoin", Symbol: "btc",
		CurrentPrice: 45000.5, PriceChangePercentage24h: -1.2,
		MarketCap: 850000000000, TotalVolume: 30000000000,
		Image: "https://img.example/btc.png", MarketCapRank: 1,
		LastUpdated: "2024-01-01T00:00:00Z",
	},
	{
		ID: "ethereum", Name: "Ethereum", Symbol: "eth",
		CurrentPrice: 3000, PriceChangePercentage24h: 2.4,
		MarketCap: 360000000000, TotalVolume: 12000000000,
		Image: "https://img.example/eth.png", MarketCapRank: 2,
		LastUpdated: "2024-01-01T00:00:00Z",
	},
}

func NewMockUpstream() *MockUpstream {
	mock := &MockUpstream{}

	mux := http.NewServeMux()
	mux.HandleFunc("/coins/markets", mock.handleMarkets)
	mux.HandleFunc("/search", mock.handleSearch)
	mux.HandleFunc("/coins/", mock.handleChart)
	mux.HandleFunc("/assets", mock.handleAssets)
	mux.HandleFunc("/assets/", mock.handleAsset)

	mock.server = httptest.NewServer(mux)
	return mock
}

func (m *MockUpstream) URL() string {
	return m.server.URL
}

func (m *MockUpstream) Close() {
	m.server.Close()
}

// SetPrimaryDown makes every primary-provider endpoint answer 500 until
// reset
func (m *MockUpstream) SetPrimaryDown(down bool) {
	m.mu.Lock()
	m.primaryDown = down
	m.mu.Unlock()
}

func (m *MockUpstream) isPrimaryDown() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.primaryDown
}

func (m *MockUpstream) handleMarkets(w http.ResponseWriter, r *http.Request) {
	if m.isPrimaryDown() {
		http.Error(w, "upstream outage", http.StatusInternalServerError)
		return
	}

	coins := mockCoins
	if idsParam := r.URL.Query().Get("ids"); idsParam != "" {
		requested := map[string]bool{}
		for _, id := range strings.Split(idsParam, ",") {
			requested[id] = true
		}
		coins = nil
		for _, coin := range mockCoins {
			if requested[coin.ID] {
				coins = append(coins, coin)
			}
		}
	}
	if coins == nil {
		coins = []mockCoin{}
	}
	writeJSON(w, coins)
}

func (m *MockUpstream) handleSearch(w http.ResponseWriter, r *http.Request) {
	if m.isPrimaryDown() {
		http.Error(w, "upstream outage", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"coins": []map[string]interface{}{
			{"id": "bitcoin", "name": "Bitcoin", "symbol": "BTC", "market_cap_rank": 1, "thumb": "https://img.example/btc-thumb.png"},
		},
	})
}

func (m *MockUpstream) handleChart(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, "/market_chart") {
		http.NotFound(w, r)
		return
	}
	if m.isPrimaryDown() {
		http.Error(w, "upstream outage", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"prices":        [][2]float64{{1700000000000, 44000}, {1700003600000, 44100}},
		"market_caps":   [][2]float64{{1700000000000, 860000000000}, {1700003600000, 861000000000}},
		"total_volumes": [][2]float64{{1700000000000, 25000000000}, {1700003600000, 26000000000}},
	})
}

func (m *MockUpstream) handleAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"data": []map[string]string{
			coincapAsset("bitcoin", "1", "BTC", "Bitcoin", "44950.1"),
			coincapAsset("ethereum", "2", "ETH", "Ethereum", "2990.7"),
		},
	})
}

func (m *MockUpstream) handleAsset(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/assets/")
	for _, asset := range []map[string]string{
		coincapAsset("bitcoin", "1", "BTC", "Bitcoin", "44950.1"),
		coincapAsset("ethereum", "2", "ETH", "Ethereum", "2990.7"),
	} {
		if asset["id"] == id {
			writeJSON(w, map[string]interface{}{"data": asset})
			return
		}
	}
	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

func coincapAsset(id, rank, symbol, name, price string) map[string]string {
	return map[string]string{
		"id": id, "rank": rank, "symbol": symbol, "name": name,
		"priceUsd":          price,
		"changePercent24Hr": "-0.8",
		"marketCapUsd":      "840000000000",
		"volumeUsd24Hr":     "29000000000",
	}
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Println("mock upstream: write failed:", err)
	}
}
