package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/cryptodash/market-gateway/interfaces"
)

// Parameter defaults applied when a query parameter is absent or
// malformed; validation of the effective values happens in the gateway
const (
	defaultPage     = 1
	defaultPerPage  = 20
	defaultCurrency = "usd"
	defaultDays     = 1
)

// handleCoins serves one page of the coin listing, optionally narrowed by
// a free-text query
func (s *Server) handleCoins(w http.ResponseWriter, r *http.Request) {
	query := interfaces.CoinsQuery{
		Page:    getIntParam(r, "page", defaultPage),
		PerPage: getIntParam(r, "perPage", defaultPerPage),
		Query:   strings.TrimSpace(r.URL.Query().Get("query")),
	}
	if query.Currency = getParamLowercase(r, "currency"); query.Currency == "" {
		query.Currency = defaultCurrency
	}

	response, cacheStatus, err := s.marketData.Coins(r.Context(), query)
	if err != nil {
		s.sendError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, response)
}

// handleCoinByID serves a single coin looked up by its identifier
func (s *Server) handleCoinByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	currency := getParamLowercase(r, "currency")
	if currency == "" {
		currency = defaultCurrency
	}

	coin, cacheStatus, err := s.marketData.CoinByID(r.Context(), id, currency)
	if err != nil {
		s.sendError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, coin)
}

// handleChart serves historical chart series for one coin
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	params := interfaces.ChartParams{
		ID:   mux.Vars(r)["id"],
		Days: getIntParam(r, "days", defaultDays),
	}
	if params.Currency = getParamLowercase(r, "currency"); params.Currency == "" {
		params.Currency = defaultCurrency
	}

	chart, cacheStatus, err := s.marketData.Chart(r.Context(), params)
	if err != nil {
		s.sendError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, chart)
}

// handleSearch resolves a free-text query to lightweight results
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))

	response, cacheStatus, err := s.marketData.Search(r.Context(), query)
	if err != nil {
		s.sendError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, response)
}

// watchlistResponse envelopes watchlist rows the same way the listing
// endpoint envelopes its page
type watchlistResponse struct {
	Coins []interfaces.Coin `json:"coins"`
}

// handleWatchlist serves current market rows for exactly the requested ids
func (s *Server) handleWatchlist(w http.ResponseWriter, r *http.Request) {
	ids := splitParamLowercase(r.URL.Query().Get("ids"))
	currency := getParamLowercase(r, "currency")
	if currency == "" {
		currency = defaultCurrency
	}

	coins, cacheStatus, err := s.marketData.Watchlist(r.Context(), ids, currency)
	if err != nil {
		s.sendError(w, err)
		return
	}
	if coins == nil {
		coins = []interfaces.Coin{}
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, watchlistResponse{Coins: coins})
}
