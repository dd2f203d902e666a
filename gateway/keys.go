package gateway

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cryptodash/market-gateway/interfaces"
)

// Cache keys are deterministic functions of the effective request
// parameters so equivalent requests coalesce on one entry.

func coinsKey(q interfaces.CoinsQuery) string {
	query := q.Query
	if query == "" {
		query = "all"
	}
	return fmt.Sprintf("coins:%d:%d:%s:%s", q.Page, q.PerPage, q.Currency, query)
}

func coinKey(id, currency string) string {
	return fmt.Sprintf("coin:%s:%s", id, currency)
}

func chartKey(p interfaces.ChartParams) string {
	return fmt.Sprintf("chart:%s:%s:%d", p.ID, p.Currency, p.Days)
}

func searchKey(query string) string {
	return "search:" + query
}

// watchlistKey sorts a copy of ids so the key is insensitive to the
// caller's ordering
func watchlistKey(ids []string, currency string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return fmt.Sprintf("watchlist:%s:%s", strings.Join(sorted, ","), currency)
}
