package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cryptodash/market-gateway/interfaces"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The stream carries public market data only
	CheckOrigin: func(r *http.Request) bool { return true },
}

// watchlistPush is one message on the watchlist stream
type watchlistPush struct {
	Coins     []interfaces.Coin `json:"coins"`
	UpdatedAt string            `json:"updated_at"`
}

// handleWatchlistStream upgrades the connection and pushes the market
// rows for the requested ids on a fixed interval. The first push happens
// immediately; clients may request a slower cadence than the configured
// default but never a faster one.
func (s *Server) handleWatchlistStream(w http.ResponseWriter, r *http.Request) {
	ids := splitParamLowercase(r.URL.Query().Get("ids"))
	currency := getParamLowercase(r, "currency")
	if currency == "" {
		currency = defaultCurrency
	}

	interval := s.config.GetWSPushInterval()
	if requested := getIntParam(r, "interval", 0); requested > 0 {
		if candidate := time.Duration(requested) * time.Second; candidate > interval {
			interval = candidate
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WS: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Read pump: the client sends nothing meaningful, but reads are
	// needed to notice the connection closing
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := s.pushWatchlist(ctx, conn, ids, currency); err != nil {
			log.Printf("WS: closing stream: %v", err)
			return
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) pushWatchlist(ctx context.Context, conn *websocket.Conn, ids []string, currency string) error {
	coins, _, err := s.marketData.Watchlist(ctx, ids, currency)
	if err != nil {
		// A failed refresh ends the stream; the client reconnects and
		// gets a clean error on the REST surface if the outage persists
		return err
	}

	return conn.WriteJSON(watchlistPush{
		Coins:     coins,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
