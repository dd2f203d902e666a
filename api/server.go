package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cryptodash/market-gateway/config"
	"github.com/cryptodash/market-gateway/interfaces"
)

// Server exposes the gateway operations over HTTP
type Server struct {
	port       string
	config     *config.APIConfig
	marketData interfaces.MarketDataAPI
	server     *http.Server
}

func New(port string, cfg *config.APIConfig, marketData interfaces.MarketDataAPI) *Server {
	return &Server{
		port:       port,
		config:     cfg,
		marketData: marketData,
	}
}

func (s *Server) router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/crypto/coins", s.handleCoins).Methods("GET")
	router.HandleFunc("/crypto/coins/{id}", s.handleCoinByID).Methods("GET")
	router.HandleFunc("/crypto/chart/{id}", s.handleChart).Methods("GET")
	router.HandleFunc("/crypto/search", s.handleSearch).Methods("GET")
	router.HandleFunc("/crypto/watchlist", s.handleWatchlist).Methods("GET")
	router.HandleFunc("/crypto/ws/watchlist", s.handleWatchlistStream)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.router(),
	}

	log.Printf("Server starting at http://localhost:%s", s.port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponse(w, map[string]string{"status": "ok"})
}
