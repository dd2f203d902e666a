package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cryptodash/market-gateway/gateway"
	"github.com/cryptodash/market-gateway/interfaces"
)

type errorResponse struct {
	Error string `json:"error"`
}

// setCacheStatusHeader reports whether the response was served from cache
func (s *Server) setCacheStatusHeader(w http.ResponseWriter, cacheStatus interfaces.CacheStatus) {
	if cacheStatus != "" {
		w.Header().Set("Cache-Status", string(cacheStatus))
	}
}

// sendJSONResponse is a common wrapper for JSON responses that sets
// Content-Type, Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	// Marshal the data to calculate content length and ETag
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	// ETag is the MD5 hash of the response body
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")

	if _, err := w.Write(responseBytes); err != nil {
		log.Printf("Error writing response: %v", err)
		return
	}
}

// sendError maps the gateway's failure categories onto HTTP status codes
func (s *Server) sendError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case gateway.IsValidation(err):
		status = http.StatusBadRequest
	case gateway.IsNotFound(err):
		status = http.StatusNotFound
	case gateway.IsUpstreamTimeout(err):
		status = http.StatusGatewayTimeout
	case gateway.IsUpstreamUnavailable(err):
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(errorResponse{Error: err.Error()}); encodeErr != nil {
		log.Printf("Error writing error response: %v", encodeErr)
	}
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}
}

func getParamLowercase(r *http.Request, key string) string {
	value := r.URL.Query().Get(key)
	if value != "" {
		return strings.ToLower(value)
	}
	return ""
}

// getIntParam parses a positive integer query parameter, returning
// fallback when it is absent or malformed
func getIntParam(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitParamLowercase(param string) []string {
	if param == "" {
		return []string{}
	}

	parts := strings.Split(param, ",")
	result := []string{}
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
