package web

import (
	"fmt"
	"net/http"
	"sync"

	"tcpresponder/internal/shared/logger"
	"tcpresponder/internal/shared/types"
)

// StartServer starts the dashboard HTTP server hosting the websocket
// endpoint. A web_port of 0 disables the dashboard entirely.
func StartServer(wg *sync.WaitGroup, cfg *types.Config, hub *Hub) {
	if cfg.WebConf.WebPort <= 0 {
		logger.Info().Msgf("Web dashboard is disabled (web_port is 0 or not set).")
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.WebConf.WebPort)
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info().Str("addr", addr).Msgf("Web dashboard is listening.")
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error().Err(err).Msgf("Web dashboard server exited")
		}
	}()
}
