package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"tcpresponder/internal/cli"
	"tcpresponder/internal/server"
	"tcpresponder/internal/service/web"
	"tcpresponder/internal/shared/config"
	"tcpresponder/internal/shared/logger"
	"tcpresponder/internal/shared/types"
)

func main() {
	configPath := flag.String("config", "configs/tcpresponder.ini", "Path to config file")
	flag.Parse()

	cfg := new(types.Config)
	if err := config.LoadIni(cfg, *configPath); err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load config file '%s': %v\n", *configPath, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup

	hub := web.NewHub()
	go hub.Run()
	web.StartServer(&wg, cfg, hub)

	listeners := server.MultiListener{
		cli.NewWriterListener(cfg.ServerConf.Port, os.Stdout),
		hub,
	}

	srv, err := server.New(&cfg.ServerConf, listeners)
	if err != nil {
		logger.Fatal().Err(err).Msgf("Invalid server configuration")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msgf("Server failed to start")
		}
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msgf("Shutting down.")
		srv.Stop()
		<-errCh
	}
}
