package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/DominikBaer/kroki/internal/config"
	"github.com/DominikBaer/kroki/internal/logger"
	"github.com/DominikBaer/kroki/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string `short:"c" long:"config"        env:"CONFIG_FILE"    description:"Path to configuration file"`
	Addr        string `short:"a" long:"addr"          env:"LISTEN_ADDRESS" description:"Address to listen on" default:"0.0.0.0"`
	Port        int    `short:"p" long:"port"          env:"LISTEN_PORT"    description:"Port to listen on"    default:"8080"`
	NoFetchElev bool   `short:"n" long:"no-fetch-elev" env:"NO_FETCH_ELEV"  description:"Do not query the height service for missing elevations"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	srvCtx, err := server.NewServerContext(cfg, !opts.NoFetchElev)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server context")
	}

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/convert", srvCtx.HandleConvert)
	mux.HandleFunc("/", srvCtx.HandleIndex)

	handler := server.RequestLogger(mux)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Str("projection", cfg.Projection).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
