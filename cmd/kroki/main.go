package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/DominikBaer/kroki/internal/config"
	"github.com/DominikBaer/kroki/internal/geo"
	"github.com/DominikBaer/kroki/internal/gpx"
	"github.com/DominikBaer/kroki/internal/height"
	"github.com/DominikBaer/kroki/internal/logger"
	"github.com/DominikBaer/kroki/internal/profile"
	"github.com/DominikBaer/kroki/internal/report"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string `short:"c" long:"config"        env:"CONFIG_FILE" description:"Path to configuration file"`
	Output      string `short:"o" long:"out"           description:"Write the report to this file instead of stdout"`
	NoFetchElev bool   `short:"n" long:"no-fetch-elev" description:"Do not query the height service for missing elevations"`

	Args struct {
		GPXFile string `positional-arg-name:"gpx-file" description:"Path to the input GPX file"`
	} `positional-args:"yes" required:"yes"`
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

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
	}

	proj, err := geo.ByName(cfg.Projection)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up projection")
	}

	var resolver height.Resolver = height.Static{}
	if !opts.NoFetchElev {
		resolver = height.NewClient(
			cfg.HeightAPI.URL,
			cfg.HeightAPI.SR,
			time.Duration(cfg.HeightAPI.Interval),
			time.Duration(cfg.HeightAPI.Timeout),
			log.Logger)
	}

	data, err := os.ReadFile(opts.Args.GPXFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Args.GPXFile).Msg("Failed to read GPX file")
	}

	points, err := gpx.Extract(data)
	if err != nil {
		if errors.Is(err, gpx.ErrNoPoints) {
			log.Fatal().Str("path", opts.Args.GPXFile).Msg("No track, route or way points in GPX file")
		}
		log.Fatal().Err(err).Str("path", opts.Args.GPXFile).Msg("Failed to parse GPX file")
	}

	builder := &profile.Builder{
		Projection: proj,
		Resolver:   resolver,
		Log:        log.Logger,
	}

	p, err := builder.Build(context.Background(), points)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build route profile")
	}

	out := report.Format(p)

	if opts.Output == "" {
		fmt.Print(out)
		return
	}

	if err := os.WriteFile(opts.Output, []byte(out), 0644); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write report")
	}

	log.Info().
		Str("path", opts.Output).
		Int("points", len(p.Points)).
		Msg("Kroki written")
}
