package server

import (
	"time"

	"github.com/DominikBaer/kroki/internal/config"
	"github.com/DominikBaer/kroki/internal/geo"
	"github.com/DominikBaer/kroki/internal/height"
	"github.com/DominikBaer/kroki/internal/profile"

	"github.com/rs/zerolog/log"
)

const defaultMaxUpload = 10 << 20 // 10 MiB per GPX upload

// ServerContext holds dependencies for request handlers. The builder is
// stateless and the height client only shares its rate-limit clock, so
// concurrent uploads never share per-run data.
type ServerContext struct {
	Builder   *profile.Builder
	MaxUpload int64
}

// NewServerContext wires the conversion pipeline from the configuration.
// With fetchElevation disabled, missing elevations fall back to the
// sentinel without network access.
func NewServerContext(cfg *config.Config, fetchElevation bool) (*ServerContext, error) {
	proj, err := geo.ByName(cfg.Projection)
	if err != nil {
		return nil, err
	}

	var resolver height.Resolver = height.Static{}
	if fetchElevation {
		resolver = height.NewClient(
			cfg.HeightAPI.URL,
			cfg.HeightAPI.SR,
			time.Duration(cfg.HeightAPI.Interval),
			time.Duration(cfg.HeightAPI.Timeout),
			log.Logger)
	}

	log.Info().
		Str("projection", proj.Name()).
		Bool("fetch_elevation", fetchElevation).
		Msg("Server context initialized")

	return &ServerContext{
		Builder: &profile.Builder{
			Projection: proj,
			Resolver:   resolver,
			Log:        log.Logger,
		},
		MaxUpload: defaultMaxUpload,
	}, nil
}
