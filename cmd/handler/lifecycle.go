package handler

import (
	"context"

	"github.com/linecard/userwriter/pkg/sdk"

	"github.com/rs/zerolog/log"
)

func BeforeAll(ctx context.Context) sdk.API {
	api, err := sdk.FromEnv(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize SDK")
	}

	return api
}
