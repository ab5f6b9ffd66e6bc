package cli

import (
	"context"
	"os"

	"github.com/linecard/userwriter/cmd/cli/router"
	"github.com/linecard/userwriter/pkg/sdk"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

func Invoke(ctx context.Context) {
	ctx, span := otel.Tracer("").Start(ctx, "cli")
	defer span.End()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	var root router.Root
	parser := arg.MustParse(&root)

	if root.Empty() {
		parser.WriteHelp(os.Stdout)
		return
	}

	api, err := sdk.FromEnv(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize SDK")
	}

	if err := root.Route(ctx, api, os.Stdout); err != nil {
		log.Fatal().Err(err).Strs("argv", os.Args).Msgf("failed command")
	}
}
