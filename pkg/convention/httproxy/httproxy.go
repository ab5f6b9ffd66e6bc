package httproxy

import (
	"context"
	"net/http"

	"github.com/linecard/userwriter/pkg/convention/config"
	"github.com/linecard/userwriter/pkg/convention/endpoint"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const Route = "/user"

type Endpoint interface {
	Handle(ctx context.Context, body []byte) endpoint.Response
}

// Convention exposes the endpoint over plain HTTP for running outside Lambda.
type Convention struct {
	Config   config.Config
	Endpoint Endpoint
}

func FromConventions(c config.Config, e Endpoint) Convention {
	return Convention{
		Config:   c,
		Endpoint: e,
	}
}

func (c Convention) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST(Route, func(ctx *gin.Context) {
		body, err := ctx.GetRawData()
		if err != nil {
			write(ctx, endpoint.Failure(err))
			return
		}

		write(ctx, c.Endpoint.Handle(ctx.Request.Context(), body))
	})

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}

// Serve blocks until the listener fails.
func (c Convention) Serve(listen string) error {
	if listen == "" {
		listen = c.Config.ListenAddr()
	}

	log.Info().Str("listen", listen).Str("route", "POST "+Route).Msg("serving")

	return c.Router().Run(listen)
}

func write(ctx *gin.Context, r endpoint.Response) {
	for key, value := range r.Headers {
		ctx.Header(key, value)
	}
	ctx.Data(r.StatusCode, r.Headers["Content-Type"], []byte(r.Body))
}
