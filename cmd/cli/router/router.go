package router

import (
	"context"
	"io"

	"github.com/linecard/userwriter/cmd/cli/method"
	"github.com/linecard/userwriter/cmd/cli/param"
	"github.com/linecard/userwriter/pkg/sdk"
)

type Root struct {
	Serve *param.Serve `arg:"subcommand:serve" help:"Serve POST /user over HTTP"`
	Put   *param.Put   `arg:"subcommand:put" help:"Write a single user"`
}

func (c Root) Empty() bool {
	return c.Serve == nil && c.Put == nil
}

func (c Root) Route(ctx context.Context, api sdk.API, out io.Writer) error {
	switch {
	case c.Serve != nil:
		return method.Serve(ctx, api, c.Serve)

	case c.Put != nil:
		return method.Put(ctx, api, c.Put, out)
	}

	return nil
}
