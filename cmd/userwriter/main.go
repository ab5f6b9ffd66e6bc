package main

import (
	"context"

	"github.com/linecard/userwriter/cmd/cli"
	"github.com/linecard/userwriter/cmd/handler"
	"github.com/linecard/userwriter/internal/tracing"
	"github.com/linecard/userwriter/internal/util"
)

func main() {
	util.SetLogLevel()

	ctx := context.Background()
	tp, shutdown := tracing.InitOtel(ctx)
	defer shutdown()

	if util.InLambda() {
		handler.Listen(ctx, tp)
		return
	}

	cli.Invoke(ctx)
}
