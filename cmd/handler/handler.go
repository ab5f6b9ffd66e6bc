package handler

import (
	"context"
	"encoding/base64"

	"github.com/linecard/userwriter/pkg/convention/endpoint"
	"github.com/linecard/userwriter/pkg/convention/user"
	"github.com/linecard/userwriter/pkg/sdk"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-lambda-go/otellambda"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type Endpoint interface {
	Handle(ctx context.Context, body []byte) endpoint.Response
}

type Handler struct {
	Endpoint Endpoint
}

func FromAPI(api sdk.API) Handler {
	return Handler{
		Endpoint: api.Endpoint,
	}
}

// Listen for events from the AWS Lambda runtime.
func Listen(ctx context.Context, tp *sdktrace.TracerProvider) {
	h := FromAPI(BeforeAll(ctx))

	instrumented := otellambda.InstrumentHandler(h.Handle,
		otellambda.WithTracerProvider(tp),
		otellambda.WithFlusher(tp),
	)

	lambda.Start(instrumented)
}

// Handle processes API Gateway proxy requests for POST /user. Failures are
// returned as HTTP responses, never as invocation errors.
func (h Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(event.Body)

	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return toProxyResponse(endpoint.Failure(&user.DecodeError{Kind: user.MalformedStructure, Err: err})), nil
		}
		body = decoded
	}

	return toProxyResponse(h.Endpoint.Handle(ctx, body)), nil
}

func toProxyResponse(r endpoint.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       r.Body,
	}
}
