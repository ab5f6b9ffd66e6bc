package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linecard/userwriter/pkg/convention/user"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	Acknowledgment  = "Hello AWS Lambda HTTP request"
	ContentTypeHTML = "text/html"
	ContentTypeJSON = "application/json"
)

type Writer interface {
	Write(ctx context.Context, r user.Record) (user.Stored, error)
}

type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

type Convention struct {
	Writer Writer
}

func FromConventions(w Writer) Convention {
	return Convention{
		Writer: w,
	}
}

// Handle decodes body, writes the resulting user and maps the outcome to an
// HTTP response. It never returns an error; failures become 4xx/5xx responses.
func (c Convention) Handle(ctx context.Context, body []byte) Response {
	ctx, span := otel.Tracer("").Start(ctx, "endpoint.Handle")
	defer span.End()

	log.Debug().Bytes("payload", body).Msg("payload received")

	record, err := user.Decode(body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Warn().Err(err).Msg("rejected payload")
		return Failure(err)
	}

	stored, err := c.Writer.Write(ctx, record)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Error().Err(err).Msg("failed to store user")
		return Failure(err)
	}

	span.SetAttributes(attribute.String("user.id", stored.UserID))
	log.Info().Str("user_id", stored.UserID).Msg("stored user")

	return Success()
}

func Success() Response {
	return Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": ContentTypeHTML},
		Body:       Acknowledgment,
	}
}

type ErrorBody struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// Failure maps decode errors to 400, transient store errors to 502 and
// everything else to 500.
func Failure(err error) Response {
	var decodeErr *user.DecodeError
	var writeErr *user.WriteError

	status := http.StatusInternalServerError
	body := ErrorBody{
		Error:   "internal",
		Message: err.Error(),
	}

	switch {
	case errors.As(err, &decodeErr):
		status = http.StatusBadRequest
		body.Error = string(decodeErr.Kind)
		body.Field = decodeErr.Field

	case errors.As(err, &writeErr):
		if writeErr.Retryable() {
			status = http.StatusBadGateway
		}
		body.Error = string(writeErr.Kind)
		body.Retryable = writeErr.Retryable()
	}

	encoded, marshalErr := json.Marshal(body)
	if marshalErr != nil {
		encoded = []byte(`{"error":"internal","message":"failed to encode error"}`)
	}

	return Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": ContentTypeJSON},
		Body:       string(encoded),
	}
}
