package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/linecard/userwriter/pkg/convention/config"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type TableService interface {
	Put(ctx context.Context, tableName string, item map[string]types.AttributeValue) error
}

type Services struct {
	Table TableService
}

// Writer assigns identity to a Record and persists it. It holds no mutable
// state and is safe for concurrent use.
type Writer struct {
	Config  config.Config
	Service Services
	NewID   IDGenerator
}

func FromServices(c config.Config, t TableService) Writer {
	return Writer{
		Config: c,
		Service: Services{
			Table: t,
		},
		NewID: NewID,
	}
}

// Write stores r under a newly generated user_id. On failure the returned
// Stored is zero and the error is a *WriteError.
func (w Writer) Write(ctx context.Context, r Record) (Stored, error) {
	ctx, span := otel.Tracer("").Start(ctx, "user.Write")
	defer span.End()

	fail := func(err *WriteError) (Stored, error) {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("user.write.retryable", err.Retryable()))
		return Stored{}, err
	}

	if !w.Config.TableConfigured() {
		return fail(&WriteError{
			Kind: ConfigurationMissing,
			Err:  fmt.Errorf("%s is not set", config.EnvUserTable),
		})
	}

	newID := w.NewID
	if newID == nil {
		newID = NewID
	}

	id, err := newID()
	if err != nil {
		return fail(&WriteError{Kind: StoreUnavailable, Err: fmt.Errorf("failed to generate user_id: %w", err)})
	}

	stored := Stored{
		UserID: id,
		Name:   r.Name,
		Age:    r.Age,
	}

	item, err := attributevalue.MarshalMap(stored)
	if err != nil {
		return fail(&WriteError{Kind: RejectedByStore, Err: fmt.Errorf("failed to marshal item: %w", err)})
	}

	span.SetAttributes(
		attribute.String("user.table", w.Config.Table.Name),
		attribute.String("user.id", id),
	)

	log.Info().
		Str("table", w.Config.Table.Name).
		Str("user_id", id).
		Msg("writing user")

	if w.Config.Table.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.Config.Table.WriteTimeout)
		defer cancel()
	}

	if err := w.Service.Table.Put(ctx, w.Config.Table.Name, item); err != nil {
		return fail(Classify(err))
	}

	return stored, nil
}

// transient error codes that DynamoDB reports as client faults
var throttlingCodes = map[string]bool{
	"ProvisionedThroughputExceededException": true,
	"RequestLimitExceeded":                   true,
	"ThrottlingException":                    true,
	"LimitExceededException":                 true,
}

// Classify maps an error from the table service onto the WriteError taxonomy.
// Anything that is not a recognised client fault is treated as transient.
func Classify(err error) *WriteError {
	var apiErr smithy.APIError
	var writeErr *WriteError

	switch {
	case errors.As(err, &writeErr):
		return writeErr

	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &WriteError{Kind: StoreUnavailable, Err: err}

	case errors.As(err, &apiErr):
		if throttlingCodes[apiErr.ErrorCode()] || apiErr.ErrorFault() == smithy.FaultServer {
			return &WriteError{Kind: StoreUnavailable, Err: err}
		}

		return &WriteError{Kind: RejectedByStore, Err: err}
	}

	return &WriteError{Kind: StoreUnavailable, Err: err}
}
