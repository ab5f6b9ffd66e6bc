package sdk

import (
	"context"
	"fmt"

	"github.com/linecard/userwriter/internal/util"

	// config
	"github.com/linecard/userwriter/pkg/convention/config"

	// services
	"github.com/linecard/userwriter/pkg/service/table"

	// conventions
	"github.com/linecard/userwriter/pkg/convention/endpoint"
	"github.com/linecard/userwriter/pkg/convention/httproxy"
	"github.com/linecard/userwriter/pkg/convention/user"

	// clients
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/rs/zerolog/log"
)

type Clients struct {
	DynamoDBClient *dynamodb.Client
}

type Services struct {
	Table table.Service
}

type Conventions struct {
	Writer   user.Writer
	Endpoint endpoint.Convention
	Httproxy httproxy.Convention
}

type API struct {
	Conventions
	Config config.Config
}

func Init(ctx context.Context, awsConfig aws.Config, config config.Config) (API, error) {
	clients, err := InitClients(ctx, awsConfig)
	if err != nil {
		return API{}, err
	}

	services, err := InitServices(ctx, clients)
	if err != nil {
		return API{}, err
	}

	conventions, err := InitConventions(ctx, config, services)
	if err != nil {
		return API{}, err
	}

	return API{
		Conventions: conventions,
		Config:      config,
	}, nil
}

func InitConventions(ctx context.Context, config config.Config, services Services) (Conventions, error) {
	writer := user.FromServices(config, services.Table)
	handler := endpoint.FromConventions(writer)

	return Conventions{
		Writer:   writer,
		Endpoint: handler,
		Httproxy: httproxy.FromConventions(config, handler),
	}, nil
}

func InitServices(ctx context.Context, clients Clients) (Services, error) {
	return Services{
		Table: table.FromClients(clients.DynamoDBClient),
	}, nil
}

func InitClients(ctx context.Context, awsConfig aws.Config) (Clients, error) {
	return Clients{
		DynamoDBClient: dynamodb.NewFromConfig(awsConfig),
	}, nil
}

// FromEnv loads configuration and AWS settings from the environment and
// builds the API. Clients are constructed once and shared by every request.
func FromEnv(ctx context.Context) (API, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return API{}, err
	}

	if !cfg.TableConfigured() {
		log.Warn().Str("env", config.EnvUserTable).Msg("user table not configured, writes will be rejected")
	}

	retryLogger := util.RetryLogger{
		Log: &log.Logger,
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithLogger(&retryLogger),
		awsconfig.WithClientLogMode(aws.LogRetries))

	if err != nil {
		return API{}, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return Init(ctx, awsConfig, cfg)
}
