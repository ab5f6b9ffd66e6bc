package table

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

type DynamoDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type Client struct {
	DynamoDB DynamoDBClient
}

type Service struct {
	Client Client
}

func FromClients(dynamoDBClient DynamoDBClient) Service {
	return Service{
		Client: Client{
			DynamoDB: dynamoDBClient,
		},
	}
}

// Put writes a single item. It never reads and never sets a condition, so an
// existing item with the same key would be replaced.
func (s Service) Put(ctx context.Context, tableName string, item map[string]types.AttributeValue) error {
	output, err := s.Client.DynamoDB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:              aws.String(tableName),
		Item:                   item,
		ReturnConsumedCapacity: types.ReturnConsumedCapacityTotal,
	})

	if err != nil {
		return err
	}

	if output != nil && output.ConsumedCapacity != nil {
		log.Debug().
			Str("table", tableName).
			Float64("capacity", aws.ToFloat64(output.ConsumedCapacity.CapacityUnits)).
			Msg("put item")
	}

	return nil
}
