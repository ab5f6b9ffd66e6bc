package mock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/mock"
)

// MockTableService is a mock of the user table service
type MockTableService struct {
	mock.Mock
}

func (m *MockTableService) Put(ctx context.Context, tableName string, item map[string]types.AttributeValue) error {
	args := m.Called(ctx, tableName, item)
	return args.Error(0)
}
