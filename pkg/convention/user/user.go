package user

const (
	MinAge = 0
	MaxAge = 150
)

// Record is a decoded and validated user, not yet persisted.
type Record struct {
	Name string
	Age  uint16
}

// Stored is the item written to the user table.
type Stored struct {
	UserID string `dynamodbav:"user_id" json:"user_id"`
	Name   string `dynamodbav:"name" json:"name"`
	Age    uint16 `dynamodbav:"age" json:"age"`
}
