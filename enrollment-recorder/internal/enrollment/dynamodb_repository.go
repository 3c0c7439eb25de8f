package enrollment

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	sharederrors "github.com/usersync/user-lifecycle/shared-libs/errors"
)

// PutItemAPI is the slice of the DynamoDB client used by the repository.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type dynamoRepository struct {
	client    func(context.Context) (PutItemAPI, error)
	tableName string
}

// NewDynamoRepository writes records into tableName. client is resolved on every
// call so the underlying connection can be built lazily and shared.
func NewDynamoRepository(client func(context.Context) (PutItemAPI, error), tableName string) Repository {
	return &dynamoRepository{client: client, tableName: tableName}
}

func (r *dynamoRepository) Put(ctx context.Context, record Record) error {
	if record.UserID == "" {
		return sharederrors.Malformed("put record", ErrMissingUserID)
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	client, err := r.client(ctx)
	if err != nil {
		return sharederrors.Remote("dynamodb client", err)
	}

	_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return sharederrors.Remote("dynamodb put item", err)
	}
	return nil
}
