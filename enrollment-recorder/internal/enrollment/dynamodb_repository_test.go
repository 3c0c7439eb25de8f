package enrollment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	sharederrors "github.com/usersync/user-lifecycle/shared-libs/errors"
)

type fakePutItemAPI struct {
	putItemFn func(context.Context, *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
}

func (f *fakePutItemAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putItemFn != nil {
		return f.putItemFn(ctx, params)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func staticClient(api PutItemAPI) func(context.Context) (PutItemAPI, error) {
	return func(context.Context) (PutItemAPI, error) { return api, nil }
}

func TestDynamoRepository_PutMarshalsRecord(t *testing.T) {
	var got *dynamodb.PutItemInput
	api := &fakePutItemAPI{putItemFn: func(_ context.Context, in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		got = in
		return &dynamodb.PutItemOutput{}, nil
	}}
	repo := NewDynamoRepository(staticClient(api), "pending-users")

	record := NewRecord("abc-123", "a@b.com", time.Unix(1_700_000_000, 0), DefaultExpiryOffset)
	if err := repo.Put(context.Background(), record); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	if aws.ToString(got.TableName) != "pending-users" {
		t.Fatalf("unexpected table: %s", aws.ToString(got.TableName))
	}
	userID, ok := got.Item["userId"].(*types.AttributeValueMemberS)
	if !ok || userID.Value != "abc-123" {
		t.Fatalf("unexpected userId attribute: %#v", got.Item["userId"])
	}
	email, ok := got.Item["email"].(*types.AttributeValueMemberS)
	if !ok || email.Value != "a@b.com" {
		t.Fatalf("unexpected email attribute: %#v", got.Item["email"])
	}
	expireAt, ok := got.Item["expireAt"].(*types.AttributeValueMemberN)
	if !ok || expireAt.Value != "1700000180" {
		t.Fatalf("unexpected expireAt attribute: %#v", got.Item["expireAt"])
	}
	if _, ok := got.Item["createdAt"].(*types.AttributeValueMemberS); !ok {
		t.Fatalf("expected createdAt string attribute")
	}
}

func TestDynamoRepository_OmitsEmptyEmail(t *testing.T) {
	var got *dynamodb.PutItemInput
	api := &fakePutItemAPI{putItemFn: func(_ context.Context, in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		got = in
		return &dynamodb.PutItemOutput{}, nil
	}}
	repo := NewDynamoRepository(staticClient(api), "pending-users")

	if err := repo.Put(context.Background(), NewRecord("abc-123", "", time.Now(), DefaultExpiryOffset)); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if _, ok := got.Item["email"]; ok {
		t.Fatalf("expected email to be omitted when empty")
	}
}

func TestDynamoRepository_ClassifiesErrors(t *testing.T) {
	api := &fakePutItemAPI{putItemFn: func(context.Context, *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		return nil, errors.New("ResourceNotFoundException")
	}}
	repo := NewDynamoRepository(staticClient(api), "pending-users")

	err := repo.Put(context.Background(), NewRecord("abc-123", "", time.Now(), DefaultExpiryOffset))
	if sharederrors.KindOf(err) != sharederrors.KindRemote {
		t.Fatalf("expected remote error, got %v", err)
	}

	err = repo.Put(context.Background(), Record{})
	if sharederrors.KindOf(err) != sharederrors.KindMalformed {
		t.Fatalf("expected malformed error for empty user id, got %v", err)
	}
}

func TestDynamoRepository_ClientBuildFailure(t *testing.T) {
	wantErr := errors.New("no credentials")
	repo := NewDynamoRepository(func(context.Context) (PutItemAPI, error) { return nil, wantErr }, "pending-users")

	err := repo.Put(context.Background(), NewRecord("abc-123", "", time.Now(), DefaultExpiryOffset))
	if !errors.Is(err, wantErr) || sharederrors.KindOf(err) != sharederrors.KindRemote {
		t.Fatalf("expected wrapped remote error, got %v", err)
	}
}
