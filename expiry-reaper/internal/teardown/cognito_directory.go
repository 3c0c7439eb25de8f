package teardown

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	sharederrors "github.com/usersync/user-lifecycle/shared-libs/errors"
)

// CognitoAPI is the slice of the Cognito user pool client used by the directory.
type CognitoAPI interface {
	AdminDisableUser(ctx context.Context, params *cip.AdminDisableUserInput, optFns ...func(*cip.Options)) (*cip.AdminDisableUserOutput, error)
	AdminDeleteUser(ctx context.Context, params *cip.AdminDeleteUserInput, optFns ...func(*cip.Options)) (*cip.AdminDeleteUserOutput, error)
}

type cognitoDirectory struct {
	client     func(context.Context) (CognitoAPI, error)
	userPoolID string
}

// NewCognitoDirectory manages accounts in userPoolID. client is resolved on each
// call so the SDK client can be built lazily and shared across invocations.
func NewCognitoDirectory(client func(context.Context) (CognitoAPI, error), userPoolID string) Directory {
	return &cognitoDirectory{client: client, userPoolID: userPoolID}
}

func (d *cognitoDirectory) DisableUser(ctx context.Context, username string) error {
	client, err := d.client(ctx)
	if err != nil {
		return sharederrors.Remote("cognito client", err)
	}
	_, err = client.AdminDisableUser(ctx, &cip.AdminDisableUserInput{
		UserPoolId: aws.String(d.userPoolID),
		Username:   aws.String(username),
	})
	return sharederrors.Remote("cognito admin disable user", err)
}

func (d *cognitoDirectory) DeleteUser(ctx context.Context, username string) error {
	client, err := d.client(ctx)
	if err != nil {
		return sharederrors.Remote("cognito client", err)
	}
	_, err = client.AdminDeleteUser(ctx, &cip.AdminDeleteUserInput{
		UserPoolId: aws.String(d.userPoolID),
		Username:   aws.String(username),
	})
	return sharederrors.Remote("cognito admin delete user", err)
}
