package teardown

import (
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	sharederrors "github.com/usersync/user-lifecycle/shared-libs/errors"
)

// decodeSnapshot reads the pending-expiry record out of a stream image.
// Only userId is required; email and expireAt are informational.
func decodeSnapshot(image map[string]events.DynamoDBAttributeValue) (Snapshot, error) {
	if len(image) == 0 {
		return Snapshot{}, sharederrors.Malformed("decode old image", ErrMissingOldImage)
	}

	userID, ok := stringAttribute(image, "userId")
	if !ok || strings.TrimSpace(userID) == "" {
		return Snapshot{}, sharederrors.Malformed("decode old image", ErrMissingUserID)
	}

	snapshot := Snapshot{UserID: userID}
	snapshot.Email, _ = stringAttribute(image, "email")
	if raw, ok := numberAttribute(image, "expireAt"); ok {
		if expireAt, err := strconv.ParseInt(raw, 10, 64); err == nil {
			snapshot.ExpireAt = expireAt
		}
	}
	return snapshot, nil
}

func stringAttribute(image map[string]events.DynamoDBAttributeValue, name string) (string, bool) {
	value, ok := image[name]
	if !ok || value.DataType() != events.DataTypeString {
		return "", false
	}
	return value.String(), true
}

func numberAttribute(image map[string]events.DynamoDBAttributeValue, name string) (string, bool) {
	value, ok := image[name]
	if !ok || value.DataType() != events.DataTypeNumber {
		return "", false
	}
	return value.Number(), true
}
