package enrollment

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	sharederrors "github.com/usersync/user-lifecycle/shared-libs/errors"
)

type firestoreRepository struct {
	client     func(context.Context) (*firestore.Client, error)
	collection string
}

// NewFirestoreRepository stores records as documents keyed by user id in collection.
func NewFirestoreRepository(client func(context.Context) (*firestore.Client, error), collection string) Repository {
	return &firestoreRepository{client: client, collection: collection}
}

func (r *firestoreRepository) Put(ctx context.Context, record Record) error {
	if record.UserID == "" {
		return sharederrors.Malformed("put record", ErrMissingUserID)
	}

	client, err := r.client(ctx)
	if err != nil {
		return sharederrors.Remote("firestore client", err)
	}

	if _, err := client.Collection(r.collection).Doc(record.UserID).Set(ctx, toFirestoreDoc(record)); err != nil {
		return sharederrors.Remote("firestore set", err)
	}
	return nil
}

// toFirestoreDoc maps a record onto document fields. expireAt is a timestamp so
// a TTL policy on that field can sweep it; an empty email is left out.
func toFirestoreDoc(record Record) map[string]interface{} {
	data := map[string]interface{}{
		"userId":    record.UserID,
		"createdAt": record.CreatedAt,
		"expireAt":  time.Unix(record.ExpireAt, 0).UTC(),
	}
	if record.Email != "" {
		data["email"] = record.Email
	}
	return data
}
