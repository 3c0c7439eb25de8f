package clients

import (
	"context"
	"errors"
	"testing"
)

type stubClient struct{ id int }

func TestHandle_BuildsOnce(t *testing.T) {
	builds := 0
	h := NewHandle(func(context.Context) (*stubClient, error) {
		builds++
		return &stubClient{id: builds}, nil
	})

	first, err := h.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	second, err := h.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	if builds != 1 {
		t.Fatalf("expected a single build, got %d", builds)
	}
	if first != second {
		t.Fatalf("expected the same client to be reused")
	}
}

func TestHandle_RetriesAfterFailedBuild(t *testing.T) {
	wantErr := errors.New("no credentials")
	attempts := 0
	h := NewHandle(func(context.Context) (*stubClient, error) {
		attempts++
		if attempts == 1 {
			return nil, wantErr
		}
		return &stubClient{id: attempts}, nil
	})

	if _, err := h.Get(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	client, err := h.Get(context.Background())
	if err != nil {
		t.Fatalf("second Get returned error: %v", err)
	}
	if client.id != 2 {
		t.Fatalf("expected client from second build, got %+v", client)
	}
}
