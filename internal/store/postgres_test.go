package store

import (
	"context"
	"testing"
	"time"
)

func TestConnect_EmptyURLRunsDisconnected(t *testing.T) {
	s, err := Connect(context.Background(), "")
	if err != nil {
		t.Fatalf("Connect() with empty URL should not error: %v", err)
	}
	defer s.Close()

	if s.Connected() {
		t.Error("store with empty URL should be disconnected")
	}
}

func TestDisconnectedStore_NoOpSemantics(t *testing.T) {
	s := &Postgres{}
	ctx := context.Background()

	if err := s.SetWithExpiry(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Errorf("SetWithExpiry() on disconnected store should be a no-op: %v", err)
	}

	_, ok, err := s.Get(ctx, "k")
	if err != nil {
		t.Errorf("Get() on disconnected store should not error: %v", err)
	}
	if ok {
		t.Error("Get() on disconnected store should report absent")
	}

	existed, err := s.Delete(ctx, "k")
	if err != nil || existed {
		t.Errorf("Delete() on disconnected store = (%v, %v), want (false, nil)", existed, err)
	}

	if err := s.PushRecent(ctx, "list", "id", 10); err != nil {
		t.Errorf("PushRecent() on disconnected store should be a no-op: %v", err)
	}

	items, err := s.ListRecent(ctx, "list", 10)
	if err != nil || items != nil {
		t.Errorf("ListRecent() on disconnected store = (%v, %v), want (nil, nil)", items, err)
	}

	if err := s.Ping(ctx); err == nil {
		t.Error("Ping() on disconnected store should error")
	}
}
