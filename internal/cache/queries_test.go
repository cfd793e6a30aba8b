package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/haulbid/admin-console/internal/logging"
)

type row struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func TestFetchCachesResult(t *testing.T) {
	q := NewQueries(NewMemoryStore(), time.Minute, logging.Discard())
	ctx := context.Background()

	calls := 0
	fn := func(context.Context) ([]row, error) {
		calls++
		return []row{{ID: "1", Status: "pending"}}, nil
	}

	first, err := Fetch(ctx, q, KeyUsers(), fn)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	second, err := Fetch(ctx, q, KeyUsers(), fn)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected one upstream call, got %d", calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Status != "pending" {
		t.Fatalf("unexpected results: %v %v", first, second)
	}
}

func TestFetchErrorPassesThrough(t *testing.T) {
	q := NewQueries(NewMemoryStore(), time.Minute, logging.Discard())

	wantErr := fmt.Errorf("upstream down")
	_, err := Fetch(context.Background(), q, KeyUsers(), func(context.Context) ([]row, error) {
		return nil, wantErr
	})
	if err == nil || err.Error() != "upstream down" {
		t.Fatalf("expected upstream error, got %v", err)
	}

	// The failure must not poison the cache.
	got, err := Fetch(context.Background(), q, KeyUsers(), func(context.Context) ([]row, error) {
		return []row{{ID: "1"}}, nil
	})
	if err != nil || len(got) != 1 {
		t.Fatalf("expected recovery after error, got %v %v", got, err)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	q := NewQueries(NewMemoryStore(), time.Minute, logging.Discard())
	ctx := context.Background()

	status := "pending"
	calls := 0
	fn := func(context.Context) ([]row, error) {
		calls++
		return []row{{ID: "1", Status: status}}, nil
	}

	if _, err := Fetch(ctx, q, KeyUsers(), fn); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	status = "approved"
	q.Invalidate(ctx, KeyUsers())

	rows, err := Fetch(ctx, q, KeyUsers(), fn)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected refetch after invalidation, got %d calls", calls)
	}
	if rows[0].Status != "approved" {
		t.Fatalf("expected refreshed status, got %s", rows[0].Status)
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	q := NewQueries(NewRedisStore(client), time.Minute, logging.Discard())
	ctx := context.Background()

	calls := 0
	fn := func(context.Context) ([]row, error) {
		calls++
		return []row{{ID: "s1", Status: "LIVE"}}, nil
	}

	if _, err := Fetch(ctx, q, KeyShipments(), fn); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if _, err := Fetch(ctx, q, KeyShipments(), fn); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one upstream call, got %d", calls)
	}

	q.Invalidate(ctx, KeyShipments())
	if _, err := Fetch(ctx, q, KeyShipments(), fn); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected refetch after invalidation, got %d calls", calls)
	}
}

func TestFetchFailsOpenWhenRedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	q := NewQueries(NewRedisStore(client), time.Minute, logging.Discard())

	mr.Close() // simulate an unreachable cache

	rows, err := Fetch(context.Background(), q, KeyUsers(), func(context.Context) ([]row, error) {
		return []row{{ID: "1"}}, nil
	})
	if err != nil {
		t.Fatalf("expected fail-open fetch, got %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected upstream result, got %v", rows)
	}
}

func TestKeys(t *testing.T) {
	if KeyUsers() != "admin:users" {
		t.Fatalf("unexpected users key %q", KeyUsers())
	}
	if KeyShipmentDetails("s1") != "admin:shipments:s1" {
		t.Fatalf("unexpected detail key %q", KeyShipmentDetails("s1"))
	}
	if KeyUserPayments("u1") != "admin:users:u1:payments" {
		t.Fatalf("unexpected payments key %q", KeyUserPayments("u1"))
	}
}
