package convstate

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	got, err := store.Get(ctx, "+911111111111")
	if err != nil || got != nil {
		t.Fatalf("expected no context, got (%+v, %v)", got, err)
	}

	state := &Context{
		Phone:  "+911111111111",
		Intent: IntentFranchise,
		Stage:  StageCollectingName,
	}
	if err := store.Set(ctx, state); err != nil {
		t.Fatal(err)
	}

	got, err = store.Get(ctx, "+911111111111")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Intent != IntentFranchise || got.Stage != StageCollectingName {
		t.Fatalf("unexpected context %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not stamped")
	}
}

func TestMemoryStoreLazyExpiry(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	base := time.Now()
	store.now = func() time.Time { return base }
	ctx := context.Background()

	if err := store.Set(ctx, &Context{Phone: "+91", Intent: IntentServices}); err != nil {
		t.Fatal(err)
	}

	// 29 minutes of silence keeps the context alive.
	store.now = func() time.Time { return base.Add(29 * time.Minute) }
	if got, _ := store.Get(ctx, "+91"); got == nil {
		t.Fatal("context expired too early")
	}

	// 31 minutes of silence reaps it on the next Get.
	store.now = func() time.Time { return base.Add(31 * time.Minute) }
	if got, _ := store.Get(ctx, "+91"); got != nil {
		t.Fatalf("expected expiry, got %+v", got)
	}
	if store.Len() != 0 {
		t.Error("expired context not deleted")
	}
}

func TestMemoryStoreSetReplacesDraft(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	if err := store.Set(ctx, &Context{
		Phone:  "+91",
		Intent: IntentFranchise,
		Stage:  StageCollectingEmail,
		Draft:  Draft{Name: "Asha", Location: "Chennai"},
	}); err != nil {
		t.Fatal(err)
	}

	// A fresh context for the same phone must not inherit the old draft.
	if err := store.Set(ctx, &Context{Phone: "+91", Intent: IntentNone}); err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, "+91")
	if err != nil {
		t.Fatal(err)
	}
	if got.Stage != StageNone || got.Draft.Name != "" {
		t.Fatalf("stale draft leaked into fresh context: %+v", got)
	}
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()
	if err := store.Set(ctx, &Context{Phone: "+91", Intent: IntentServices}); err != nil {
		t.Fatal(err)
	}
	got, _ := store.Get(ctx, "+91")
	got.Intent = IntentFranchise

	again, _ := store.Get(ctx, "+91")
	if again.Intent != IntentServices {
		t.Error("Get must return a copy, not shared state")
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	got, err := store.Get(ctx, "+92")
	if err != nil || got != nil {
		t.Fatalf("expected no context, got (%+v, %v)", got, err)
	}

	if err := store.Set(ctx, &Context{
		Phone:  "+92",
		Intent: IntentFranchise,
		Stage:  StageCollectingDetails,
		Draft:  Draft{Name: "Ravi", Location: "Madurai", Email: "Not provided"},
	}); err != nil {
		t.Fatal(err)
	}

	got, err = store.Get(ctx, "+92")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Draft.Name != "Ravi" || got.Stage != StageCollectingDetails {
		t.Fatalf("unexpected context %+v", got)
	}

	if err := store.Clear(ctx, "+92"); err != nil {
		t.Fatal(err)
	}
	if got, _ := store.Get(ctx, "+92"); got != nil {
		t.Fatalf("expected cleared context, got %+v", got)
	}
}

func TestRedisStoreTTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, 30*time.Minute)
	ctx := context.Background()

	if err := store.Set(ctx, &Context{Phone: "+93", Intent: IntentServices}); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(31 * time.Minute)

	if got, _ := store.Get(ctx, "+93"); got != nil {
		t.Fatalf("expected TTL expiry, got %+v", got)
	}
}

func TestRedisStoreCorruptBlobDropsContext(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	mr.Set(contextKey("+94"), "{not json")

	got, err := store.Get(ctx, "+94")
	if err != nil || got != nil {
		t.Fatalf("corrupt blob should read as no context, got (%+v, %v)", got, err)
	}
	if mr.Exists(contextKey("+94")) {
		t.Error("corrupt blob should be deleted")
	}
}
