package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/eventhub/pkg/helpers"
)

func TestInvitationKeyNormalizes(t *testing.T) {
	if got := invitationKey(" ab12cd "); got != "group:invite:AB12CD" {
		t.Fatalf("invitationKey = %q", got)
	}
}

// Runs against a real redis when EVENTHUB_TEST_REDIS_ADDR is set.
func TestInvitationCodesRedis(t *testing.T) {
	addr := os.Getenv("EVENTHUB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("EVENTHUB_TEST_REDIS_ADDR not set")
	}
	rdb := helpers.NewRedisClient(addr, "", 0)
	t.Cleanup(func() { _ = rdb.Close() })
	ctx := context.Background()
	idx := NewInvitationCodes(rdb, time.Minute)

	code := uuid.NewString()[:8]
	if _, found, err := idx.Lookup(ctx, code); err != nil || found {
		t.Fatalf("lookup before put = %v, %v", found, err)
	}
	if err := idx.Put(ctx, code, "group-1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	id, found, err := idx.Lookup(ctx, code)
	if err != nil || !found || id != "group-1" {
		t.Fatalf("lookup = %q, %v, %v", id, found, err)
	}
	ttl, err := rdb.TTL(ctx, invitationKey(code)).Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Fatalf("ttl = %v, %v", ttl, err)
	}
	if err := idx.Delete(ctx, code); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := idx.Lookup(ctx, code); found {
		t.Fatalf("code still indexed after delete")
	}
}
