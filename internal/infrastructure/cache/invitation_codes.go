package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/eventhub/pkg/helpers"
)

const invitationKeyPrefix = "group:invite:"

// InvitationCodes maps invitation codes to group ids in redis.
type InvitationCodes struct {
	rdb redis.Cmdable
	ttl time.Duration
}

type invitationEntry struct {
	GroupID string `json:"group_id"`
}

// NewInvitationCodes returns an index whose entries expire after ttl; zero keeps them.
func NewInvitationCodes(rdb redis.Cmdable, ttl time.Duration) *InvitationCodes {
	return &InvitationCodes{rdb: rdb, ttl: ttl}
}

func invitationKey(code string) string {
	return invitationKeyPrefix + strings.ToUpper(strings.TrimSpace(code))
}

func (c *InvitationCodes) Put(ctx context.Context, code, groupID string) error {
	return helpers.RedisSetJSON(ctx, c.rdb, invitationKey(code), invitationEntry{GroupID: groupID}, c.ttl)
}

func (c *InvitationCodes) Lookup(ctx context.Context, code string) (string, bool, error) {
	var e invitationEntry
	found, err := helpers.RedisGetJSON(ctx, c.rdb, invitationKey(code), &e)
	if err != nil || !found {
		return "", false, err
	}
	return e.GroupID, e.GroupID != "", nil
}

func (c *InvitationCodes) Delete(ctx context.Context, code string) error {
	return helpers.RedisDel(ctx, c.rdb, invitationKey(code))
}
