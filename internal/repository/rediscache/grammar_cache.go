package rediscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"letter-drafting-be/pkg/grammar"

	"github.com/redis/go-redis/v9"
)

// GrammarCache memoizes checker responses keyed by a hash of the
// submitted content. Remote checks are slow; identical content
// short-circuits.
type GrammarCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewGrammarCache(rdb *redis.Client) *GrammarCache {
	return &GrammarCache{
		rdb: rdb,
		ttl: 1 * time.Hour,
	}
}

func Key(contents []grammar.Content) string {
	h := sha256.New()
	for _, c := range contents {
		h.Write([]byte(c.ContentID))
		h.Write([]byte{0})
		h.Write([]byte(c.HTML))
		h.Write([]byte{0})
	}
	return "grammar:" + hex.EncodeToString(h.Sum(nil))
}

func (c *GrammarCache) Get(ctx context.Context, key string) ([]grammar.Result, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// Cache trouble is never a reason to fail a check.
			return nil, false
		}
		return nil, false
	}
	var results []grammar.Result
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, false
	}
	return results, true
}

func (c *GrammarCache) Set(ctx context.Context, key string, results []grammar.Result) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(results)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, raw, c.ttl)
}
