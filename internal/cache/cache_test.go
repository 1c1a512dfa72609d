package cache

import (
	"context"
	"testing"
	"time"
)

func TestKeySeparatesAdjacentParts(t *testing.T) {
	a := Key("renovation", "kitchen", 200, "standard", "Delhi", "full remodel")
	b := Key("renovation", "kitchen", 200, "standardD", "elhi", "full remodel")
	if a == b {
		t.Fatalf("distinct inputs collide: %s", a)
	}
}

func TestKeyStable(t *testing.T) {
	if Key("construction", "residential", 1800) != Key("construction", "residential", 1800) {
		t.Error("same inputs produced different keys")
	}
	if Key("a") == Key("b") {
		t.Error("different inputs produced the same key")
	}
}

func TestNilCacheIsDisabled(t *testing.T) {
	ctx := context.Background()
	var c *Cache

	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("nil cache returned a hit")
	}
	c.Set(ctx, "k", "v", time.Minute)
	if !c.Allow(ctx, "k", 1, time.Minute) {
		t.Error("nil cache should not rate limit")
	}
}

func TestNewWithoutURL(t *testing.T) {
	if New("") != nil {
		t.Error("empty url should disable the cache")
	}
	if New("not a url") != nil {
		t.Error("bad url should disable the cache")
	}
}
