package cache

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New(5 * time.Minute)
	c.Set(Key("quote", "AAPL"), 42)

	got, ok := c.Get(Key("quote", "AAPL"))
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.(int) != 42 {
		t.Errorf("value = %v, want 42", got)
	}
}

func TestCache_MissOnAbsentKey(t *testing.T) {
	c := New(5 * time.Minute)
	if _, ok := c.Get(Key("quote", "MSFT")); ok {
		t.Error("expected miss for absent key")
	}
}

func TestCache_ExpiryWithInjectedClock(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(300*time.Second, func() time.Time { return now })

	c.Set(Key("quote", "AAPL"), "cached")

	now = now.Add(299 * time.Second)
	if _, ok := c.Get(Key("quote", "AAPL")); !ok {
		t.Error("expected hit just before expiry")
	}

	now = now.Add(2 * time.Second)
	if _, ok := c.Get(Key("quote", "AAPL")); ok {
		t.Error("expected miss after TTL elapsed")
	}
}

func TestCache_KeyComposition(t *testing.T) {
	a := Key("history", "AAPL", "1y", "1d")
	b := Key("history", "AAPL", "1y", "1wk")
	if a == b {
		t.Error("keys with different args must differ")
	}
	if a != "history:AAPL:1y:1d" {
		t.Errorf("Key = %q", a)
	}
}

func TestCache_OverwriteRefreshesValue(t *testing.T) {
	c := New(time.Minute)
	key := Key("quote", "TSLA")
	c.Set(key, 1)
	c.Set(key, 2)

	got, ok := c.Get(key)
	if !ok || got.(int) != 2 {
		t.Errorf("Get = %v, %v; want 2, true", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCache_Purge(t *testing.T) {
	c := New(time.Minute)
	c.Set(Key("quote", "AAPL"), 1)
	c.Set(Key("quote", "MSFT"), 2)
	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len after Purge = %d, want 0", c.Len())
	}
}
