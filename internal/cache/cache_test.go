package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	k1 := Key("Payment within 30 days.")
	k2 := Key("Payment within 30 days.")
	k3 := Key("Payment within 60 days.")

	if k1 != k2 {
		t.Error("expected identical text to produce identical keys")
	}
	if k1 == k3 {
		t.Error("expected different text to produce different keys")
	}
	if !strings.HasPrefix(k1, "clausescreen:v1:") {
		t.Errorf("expected versioned key prefix, got %q", k1)
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("3"), time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "3" {
		t.Errorf("expected hit with value '3', got %q found=%v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("7"), time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "7" {
		t.Errorf("expected hit with value '7', got %q found=%v", val, found)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("7"), -time.Second); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesFromDisk(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	// Seed only the disk layer
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", []byte("5"), time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "5" {
		t.Fatalf("expected layered hit from disk, got %q found=%v", val, found)
	}

	// Now it must also be in memory
	mem := c.memory
	if _, found := mem.Get("k"); !found {
		t.Error("expected value promoted to memory layer")
	}
}
