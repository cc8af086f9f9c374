package cache

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	key := Key("search", "clean water act $5 million")
	if !strings.HasPrefix(key, "presscheck:v1:search:") {
		t.Errorf("Unexpected key prefix: %q", key)
	}
	if key != Key("search", "clean water act $5 million") {
		t.Error("Keys must be deterministic")
	}
	if key == Key("fetch", "clean water act $5 million") {
		t.Error("Different kinds must produce different keys")
	}
	if key == Key("search", "other query") {
		t.Error("Different values must produce different keys")
	}
}

func TestMemoryCache_Roundtrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	if _, found := c.Get("missing"); found {
		t.Error("Expected a miss for an unset key")
	}

	if err := c.Set("k", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, found := c.Get("k")
	if !found || !bytes.Equal(got, []byte("value")) {
		t.Errorf("Expected hit with 'value', got %q (found=%v)", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected a miss after delete")
	}
}

func TestDiskCache_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	first := NewDiskCache(dir, time.Hour)
	if err := first.Set(Key("fetch", "https://example.com"), []byte("page body"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	second := NewDiskCache(dir, time.Hour)
	got, found := second.Get(Key("fetch", "https://example.com"))
	if !found || string(got) != "page body" {
		t.Errorf("Expected persisted value, got %q (found=%v)", got, found)
	}
}

func TestDiskCache_ExpiredEntryRemovedOnRead(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	if err := c.Set("stale", []byte("old"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Rewrite the entry with an expiry in the past.
	path := c.path("stale")
	data, err := json.Marshal(diskEntry{Data: []byte("old"), ExpiresAt: time.Now().Add(-time.Minute)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, found := c.Get("stale"); found {
		t.Error("Expected expired entry to miss")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected expired entry file to be removed")
	}
}

func TestDiskCache_CorruptEntryMisses(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := os.WriteFile(c.path("k"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Corrupt entries must read as misses")
	}
}

func TestDiskCache_Clear(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected a miss after clear")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Drop the memory layer; the next read must come from disk and promote.
	if err := c.memory.Clear(); err != nil {
		t.Fatalf("clear memory: %v", err)
	}
	got, found := c.Get("k")
	if !found || string(got) != "v" {
		t.Fatalf("Expected disk hit, got %q (found=%v)", got, found)
	}

	if _, found := c.memory.Get("k"); !found {
		t.Error("Disk hit should be promoted into memory")
	}
}

func TestLayeredCache_DeleteRemovesBothLayers(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected a miss after delete")
	}
}
