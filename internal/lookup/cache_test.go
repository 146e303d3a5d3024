package lookup

import (
	"testing"
	"time"
)

func TestCachePutGet(t *testing.T) {
	c, err := OpenCache(":memory:", time.Hour)
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	defer c.Close()

	if _, ok := c.Get("recursion"); ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := c.Put("recursion", "a function calling itself"); err != nil {
		t.Fatalf("putting summary: %v", err)
	}
	got, ok := c.Get("recursion")
	if !ok || got != "a function calling itself" {
		t.Fatalf("Get = %q, %v; want stored summary", got, ok)
	}

	// Put replaces an existing entry.
	if err := c.Put("recursion", "see recursion"); err != nil {
		t.Fatalf("replacing summary: %v", err)
	}
	if got, _ := c.Get("recursion"); got != "see recursion" {
		t.Fatalf("Get after replace = %q", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	c, err := OpenCache(":memory:", time.Nanosecond)
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	defer c.Close()

	if err := c.Put("ephemeral", "gone soon"); err != nil {
		t.Fatalf("putting summary: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok := c.Get("ephemeral"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestCacheOnDisk(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenCache(dir, 0)
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	defer c.Close()

	if err := c.Put("on disk", "persisted"); err != nil {
		t.Fatalf("putting summary: %v", err)
	}
	if got, ok := c.Get("on disk"); !ok || got != "persisted" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
}
