// Package cache provides a Redis-backed cache for classification results.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"hash"
	"log"
	"time"

	"topiclens/internal/models"
)

// Storage is the subset of the Fiber storage interface the cache needs.
// Satisfied by gofiber/storage implementations (Redis in production).
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
}

// Cache stores classification results keyed by input text and label set.
type Cache struct {
	storage Storage
	ttl     time.Duration
}

// New creates a cache on top of the given storage.
func New(storage Storage, ttl time.Duration) *Cache {
	return &Cache{storage: storage, ttl: ttl}
}

// Key derives a stable cache key from the input text and labels. Every
// field is length-prefixed before hashing so label boundaries can never
// collide with text content.
func Key(text string, labels []string) string {
	h := sha256.New()
	writeField(h, text)
	for _, label := range labels {
		writeField(h, label)
	}
	return "topiclens:extract:" + hex.EncodeToString(h.Sum(nil))
}

func writeField(h hash.Hash, s string) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(s)))
	h.Write(n[:])
	h.Write([]byte(s))
}

// Get returns the cached topics for the key, or nil on miss.
// Storage errors are logged and treated as misses.
func (c *Cache) Get(key string) []models.Topic {
	if c == nil {
		return nil
	}

	data, err := c.storage.Get(key)
	if err != nil {
		log.Printf("Cache get failed: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var topics []models.Topic
	if err := json.Unmarshal(data, &topics); err != nil {
		log.Printf("Cache entry corrupt, ignoring: %v", err)
		return nil
	}
	return topics
}

// Set stores topics under the key. Storage errors are logged and dropped;
// caching is best-effort.
func (c *Cache) Set(key string, topics []models.Topic) {
	if c == nil {
		return
	}

	data, err := json.Marshal(topics)
	if err != nil {
		return
	}
	if err := c.storage.Set(key, data, c.ttl); err != nil {
		log.Printf("Cache set failed: %v", err)
	}
}
