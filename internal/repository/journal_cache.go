package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"chef_brigade_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

// JournalCache is the best-effort offline mirror of a member's journal. Each
// member's entries live under one key as a JSON array, so every mutation is a
// read-modify-write of the whole list. Last writer wins; the cache is never
// reconciled back into the primary store.
type JournalCache struct {
	Redis *redis.Client
}

func NewJournalCache(rdb *redis.Client) *JournalCache {
	return &JournalCache{Redis: rdb}
}

func cacheKey(userID uint) string {
	return fmt.Sprintf("journal_entries_%d", userID)
}

func (c *JournalCache) List(ctx context.Context, userID uint) ([]model.JournalEntry, error) {
	raw, err := c.Redis.Get(ctx, cacheKey(userID)).Result()
	if err == redis.Nil {
		return []model.JournalEntry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []model.JournalEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (c *JournalCache) Insert(ctx context.Context, entry *model.JournalEntry) error {
	entries, err := c.List(ctx, entry.UserID)
	if err != nil {
		return err
	}
	entries = append([]model.JournalEntry{*entry}, entries...)
	return c.write(ctx, entry.UserID, entries)
}

func (c *JournalCache) Save(ctx context.Context, entry *model.JournalEntry) error {
	entries, err := c.List(ctx, entry.UserID)
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = *entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append([]model.JournalEntry{*entry}, entries...)
	}
	return c.write(ctx, entry.UserID, entries)
}

func (c *JournalCache) Delete(ctx context.Context, userID uint, entryID string) error {
	entries, err := c.List(ctx, userID)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	return c.write(ctx, userID, kept)
}

// Replace overwrites the mirror with the authoritative list after a
// successful primary mutation.
func (c *JournalCache) Replace(ctx context.Context, userID uint, entries []model.JournalEntry) error {
	return c.write(ctx, userID, entries)
}

func (c *JournalCache) write(ctx context.Context, userID uint, entries []model.JournalEntry) error {
	if entries == nil {
		entries = []model.JournalEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, cacheKey(userID), raw, 0).Err()
}
