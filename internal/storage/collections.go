package storage

import (
	"encoding/json"

	"paisa/internal/logger"
)

// Save serializes records and writes them under the collection's key.
// A failed write is logged and dropped: the in-memory state is authoritative
// and the next successful save will catch up.
func (s *Store) Save(collection string, records any) {
	data, err := json.Marshal(records)
	if err != nil {
		logger.Named("storage").Errorw("serialize failed", "collection", collection, "error", err)
		return
	}
	if err := s.set(collection, string(data)); err != nil {
		logger.Named("storage").Errorw("save failed", "collection", collection, "error", err)
	}
}

// Load reads and deserializes a collection into dest, which must be a
// pointer to a slice. A missing key or malformed content leaves dest
// untouched, so callers start from an empty collection.
func (s *Store) Load(collection string, dest any) {
	raw, ok := s.get(collection)
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Named("storage").Warnw("discarding malformed collection", "collection", collection, "error", err)
	}
}

// SetMeta writes a sync-state value (last sync time, connected flag).
func (s *Store) SetMeta(key, value string) {
	if err := s.set(key, value); err != nil {
		logger.Named("storage").Errorw("meta save failed", "key", key, "error", err)
	}
}

// Meta reads a sync-state value, or "" when absent.
func (s *Store) Meta(key string) string {
	value, _ := s.get(key)
	return value
}
