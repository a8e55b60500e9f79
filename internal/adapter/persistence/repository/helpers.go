package repository

import (
	"context"
	"encoding/json"
	"log"

	"obrafacil/internal/infrastructure/storage"
)

// Storage keys, one fixed key per entity type.
const (
	keyClients   = "obrafacil:clients"
	keyEstimates = "obrafacil:estimates"
	keyServices  = "obrafacil:services"
)

// loadCollection reads and decodes the full collection stored under key.
// A storage read failure or a corrupt payload degrades to an empty
// collection: to callers a storage outage during a read is indistinguishable
// from "no records yet". Write failures are never swallowed.
func loadCollection[T any](ctx context.Context, store storage.Store, key string) []T {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Printf("[repository] read failed key=%s err=%v", key, err)
		return nil
	}
	if !ok {
		return nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("[repository] decode failed key=%s err=%v", key, err)
		return nil
	}
	return records
}

// saveCollection overwrites the full collection stored under key.
func saveCollection[T any](ctx context.Context, store storage.Store, key string, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(raw))
}
