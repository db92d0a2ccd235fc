// Package kvstore provides the durable key-value capability used to seed and
// mirror client state across sessions.
package kvstore

import "context"

// Store is the persistence contract: plain string values, optional expiry.
// A ttlDays of zero means the entry never expires. Expired entries behave
// as absent.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttlDays int) error
	Remove(ctx context.Context, key string) error
}
