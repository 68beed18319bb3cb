package storage

import "context"

// Logical keys of the persisted state.
const (
	KeyUser      = "user"
	KeyCampaigns = "campaigns"
)

// Store is the key-value persistence adapter. Values are serialized to JSON
// under a logical key; the whole value is overwritten on every Save.
//
// Load reports absence rather than failing: a missing or corrupt entry
// returns (false, nil) and the caller supplies its default. Only transport
// errors (the store itself being unusable) surface as errors, and callers
// are expected to degrade to in-memory operation on them.
type Store interface {
	Save(ctx context.Context, key string, value any) error
	Load(ctx context.Context, key string, out any) (bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
