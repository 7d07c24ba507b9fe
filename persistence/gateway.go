package persistence

import "context"

// Gateway is the durable key/value port the auth store persists through.
// Values are JSON documents. A missing key is reported with ok == false,
// not an error; errors are reserved for the backing store misbehaving.
type Gateway interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
