// Package store persists session blobs. The blob content is opaque here;
// encoding and versioning belong to the session package.
package store

import (
	"context"
	"errors"
)

// ErrNoSession reports that no session has been saved under the given key.
var ErrNoSession = errors.New("no saved session")

// SessionStore loads and saves session blobs by key.
type SessionStore interface {
	// Load returns the blob saved under key, or ErrNoSession.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save stores the blob under key, replacing any previous save.
	Save(ctx context.Context, key string, data []byte) error
}
