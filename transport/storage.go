package transport

import (
	"context"
	"errors"

	paykittypes "github.com/vitwit/paykit/types"
)

// ErrNotFound is the sentinel a Storage implementation returns (possibly
// wrapped) when an address holds nothing: a missing document on Get or
// Delete, a missing directory on List.
var ErrNotFound = errors.New("not found")

// Storage is the boundary to the underlying key-addressable storage
// network. Implementations handle connection setup, authentication and byte
// transport; this package only composes the four primitives.
type Storage interface {
	// Get fetches the raw content stored at addr. Absence is ErrNotFound.
	Get(ctx context.Context, addr string) ([]byte, error)

	// List enumerates the direct children of the directory at addr
	// (shallow, never recursive). A missing directory is ErrNotFound.
	List(ctx context.Context, addr string) ([]paykittypes.Resource, error)

	// Put creates or replaces the content at addr.
	Put(ctx context.Context, addr string, body []byte) error

	// Delete removes the content at addr. Deleting an absent address is
	// ErrNotFound, not success.
	Delete(ctx context.Context, addr string) error
}

// IsNotFound reports whether err signals an absent address. Every
// network-boundary call site classifies through this one function so the
// "not-found is not an error" policy cannot drift between operations.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
