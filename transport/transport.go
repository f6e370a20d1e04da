// Package transport defines the capability contracts paykit operations run
// against, the storage-network boundary they are resolved over, and the
// reference resolution logic that turns raw directory listings into typed
// domain values.
//
// Callers either implement ReadTransport/AuthTransport directly, or
// implement the narrower Storage interface and wrap it with NewReader and
// NewWriter.
package transport

import (
	"context"

	paykittypes "github.com/vitwit/paykit/types"
)

// ReadTransport describes read-only, unauthenticated access to published
// paykit data.
type ReadTransport interface {
	// FetchSupportedPayments returns every payment method the payee
	// currently publishes. A payee that has published nothing yields an
	// empty collection, not an error.
	FetchSupportedPayments(ctx context.Context, payee paykittypes.PublicKey) (paykittypes.SupportedPayments, error)

	// FetchPaymentEndpoint returns the endpoint document for one method,
	// or nil when the document is absent or empty.
	FetchPaymentEndpoint(ctx context.Context, payee paykittypes.PublicKey, method paykittypes.MethodID) (*paykittypes.EndpointData, error)

	// FetchKnownContacts returns the public keys the owner follows. A
	// missing follows directory yields an empty slice; an entry whose name
	// does not parse as a public key fails the whole call.
	FetchKnownContacts(ctx context.Context, owner paykittypes.PublicKey) ([]paykittypes.PublicKey, error)
}

// AuthTransport describes authenticated write access to the caller's own
// paykit namespace. Session establishment lives outside this package.
type AuthTransport interface {
	// UpsertPaymentEndpoint creates or replaces the endpoint document for
	// the method. Idempotent.
	UpsertPaymentEndpoint(ctx context.Context, method paykittypes.MethodID, data paykittypes.EndpointData) error

	// RemovePaymentEndpoint deletes the endpoint document for the method.
	// Removing a method that was never published is an error, not a no-op.
	RemovePaymentEndpoint(ctx context.Context, method paykittypes.MethodID) error
}
