package transport

import (
	"context"

	paykittypes "github.com/vitwit/paykit/types"
)

// Writer publishes into the session owner's own paykit namespace over an
// authenticated Storage. Stateless and safe for concurrent use.
type Writer struct {
	store Storage
	owner paykittypes.PublicKey
}

// NewWriter wraps an authenticated Storage in an AuthTransport. The owner
// key selects the namespace the session is allowed to write.
func NewWriter(store Storage, owner paykittypes.PublicKey) *Writer {
	return &Writer{store: store, owner: owner}
}

// Owner returns the public key whose namespace this writer mutates.
func (w *Writer) Owner() paykittypes.PublicKey { return w.owner }

// UpsertPaymentEndpoint creates or replaces the endpoint document for
// method. Idempotent.
func (w *Writer) UpsertPaymentEndpoint(ctx context.Context, method paykittypes.MethodID, data paykittypes.EndpointData) error {
	addr := EndpointAddr(w.owner, method)
	if err := w.store.Put(ctx, addr, []byte(data)); err != nil {
		return paykittypes.TransportErrorf("put endpoint: %v", err)
	}
	return nil
}

// RemovePaymentEndpoint deletes the endpoint document for method. Unlike
// the read side, absence here is a hard failure: deleting something that
// does not exist is a caller error and is reported upward.
func (w *Writer) RemovePaymentEndpoint(ctx context.Context, method paykittypes.MethodID) error {
	addr := EndpointAddr(w.owner, method)
	if err := w.store.Delete(ctx, addr); err != nil {
		return paykittypes.TransportErrorf("delete endpoint: %v", err)
	}
	return nil
}
