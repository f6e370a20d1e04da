package transport

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	paykittypes "github.com/vitwit/paykit/types"
)

func testKey(b byte) paykittypes.PublicKey {
	return paykittypes.PublicKeyFromBytes(ed25519.PublicKey(bytes.Repeat([]byte{b}, ed25519.PublicKeySize)))
}

// stubStorage lets individual cases script boundary behavior.
type stubStorage struct {
	get    func(ctx context.Context, addr string) ([]byte, error)
	list   func(ctx context.Context, addr string) ([]paykittypes.Resource, error)
	put    func(ctx context.Context, addr string, body []byte) error
	delete func(ctx context.Context, addr string) error
}

func (s *stubStorage) Get(ctx context.Context, addr string) ([]byte, error) {
	return s.get(ctx, addr)
}

func (s *stubStorage) List(ctx context.Context, addr string) ([]paykittypes.Resource, error) {
	return s.list(ctx, addr)
}

func (s *stubStorage) Put(ctx context.Context, addr string, body []byte) error {
	return s.put(ctx, addr, body)
}

func (s *stubStorage) Delete(ctx context.Context, addr string) error {
	return s.delete(ctx, addr)
}

func TestFetchSupportedPaymentsEmptyPayee(t *testing.T) {
	req := require.New(t)
	reader := NewReader(NewMemoryStore(), nil)

	payments, err := reader.FetchSupportedPayments(context.Background(), testKey(1))
	req.NoError(err)
	req.True(payments.IsEmpty())
}

func TestFetchSupportedPayments(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	payee := testKey(1)
	store := NewMemoryStore()

	req.NoError(store.Put(ctx, EndpointAddr(payee, "onchain"), []byte(`{"address":"bc1..."}`)))
	req.NoError(store.Put(ctx, EndpointAddr(payee, "lightning"), []byte(`{"bolt11":"ln..."}`)))

	payments, err := NewReader(store, nil).FetchSupportedPayments(ctx, payee)
	req.NoError(err)
	req.Equal(map[paykittypes.MethodID]paykittypes.EndpointData{
		"onchain":   `{"address":"bc1..."}`,
		"lightning": `{"bolt11":"ln..."}`,
	}, payments.Entries)
}

func TestFetchSupportedPaymentsSkipsDirectoriesAndEmptyBodies(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	payee := testKey(1)
	store := NewMemoryStore()

	req.NoError(store.Put(ctx, EndpointAddr(payee, "lightning"), []byte("lnurl...")))
	// Empty body: listed, then skipped during aggregation.
	req.NoError(store.Put(ctx, EndpointAddr(payee, "stale"), nil))
	// Deeper entry: the shallow listing reports only a directory marker.
	req.NoError(store.Put(ctx, PaymentListAddr(payee)+"nested/doc", []byte("x")))

	payments, err := NewReader(store, nil).FetchSupportedPayments(ctx, payee)
	req.NoError(err)
	req.Equal(map[paykittypes.MethodID]paykittypes.EndpointData{
		"lightning": "lnurl...",
	}, payments.Entries)
}

func TestFetchSupportedPaymentsMalformedEntry(t *testing.T) {
	req := require.New(t)
	payee := testKey(1)
	store := &stubStorage{
		list: func(context.Context, string) ([]paykittypes.Resource, error) {
			return []paykittypes.Resource{{Path: "", Addr: PaymentListAddr(payee)}}, nil
		},
	}

	_, err := NewReader(store, nil).FetchSupportedPayments(context.Background(), payee)
	req.Error(err)
	req.Contains(err.Error(), "invalid resource")
	req.True(paykittypes.IsTransport(err))
}

func TestFetchSupportedPaymentsListFailure(t *testing.T) {
	req := require.New(t)
	store := &stubStorage{
		list: func(context.Context, string) ([]paykittypes.Resource, error) {
			return nil, errors.New("connection reset")
		},
	}

	_, err := NewReader(store, nil).FetchSupportedPayments(context.Background(), testKey(1))
	req.Error(err)
	req.Contains(err.Error(), "list supported payments")
	req.True(paykittypes.IsTransport(err))
}

func TestFetchPaymentEndpoint(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	payee := testKey(1)
	store := NewMemoryStore()

	// Absent document.
	data, err := NewReader(store, nil).FetchPaymentEndpoint(ctx, payee, "lightning")
	req.NoError(err)
	req.Nil(data)

	req.NoError(store.Put(ctx, EndpointAddr(payee, "lightning"), []byte("lnurl...")))
	data, err = NewReader(store, nil).FetchPaymentEndpoint(ctx, payee, "lightning")
	req.NoError(err)
	req.NotNil(data)
	req.Equal(paykittypes.EndpointData("lnurl..."), *data)

	// Present but empty counts as absent.
	req.NoError(store.Put(ctx, EndpointAddr(payee, "empty"), nil))
	data, err = NewReader(store, nil).FetchPaymentEndpoint(ctx, payee, "empty")
	req.NoError(err)
	req.Nil(data)
}

func TestFetchPaymentEndpointRejectsBinary(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	payee := testKey(1)
	store := NewMemoryStore()

	req.NoError(store.Put(ctx, EndpointAddr(payee, "raw"), []byte{0xff, 0xfe, 0xfd}))

	_, err := NewReader(store, nil).FetchPaymentEndpoint(ctx, payee, "raw")
	req.Error(err)
	req.Contains(err.Error(), "UTF-8")
}

func TestFetchKnownContacts(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	owner := testKey(1)
	contactA := testKey(2)
	contactB := testKey(3)
	store := NewMemoryStore()

	reader := NewReader(store, nil)

	contacts, err := reader.FetchKnownContacts(ctx, owner)
	req.NoError(err)
	req.Empty(contacts)

	req.NoError(store.Put(ctx, ContactAddr(owner, contactA), nil))
	req.NoError(store.Put(ctx, ContactAddr(owner, contactB), nil))

	contacts, err = reader.FetchKnownContacts(ctx, owner)
	req.NoError(err)
	req.Len(contacts, 2)
	req.Contains(contacts, contactA)
	req.Contains(contacts, contactB)
}

func TestFetchKnownContactsMalformedEntry(t *testing.T) {
	req := require.New(t)
	owner := testKey(1)
	store := &stubStorage{
		list: func(context.Context, string) ([]paykittypes.Resource, error) {
			return []paykittypes.Resource{{
				Path: FollowsPathPrefix + "not-a-key",
				Addr: ContactListAddr(owner) + "not-a-key",
			}}, nil
		},
	}

	_, err := NewReader(store, nil).FetchKnownContacts(context.Background(), owner)
	req.Error(err)
	req.Contains(err.Error(), `invalid contact entry "not-a-key"`)
	req.True(paykittypes.IsTransport(err))
}
