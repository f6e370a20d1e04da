package transport

import (
	"context"
	"unicode/utf8"

	"github.com/vitwit/paykit/logger"
	paykittypes "github.com/vitwit/paykit/types"
)

// Reader resolves published paykit data over any Storage implementation. It
// is stateless and safe for concurrent use.
type Reader struct {
	store Storage
	log   logger.Logger
}

// NewReader wraps a Storage in a ReadTransport.
func NewReader(store Storage, log logger.Logger) *Reader {
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &Reader{store: store, log: log}
}

// FetchSupportedPayments lists the payee's endpoint directory and fetches
// every document in it.
//
// A missing directory resolves to an empty collection. Pseudo-directory
// entries are skipped. An entry whose body turns out empty or absent after
// listing is skipped as well: it is a race with a concurrent delete, not a
// failure. A listing entry with no extractable trailing segment fails the
// whole call, since it means the network handed back something outside the
// layout convention.
func (r *Reader) FetchSupportedPayments(ctx context.Context, payee paykittypes.PublicKey) (paykittypes.SupportedPayments, error) {
	entries, err := r.list(ctx, PaymentListAddr(payee), "list supported payments")
	if err != nil {
		return paykittypes.SupportedPayments{}, err
	}

	payments := paykittypes.NewSupportedPayments()
	for _, res := range entries {
		if res.IsDir() {
			continue
		}
		name, ok := res.Name()
		if !ok {
			return paykittypes.SupportedPayments{}, paykittypes.TransportErrorf(
				"invalid resource returned for supported payment entry: %q", res.Path)
		}

		payload, err := r.fetchText(ctx, res.Addr, "fetch endpoint "+name)
		if err != nil {
			return paykittypes.SupportedPayments{}, err
		}
		if payload == nil {
			// Listed but already gone or still empty; treat as a
			// concurrent deletion and move on.
			r.log.Debug("skipping listed endpoint with empty body", map[string]any{
				"method": name,
			})
			continue
		}
		payments.Entries[paykittypes.MethodID(name)] = paykittypes.EndpointData(*payload)
	}
	return payments, nil
}

// FetchPaymentEndpoint fetches one endpoint document. Absent or empty
// documents yield nil without error.
func (r *Reader) FetchPaymentEndpoint(ctx context.Context, payee paykittypes.PublicKey, method paykittypes.MethodID) (*paykittypes.EndpointData, error) {
	payload, err := r.fetchText(ctx, EndpointAddr(payee, method), "fetch endpoint")
	if err != nil || payload == nil {
		return nil, err
	}
	data := paykittypes.EndpointData(*payload)
	return &data, nil
}

// FetchKnownContacts lists the owner's follows directory and parses every
// marker filename as a public key. A missing directory yields an empty
// slice; a filename that does not parse fails the call naming the entry,
// since an unparseable contact likely means protocol drift worth surfacing.
func (r *Reader) FetchKnownContacts(ctx context.Context, owner paykittypes.PublicKey) ([]paykittypes.PublicKey, error) {
	entries, err := r.list(ctx, ContactListAddr(owner), "list known contacts")
	if err != nil {
		return nil, err
	}

	contacts := make([]paykittypes.PublicKey, 0, len(entries))
	for _, res := range entries {
		if res.IsDir() {
			continue
		}
		name, ok := res.Name()
		if !ok {
			return nil, paykittypes.TransportErrorf(
				"invalid resource returned for contact entry: %q", res.Path)
		}
		pk, err := paykittypes.ParsePublicKey(name)
		if err != nil {
			return nil, paykittypes.TransportErrorf("invalid contact entry %q: %v", name, err)
		}
		contacts = append(contacts, pk)
	}
	return contacts, nil
}

// fetchText fetches the UTF-8 document at addr. nil means absent or empty.
func (r *Reader) fetchText(ctx context.Context, addr, label string) (*string, error) {
	body, err := r.store.Get(ctx, addr)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, paykittypes.TransportErrorf("%s: %v", label, err)
	}
	if len(body) == 0 {
		return nil, nil
	}
	if !utf8.Valid(body) {
		return nil, paykittypes.TransportErrorf("%s: payload is not valid UTF-8", label)
	}
	text := string(body)
	return &text, nil
}

// list requests a shallow listing, classifying a missing directory as empty.
func (r *Reader) list(ctx context.Context, addr, label string) ([]paykittypes.Resource, error) {
	entries, err := r.store.List(ctx, addr)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, paykittypes.TransportErrorf("%s: %v", label, err)
	}
	return entries, nil
}
