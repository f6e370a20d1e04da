// Package paykit implements the client side of the paykit protocol:
// publishing and discovering payment endpoints on a key-addressable,
// path-based public storage network.
//
// The package is stateless. Every operation delegates to injected transport
// capabilities and returns fresh values; durable state lives only on the
// remote network.
package paykit

import (
	"context"
	"time"

	"github.com/vitwit/paykit/logger"
	"github.com/vitwit/paykit/metrics"
	"github.com/vitwit/paykit/transport"
	"github.com/vitwit/paykit/types"
	"github.com/vitwit/paykit/utils"
)

// Version information
const (
	Version         = "1.0.0"
	ProtocolVersion = types.ProtocolVersion
)

// Operation labels used in error prefixes and metrics.
const (
	opGetPaymentList        = "get_payment_list"
	opGetPaymentEndpoint    = "get_payment_endpoint"
	opGetKnownContacts      = "get_known_contacts"
	opSetPaymentEndpoint    = "set_payment_endpoint"
	opRemovePaymentEndpoint = "remove_payment_endpoint"
)

// Paykit is the facade over an injected read capability and, optionally, an
// authenticated write capability. Safe for concurrent use; it holds no
// mutable state of its own.
type Paykit struct {
	reader  transport.ReadTransport
	writer  transport.AuthTransport
	logger  logger.Logger
	metrics metrics.Recorder
	timeout time.Duration
}

// New creates a Paykit client over the given capabilities. writer may be
// nil for discovery-only use; write operations then fail with an
// unimplemented error.
func New(reader transport.ReadTransport, writer transport.AuthTransport, opts ...Option) *Paykit {
	p := &Paykit{
		reader:  reader,
		writer:  writer,
		logger:  logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewReader creates a discovery-only client.
func NewReader(reader transport.ReadTransport, opts ...Option) *Paykit {
	return New(reader, nil, opts...)
}

// GetPaymentList retrieves all payment methods the payee currently
// publishes. A payee that has published nothing (or whose namespace
// directory is missing) yields an empty collection, not an error.
func (p *Paykit) GetPaymentList(ctx context.Context, payee types.PublicKey) (types.SupportedPayments, error) {
	done := p.begin(opGetPaymentList)
	if err := utils.ValidatePublicKey(payee); err != nil {
		return types.SupportedPayments{}, done(types.PrefixError(opGetPaymentList, err))
	}
	ctx, cancel := p.opContext(ctx)
	defer cancel()

	list, err := p.reader.FetchSupportedPayments(ctx, payee)
	if err != nil {
		return types.SupportedPayments{}, done(types.PrefixError(opGetPaymentList, err))
	}
	done(nil)
	return list, nil
}

// GetPaymentEndpoint retrieves the endpoint document payee publishes for
// method, or nil when the document is missing or empty. An error means the
// transport failed, never mere absence.
func (p *Paykit) GetPaymentEndpoint(ctx context.Context, payee types.PublicKey, method types.MethodID) (*types.EndpointData, error) {
	done := p.begin(opGetPaymentEndpoint)
	if err := p.validateRead(payee, method); err != nil {
		return nil, done(types.PrefixError(opGetPaymentEndpoint, err))
	}
	ctx, cancel := p.opContext(ctx)
	defer cancel()

	data, err := p.reader.FetchPaymentEndpoint(ctx, payee, method)
	if err != nil {
		return nil, done(types.PrefixError(opGetPaymentEndpoint, err))
	}
	done(nil)
	return data, nil
}

// GetKnownContacts returns the public keys the owner follows. A missing
// follows directory yields an empty slice; a marker file whose name does
// not parse as a public key fails the call.
func (p *Paykit) GetKnownContacts(ctx context.Context, owner types.PublicKey) ([]types.PublicKey, error) {
	done := p.begin(opGetKnownContacts)
	if err := utils.ValidatePublicKey(owner); err != nil {
		return nil, done(types.PrefixError(opGetKnownContacts, err))
	}
	ctx, cancel := p.opContext(ctx)
	defer cancel()

	contacts, err := p.reader.FetchKnownContacts(ctx, owner)
	if err != nil {
		return nil, done(types.PrefixError(opGetKnownContacts, err))
	}
	done(nil)
	return contacts, nil
}

// SetPaymentEndpoint stores or replaces the caller's endpoint document for
// method. Idempotent.
func (p *Paykit) SetPaymentEndpoint(ctx context.Context, method types.MethodID, data types.EndpointData) error {
	done := p.begin(opSetPaymentEndpoint)
	if p.writer == nil {
		return done(types.UnimplementedError(opSetPaymentEndpoint))
	}
	if err := utils.ValidateMethodID(method); err != nil {
		return done(types.PrefixError(opSetPaymentEndpoint, err))
	}
	if err := utils.ValidateEndpointData(data); err != nil {
		return done(types.PrefixError(opSetPaymentEndpoint, err))
	}
	ctx, cancel := p.opContext(ctx)
	defer cancel()

	return done(types.PrefixError(opSetPaymentEndpoint,
		p.writer.UpsertPaymentEndpoint(ctx, method, data)))
}

// RemovePaymentEndpoint deletes the caller's endpoint document for method.
// Removing a method that was never published fails; callers wanting
// idempotent deletion must pre-check with GetPaymentEndpoint.
func (p *Paykit) RemovePaymentEndpoint(ctx context.Context, method types.MethodID) error {
	done := p.begin(opRemovePaymentEndpoint)
	if p.writer == nil {
		return done(types.UnimplementedError(opRemovePaymentEndpoint))
	}
	if err := utils.ValidateMethodID(method); err != nil {
		return done(types.PrefixError(opRemovePaymentEndpoint, err))
	}
	ctx, cancel := p.opContext(ctx)
	defer cancel()

	return done(types.PrefixError(opRemovePaymentEndpoint,
		p.writer.RemovePaymentEndpoint(ctx, method)))
}

// begin starts metric/log bookkeeping for an operation. The returned func
// finishes it and passes the error through.
func (p *Paykit) begin(op string) func(error) error {
	start := time.Now()
	return func(err error) error {
		status := "ok"
		if err != nil {
			status = "error"
			p.logger.Error("operation failed", map[string]any{
				"operation": op,
				"error":     err.Error(),
			})
		}
		p.metrics.IncCounter(op, map[string]string{"status": status})
		p.metrics.ObserveLatency(op, time.Since(start), nil)
		return err
	}
}

// opContext applies the configured default timeout when the caller's
// context carries no deadline of its own.
func (p *Paykit) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.timeout)
}

func (p *Paykit) validateRead(payee types.PublicKey, method types.MethodID) error {
	if err := utils.ValidatePublicKey(payee); err != nil {
		return err
	}
	return utils.ValidateMethodID(method)
}
