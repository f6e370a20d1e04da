// Package types defines the domain model shared by all paykit packages.
package types

import (
	"sort"
	"strings"
	"unicode"
)

// ProtocolVersion is the paykit storage-layout version. Incompatible layout
// changes get a new version segment, never an in-place mutation of v0.
const ProtocolVersion = "v0"

// MethodID identifies a payment method specification, e.g. "lightning" or
// "onchain". It is stored as the trailing filename component under
// /pub/paykit.app/v0/ and therefore has to be a single path segment.
type MethodID string

func (m MethodID) String() string { return string(m) }

// Valid reports whether the identifier can be used as a storage path
// segment: non-empty, free of path separators and control characters, and
// not one of the relative markers "." and ".." that a normalizing server
// would resolve outside the namespace. Anything else, including non-ASCII
// text, is an opaque identifier and passes.
func (m MethodID) Valid() bool {
	if m == "" || m == "." || m == ".." {
		return false
	}
	if strings.Contains(string(m), "/") {
		return false
	}
	return !strings.ContainsFunc(string(m), unicode.IsControl)
}

// EndpointData is a serialized payment endpoint descriptor (UTF-8 text such
// as JSON, a bolt11 invoice, an lnurl, etc.). Paykit never interprets the
// payload; binary data must be encoded (e.g. base64) before wrapping.
type EndpointData string

func (e EndpointData) String() string { return string(e) }

// SupportedPayments is the full set of payment methods a payee currently
// publishes, keyed by method identifier. It is built fresh on every query
// and never cached by this layer.
type SupportedPayments struct {
	Entries map[MethodID]EndpointData `json:"entries"`
}

// NewSupportedPayments returns an empty, ready-to-fill collection.
func NewSupportedPayments() SupportedPayments {
	return SupportedPayments{Entries: make(map[MethodID]EndpointData)}
}

// Get returns the endpoint payload for method, if published.
func (s SupportedPayments) Get(method MethodID) (EndpointData, bool) {
	data, ok := s.Entries[method]
	return data, ok
}

// Methods returns the published method identifiers in sorted order.
func (s SupportedPayments) Methods() []MethodID {
	methods := make([]MethodID, 0, len(s.Entries))
	for m := range s.Entries {
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i] < methods[j] })
	return methods
}

// Len returns the number of published methods.
func (s SupportedPayments) Len() int { return len(s.Entries) }

// IsEmpty reports whether the payee publishes no endpoints.
func (s SupportedPayments) IsEmpty() bool { return len(s.Entries) == 0 }

// Resource is a single entry returned by a shallow directory listing on the
// storage network: the entry's full address plus its path relative to the
// owner's storage root.
type Resource struct {
	// Path is the storage path, e.g. "/pub/paykit.app/v0/lightning".
	Path string `json:"path"`

	// Addr is the fully qualified address of the entry.
	Addr string `json:"addr"`
}

// IsDir reports whether the entry is a pseudo-directory marker. Listings
// include these and resolution skips them.
func (r Resource) IsDir() bool { return strings.HasSuffix(r.Path, "/") }

// Name extracts the trailing non-empty path segment: the method identifier
// or contact key string the entry stands for. ok is false for malformed
// paths with no trailing segment.
func (r Resource) Name() (string, bool) {
	if r.IsDir() {
		return "", false
	}
	idx := strings.LastIndexByte(r.Path, '/')
	name := r.Path[idx+1:]
	return name, name != ""
}
