package transport

import (
	"strings"

	paykittypes "github.com/vitwit/paykit/types"
)

// Storage path conventions. v0 means paykit data lives on the network as
//
//	/pub/paykit.app/v0/{method_id}        -> payment endpoint payload
//	/pub/pubky.app/follows/{public_key}   -> empty marker file per contact
//
// A future incompatible layout must introduce a new version segment.
const (
	// PaykitPathPrefix is the directory that holds one endpoint document
	// per published payment method.
	PaykitPathPrefix = "/pub/paykit.app/" + paykittypes.ProtocolVersion + "/"

	// FollowsPathPrefix is the directory that holds one marker file per
	// known contact.
	FollowsPathPrefix = "/pub/pubky.app/follows/"

	// AddrScheme prefixes every fully qualified storage address.
	AddrScheme = "pubky://"
)

// EndpointAddr returns the address of the endpoint document payee publishes
// for method.
func EndpointAddr(payee paykittypes.PublicKey, method paykittypes.MethodID) string {
	return AddrScheme + payee.String() + EndpointPath(method)
}

// PaymentListAddr returns the listing address covering every endpoint the
// payee publishes.
func PaymentListAddr(payee paykittypes.PublicKey) string {
	return AddrScheme + payee.String() + PaykitPathPrefix
}

// ContactAddr returns the address of the marker file recording that owner
// knows contact.
func ContactAddr(owner, contact paykittypes.PublicKey) string {
	return AddrScheme + owner.String() + FollowsPathPrefix + contact.String()
}

// ContactListAddr returns the listing address covering all of owner's
// contact marker files.
func ContactListAddr(owner paykittypes.PublicKey) string {
	return AddrScheme + owner.String() + FollowsPathPrefix
}

// EndpointPath returns the owner-relative storage path for a method, as used
// by authenticated sessions that write into their own namespace.
func EndpointPath(method paykittypes.MethodID) string {
	return PaykitPathPrefix + method.String()
}

// AddrPath strips the scheme and identity from a fully qualified address,
// leaving the owner-relative storage path the resolution layer keys on.
func AddrPath(addr string) string {
	rest := strings.TrimPrefix(addr, AddrScheme)
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		return rest[idx:]
	}
	return rest
}
