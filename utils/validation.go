// Package utils holds input validation shared by the paykit facade.
package utils

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/vitwit/paykit/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateMethodID checks that a method identifier can be used as a storage
// path segment. The identifier itself is opaque; only what would break
// address assembly is rejected.
func ValidateMethodID(method types.MethodID) error {
	if err := validate.Var(string(method), "required,excludesall=/"); err != nil {
		return types.TransportErrorf("invalid method id %q: %v", method, err)
	}
	if !method.Valid() {
		return types.TransportErrorf("invalid method id %q: not a usable path segment", method)
	}
	return nil
}

// ValidateEndpointData checks that a payload is valid UTF-8 text. Binary
// payloads must be encoded by the caller before wrapping.
func ValidateEndpointData(data types.EndpointData) error {
	if !utf8.ValidString(string(data)) {
		return types.TransportError("endpoint data is not valid UTF-8")
	}
	return nil
}

// ValidatePublicKey checks that a key is initialized.
func ValidatePublicKey(pk types.PublicKey) error {
	if err := validate.Var(pk.String(), "required"); err != nil {
		return types.TransportError("public key is required")
	}
	return nil
}
