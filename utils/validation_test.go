package utils

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitwit/paykit/types"
)

func TestValidateMethodID(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateMethodID("lightning"))
	req.NoError(ValidateMethodID("onchain"))
	req.NoError(ValidateMethodID("bolt12-offer"))
	// Method identifiers are opaque, not ASCII-only.
	req.NoError(ValidateMethodID("método"))

	req.Error(ValidateMethodID(""))
	req.Error(ValidateMethodID("a/b"))
	req.Error(ValidateMethodID("/lightning"))
	req.Error(ValidateMethodID("with\nnewline"))
	// Relative markers would address outside the v0 namespace.
	req.Error(ValidateMethodID("."))
	req.Error(ValidateMethodID(".."))
}

func TestValidateEndpointData(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateEndpointData(`{"bolt11":"ln..."}`))
	req.NoError(ValidateEndpointData(""))

	req.Error(ValidateEndpointData(types.EndpointData([]byte{0xff, 0xfe})))
}

func TestValidatePublicKey(t *testing.T) {
	req := require.New(t)

	pk := types.PublicKeyFromBytes(ed25519.PublicKey(bytes.Repeat([]byte{7}, ed25519.PublicKeySize)))
	req.NoError(ValidatePublicKey(pk))

	req.Error(ValidatePublicKey(types.PublicKey{}))
}
