package askademy

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Codec decodes bearer credentials into claims without verifying signatures.
// The client trusts the issuer provisionally; verification happens on the
// server for every subsequent request, and a 401 is the revocation signal.
// Expiry is deliberately not checked client-side either.
type Codec struct {
	logger Logger
}

// NewCodec returns a Codec with the default logger.
func NewCodec() *Codec {
	return &Codec{logger: defLogger{}}
}

func (c *Codec) WithLogger(logger Logger) *Codec {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Decode splits the credential into its three segments and decodes the
// middle claims segment: base64url alphabet repair, padding fix, byte
// decode, then a UTF-8-safe JSON parse. Any failure returns a decode
// error; callers treat that as "no identity" and must not crash.
func (c *Codec) Decode(credential string) (*TokenClaims, error) {
	segments := strings.Split(credential, ".")
	if len(segments) != 3 {
		return nil, decodeFailure("credential is not a three segment token")
	}

	payload, err := decodeSegment(segments[1])
	if err != nil {
		c.logger.Debug("credential payload segment failed base64 decode", "error", err)
		return nil, decodeFailure("claims segment is not valid base64")
	}

	if !utf8.Valid(payload) {
		return nil, decodeFailure("claims segment is not valid UTF-8")
	}

	claims := &TokenClaims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		c.logger.Debug("credential claims failed JSON parse", "error", err)
		return nil, decodeFailure("claims segment is not valid JSON")
	}

	return claims, nil
}

// DecodeIdentity decodes the credential and applies the strict claims
// schema, yielding the derived Identity.
func (c *Codec) DecodeIdentity(credential string) (Identity, error) {
	claims, err := c.Decode(credential)
	if err != nil {
		return Identity{}, err
	}
	return claims.Identity()
}

// decodeSegment repairs the base64url alphabet back to standard base64 and
// re-pads before decoding, accepting both padded and unpadded segments.
func decodeSegment(segment string) ([]byte, error) {
	repaired := strings.NewReplacer("-", "+", "_", "/").Replace(segment)
	if m := len(repaired) % 4; m != 0 {
		repaired += strings.Repeat("=", 4-m)
	}
	return base64.StdEncoding.DecodeString(repaired)
}
