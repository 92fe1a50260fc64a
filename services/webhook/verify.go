package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// VerifySignature checks an HMAC-SHA256 hex signature against the raw request
// body. The comparison is constant-time to avoid leaking timing information.
//
// Supported header formats:
//   - "<hex>" (plain hex, Calendly style)
//   - "sha256=<hex>" (GitHub style prefix, accepted for tooling convenience)
//
// A missing or malformed header is a verification failure, never a bypass;
// bypass is only decided by the caller when no signing key is configured.
func VerifySignature(rawBody []byte, signatureHeader, signingKey string) bool {
	if signingKey == "" || signatureHeader == "" {
		return false
	}

	supplied, err := parseSignature(signatureHeader)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(signingKey))
	mac.Write(rawBody)
	expected := mac.Sum(nil)

	return subtle.ConstantTimeCompare(expected, supplied) == 1
}

// parseSignature extracts and decodes the hex signature from the header value.
func parseSignature(signature string) ([]byte, error) {
	signature = strings.TrimPrefix(signature, "sha256=")
	return hex.DecodeString(signature)
}

// ComputeSignature returns the hex HMAC-SHA256 of a body. Used by tests and
// by operators validating a webhook subscription out of band.
func ComputeSignature(body []byte, signingKey string) string {
	mac := hmac.New(sha256.New, []byte(signingKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
