package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hookline/gateway/internal/adapter"
	"github.com/hookline/gateway/internal/domain"
)

// DefaultTimestampTolerance bounds how far a timestamped signature may
// drift from the current time before it is rejected
const DefaultTimestampTolerance = 5 * time.Minute

// Verifier checks a webhook delivery signature against a shared secret
type Verifier interface {
	// Verify reports whether the signature header authenticates the raw body.
	// A missing or malformed header is a failed verification, never an error.
	Verify(signatureHeader string, body []byte) bool
}

// Options tunes verifier construction
type Options struct {
	// Clock supplies the current time for timestamp tolerance checks.
	// A nil Clock falls back to the real clock.
	Clock adapter.Clock
	// TimestampTolerance overrides DefaultTimestampTolerance when positive
	TimestampTolerance time.Duration
}

// ForProvider returns the signature verifier for a known provider
func ForProvider(provider domain.Provider, secret string, opts Options) (Verifier, error) {
	clock := opts.Clock
	if clock == nil {
		clock = adapter.NewClock()
	}
	tolerance := opts.TimestampTolerance
	if tolerance <= 0 {
		tolerance = DefaultTimestampTolerance
	}

	switch provider {
	case domain.ProviderGitHub:
		return &prefixedHexVerifier{secret: secret, requirePrefix: true}, nil
	case domain.ProviderStripe:
		return &timestampedVerifier{secret: secret, clock: clock, tolerance: tolerance}, nil
	case domain.ProviderResend:
		return &prefixedHexVerifier{secret: secret, requirePrefix: false}, nil
	default:
		return nil, fmt.Errorf("no verifier for provider: %s", provider)
	}
}

// computeHMAC returns the HMAC-SHA256 digest of the message under the secret
func computeHMAC(secret string, message []byte) []byte {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(message)
	return h.Sum(nil)
}

// matchHex compares a hex-encoded signature against an expected digest
// in constant time
func matchHex(expected []byte, providedHex string) bool {
	provided, err := hex.DecodeString(providedHex)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, provided)
}

// prefixedHexVerifier verifies "sha256=<hex>" style signatures computed
// over the raw request body. When requirePrefix is false the "sha256="
// prefix is optional.
type prefixedHexVerifier struct {
	secret        string
	requirePrefix bool
}

func (v *prefixedHexVerifier) Verify(signatureHeader string, body []byte) bool {
	if signatureHeader == "" {
		return false
	}

	providedHex := signatureHeader
	if trimmed, ok := strings.CutPrefix(signatureHeader, "sha256="); ok {
		providedHex = trimmed
	} else if v.requirePrefix {
		return false
	}

	return matchHex(computeHMAC(v.secret, body), providedHex)
}

// timestampedVerifier verifies "t=<unix>,v1=<hex>" style signatures computed
// over "<timestamp>.<body>". Signatures whose timestamp falls outside the
// tolerance window are rejected even when the digest matches.
type timestampedVerifier struct {
	secret    string
	clock     adapter.Clock
	tolerance time.Duration
}

func (v *timestampedVerifier) Verify(signatureHeader string, body []byte) bool {
	if signatureHeader == "" {
		return false
	}

	var timestampRaw string
	var candidates []string
	for _, part := range strings.Split(signatureHeader, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			timestampRaw = value
		case "v1":
			candidates = append(candidates, value)
		}
	}

	if timestampRaw == "" || len(candidates) == 0 {
		return false
	}

	timestamp, err := strconv.ParseInt(timestampRaw, 10, 64)
	if err != nil {
		return false
	}

	drift := v.clock.Now().Unix() - timestamp
	if drift < 0 {
		drift = -drift
	}
	if time.Duration(drift)*time.Second > v.tolerance {
		return false
	}

	signedPayload := fmt.Sprintf("%s.%s", timestampRaw, string(body))
	expected := computeHMAC(v.secret, []byte(signedPayload))

	for _, candidate := range candidates {
		if matchHex(expected, candidate) {
			return true
		}
	}

	return false
}
