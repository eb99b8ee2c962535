package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// signBody returns the hex HMAC-SHA256 digest of the message under the secret
func signBody(secret string, message []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(message)
	return hex.EncodeToString(h.Sum(nil))
}

// signatureHeaders builds the provider-specific headers that authenticate
// a delivery of body: the signature header plus any identity headers the
// provider sends alongside it
func signatureHeaders(provider, secret, eventID, eventType string, body []byte, now time.Time) (map[string]string, error) {
	switch provider {
	case "github":
		return map[string]string{
			"X-Hub-Signature-256": "sha256=" + signBody(secret, body),
			"X-GitHub-Delivery":   eventID,
			"X-GitHub-Event":      eventType,
		}, nil
	case "stripe":
		timestamp := now.Unix()
		signedPayload := fmt.Sprintf("%d.%s", timestamp, string(body))
		return map[string]string{
			"Stripe-Signature": fmt.Sprintf("t=%d,v1=%s", timestamp, signBody(secret, []byte(signedPayload))),
		}, nil
	case "resend":
		return map[string]string{
			"Resend-Signature": signBody(secret, body),
		}, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
