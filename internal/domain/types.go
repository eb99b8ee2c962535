package domain

// EventStatus is the processing status of a webhook event
type EventStatus string

const (
	// EventStatusReceived is the status of an event that has been admitted but not yet claimed by a worker
	EventStatusReceived EventStatus = "received"
	// EventStatusVerified is the status of an event that a worker has claimed for processing
	EventStatusVerified EventStatus = "verified"
	// EventStatusProcessed is the status of an event that completed processing
	EventStatusProcessed EventStatus = "processed"
	// EventStatusFailed is the status of an event whose processing raised an error
	EventStatusFailed EventStatus = "failed"
)

// Valid reports whether s is a member of the status enum
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusReceived, EventStatusVerified, EventStatusProcessed, EventStatusFailed:
		return true
	}
	return false
}

// Provider identifies a configured webhook provider
type Provider string

const (
	// ProviderGitHub receives source-control events signed with the "sha256=<hex>" prefix scheme
	ProviderGitHub Provider = "github"
	// ProviderStripe receives payment events signed with the timestamped "t=..,v1=.." scheme
	ProviderStripe Provider = "stripe"
	// ProviderResend receives email events signed with a plain hex HMAC (optional "sha256=" prefix)
	ProviderResend Provider = "resend"
)

// Providers lists all providers the gateway accepts deliveries from
func Providers() []Provider {
	return []Provider{ProviderGitHub, ProviderStripe, ProviderResend}
}

func (p Provider) String() string {
	return string(p)
}

// Valid reports whether p is a known provider
func (p Provider) Valid() bool {
	switch p {
	case ProviderGitHub, ProviderStripe, ProviderResend:
		return true
	}
	return false
}

// ProcessMessage is the queue payload handed to the processing pipeline.
// It carries only the event id; the worker re-loads durable state at the
// start of every attempt.
type ProcessMessage struct {
	// EventID is the store-assigned id of the admitted webhook event
	EventID string `json:"event_id"`
	// Source is the provider name, used for subject routing and logging
	Source string `json:"source"`
}
