package workflows

// knownEventActions maps provider event types to the action taken when one
// is processed. Event type names do not collide across the configured
// providers, so a flat map is sufficient.
var knownEventActions = map[string]string{
	// GitHub
	"push":         "record repository push",
	"pull_request": "record pull request activity",
	"issues":       "record issue activity",

	// Stripe
	"checkout.session.completed": "record completed checkout",
	"payment_intent.succeeded":   "record successful payment",
	"invoice.payment_succeeded":  "record paid invoice",

	// Resend
	"email.delivered":  "record delivered email",
	"email.bounced":    "record bounced email",
	"email.complained": "record spam complaint",
}

// classifyEvent resolves the action for an event type. Unknown types return
// known=false and are completed as no-ops by the caller.
func classifyEvent(eventType string) (action string, known bool) {
	action, known = knownEventActions[eventType]
	return action, known
}
