package gateway

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/hookline/gateway/internal/domain"
)

const (
	headerGitHubEvent    = "X-GitHub-Event"
	headerGitHubDelivery = "X-GitHub-Delivery"
)

// deriveIdentity extracts the event type and delivery identifier for a
// provider. The identifier preference order is: provider delivery header,
// payload-embedded identifier, synthesized "<type>_<unix-ms>" fallback.
// The fallback guarantees every verified delivery is admissible, at the
// cost of weaker dedup for deliveries without a stable id.
func (g *gateway) deriveIdentity(provider domain.Provider, headers http.Header, payload map[string]interface{}) (eventType string, eventID string) {
	switch provider {
	case domain.ProviderGitHub:
		eventType = headers.Get(headerGitHubEvent)
		eventID = headers.Get(headerGitHubDelivery)
		if eventID == "" {
			eventID = stringField(payload, "id")
		}
	case domain.ProviderStripe:
		eventType = stringField(payload, "type")
		eventID = stringField(payload, "id")
	case domain.ProviderResend:
		eventType = stringField(payload, "type")
		if data, ok := payload["data"].(map[string]interface{}); ok {
			eventID = stringField(data, "email_id")
		}
	}

	if eventType == "" {
		eventType = "unknown"
	}
	if eventID == "" {
		eventID = fmt.Sprintf("%s_%d", eventType, g.clock.Now().UnixMilli())
	}

	return eventType, eventID
}

// stringField returns a non-empty string value from a decoded JSON object
func stringField(payload map[string]interface{}, key string) string {
	value, ok := payload[key].(string)
	if !ok {
		return ""
	}
	return value
}

// flattenHeaders collapses request headers into a single-value map for audit storage
func flattenHeaders(headers http.Header) map[string]string {
	flat := make(map[string]string, len(headers))
	for key, values := range headers {
		flat[strings.ToLower(key)] = strings.Join(values, ", ")
	}
	return flat
}
