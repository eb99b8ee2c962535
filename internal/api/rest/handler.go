package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hookline/gateway/internal/domain"
	"github.com/hookline/gateway/internal/gateway"
)

// DefaultMaxBodySize caps webhook request bodies at 1 MiB
const DefaultMaxBodySize = 1 << 20

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// IngestGitHub admits a GitHub webhook delivery
	// POST /webhooks/github
	IngestGitHub(c *gin.Context)

	// IngestStripe admits a Stripe webhook delivery
	// POST /webhooks/stripe
	IngestStripe(c *gin.Context)

	// IngestResend admits a Resend webhook delivery
	// POST /webhooks/resend
	IngestResend(c *gin.Context)

	// ProbeSource reports intake liveness for one provider path
	// GET /webhooks/:provider
	ProbeSource(c *gin.Context)

	// ReplayEvent forces a stored event back into the processing queue
	// POST /webhooks/replay/:id
	ReplayEvent(c *gin.Context)

	// ListEvents returns stored events with optional filters, newest first
	// GET /webhooks?status=<status>&source=<source>&page=<page>&limit=<limit>
	ListEvents(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	gateway     gateway.Gateway
	maxBodySize int64
}

// NewHandler creates a new REST API handler over the webhook gateway
func NewHandler(gw gateway.Gateway, maxBodySize int64) Handler {
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	return &handler{
		gateway:     gw,
		maxBodySize: maxBodySize,
	}
}

// IngestGitHub admits a GitHub webhook delivery
func (h *handler) IngestGitHub(c *gin.Context) {
	h.ingest(c, domain.ProviderGitHub)
}

// IngestStripe admits a Stripe webhook delivery
func (h *handler) IngestStripe(c *gin.Context) {
	h.ingest(c, domain.ProviderStripe)
}

// IngestResend admits a Resend webhook delivery
func (h *handler) IngestResend(c *gin.Context) {
	h.ingest(c, domain.ProviderResend)
}

// ingest reads the raw body and runs the shared admission flow.
// The body must be read before any binding so signature verification
// sees the exact bytes the provider signed.
func (h *handler) ingest(c *gin.Context, provider domain.Provider) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, h.maxBodySize+1))
	if err != nil {
		respondBadRequest(c, "Failed to read request body")
		return
	}
	if int64(len(body)) > h.maxBodySize {
		respondWithError(c, http.StatusRequestEntityTooLarge, errCodeBadRequest, "Request body too large")
		return
	}
	if len(body) == 0 {
		respondBadRequest(c, "Request body is empty")
		return
	}

	result, err := h.gateway.Ingest(c.Request.Context(), provider, body, c.Request.Header)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingHeader):
			respondBadRequest(c, "Required header missing", err.Error())
		case errors.Is(err, domain.ErrInvalidSignature):
			respondUnauthorized(c, "Signature verification failed")
		case errors.Is(err, domain.ErrSourceNotConfigured):
			respondConfigurationError(c, err, zap.String("source", provider.String()))
		default:
			respondInternalError(c, err, "Failed to process webhook",
				zap.String("source", provider.String()))
		}
		return
	}

	if result.Deduped {
		c.JSON(http.StatusOK, IngestResponse{Success: true, Deduped: true})
		return
	}

	c.JSON(http.StatusOK, IngestResponse{
		Success:   true,
		EventID:   result.Event.ID,
		EventType: result.Event.EventType,
	})
}

// ProbeSource reports intake liveness for one provider path
func (h *handler) ProbeSource(c *gin.Context) {
	provider := domain.Provider(c.Param("provider"))
	if !provider.Valid() {
		respondNotFound(c, "Unknown webhook source")
		return
	}

	c.JSON(http.StatusOK, ProbeResponse{
		Status: "ok",
		Source: provider.String(),
	})
}

// ReplayEvent forces a stored event back into the processing queue
func (h *handler) ReplayEvent(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	event, err := h.gateway.Replay(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			respondNotFound(c, "Webhook event not found")
			return
		}
		respondInternalError(c, err, "Failed to replay event",
			zap.String("id", eventID))
		return
	}

	c.JSON(http.StatusOK, ReplayResponse{Success: true, EventID: event.ID})
}

// ListEvents returns stored events with optional filters, newest first
func (h *handler) ListEvents(c *gin.Context) {
	params, err := ParseListEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	events, total, err := h.gateway.ListEvents(c.Request.Context(), gateway.ListFilter{
		Status:     domain.EventStatus(params.Status),
		SourceName: params.Source,
		Limit:      params.Limit,
		Offset:     params.Offset(),
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list events")
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, toEventDTO(event))
	}

	c.JSON(http.StatusOK, ListEventsResponse{
		Events: dtos,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
