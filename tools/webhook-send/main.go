// Command webhook-send delivers a signed test webhook to a running gateway.
// It computes the same provider signature a real sender would, so it can
// exercise the full verification and admission path end to end.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "http://localhost:8080"

type Config struct {
	BaseURL     string
	Provider    string
	Secret      string
	EventID     string
	EventType   string
	PayloadPath string
	Timeout     time.Duration
}

func main() {
	cfg := parseFlags()

	body, err := loadPayload(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	headers, err := signatureHeaders(cfg.Provider, cfg.Secret, cfg.EventID, cfg.EventType, body, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	url := fmt.Sprintf("%s/webhooks/%s", strings.TrimSuffix(cfg.BaseURL, "/"), cfg.Provider)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("POST %s\n%s\n%s\n", url, resp.Status, string(respBody))

	if resp.StatusCode >= 400 {
		os.Exit(1)
	}
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.BaseURL, "url", defaultBaseURL, "Base URL of the gateway API")
	flag.StringVar(&cfg.Provider, "provider", "github", "Webhook provider (github, stripe, resend)")
	flag.StringVar(&cfg.Secret, "secret", "", "Shared signing secret for the provider (required)")
	flag.StringVar(&cfg.EventID, "event-id", "", "Delivery identifier (defaults to a random UUID)")
	flag.StringVar(&cfg.EventType, "event-type", "push", "Event type for the delivery")
	flag.StringVar(&cfg.PayloadPath, "payload", "", "Path to a JSON payload file, or - for stdin (defaults to a generated payload)")
	flag.DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "HTTP request timeout")
	flag.Parse()

	if cfg.Secret == "" {
		fmt.Fprintln(os.Stderr, "Error: -secret is required")
		flag.Usage()
		os.Exit(2)
	}
	if cfg.EventID == "" {
		cfg.EventID = uuid.New().String()
	}

	return cfg
}

// loadPayload reads the payload file, stdin, or synthesizes a minimal
// payload the provider's identity extraction can parse
func loadPayload(cfg Config) ([]byte, error) {
	switch cfg.PayloadPath {
	case "":
		return defaultPayload(cfg), nil
	case "-":
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(cfg.PayloadPath)
	}
}

func defaultPayload(cfg Config) []byte {
	switch cfg.Provider {
	case "stripe":
		return []byte(fmt.Sprintf(`{"id":%q,"type":%q,"data":{"object":{}}}`, cfg.EventID, cfg.EventType))
	case "resend":
		return []byte(fmt.Sprintf(`{"type":%q,"data":{"email_id":%q}}`, cfg.EventType, cfg.EventID))
	default:
		return []byte(fmt.Sprintf(`{"action":%q,"repository":{"full_name":"example/repo"}}`, cfg.EventType))
	}
}
