package provider

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var _ RatesProvider = (*GondwanaProvider)(nil)

var (
	// errEmptyBody is returned when the provider answers with JSON null or no body.
	errEmptyBody = errors.New("empty response body")
	// errTrailingData is returned when the JSON object is followed by anything but whitespace.
	errTrailingData = errors.New("unexpected data after JSON object")
)

// GondwanaProvider posts rate queries to the Gondwana Collection rates API.
type GondwanaProvider struct {
	url    string
	client *http.Client
}

// NewGondwanaProvider creates a new GondwanaProvider.
func NewGondwanaProvider(url string, timeoutSec int, tlsVerify bool) *GondwanaProvider {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !tlsVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // operator opt-out
	}
	return &GondwanaProvider{
		url: url,
		client: &http.Client{
			Timeout:   time.Duration(timeoutSec) * time.Second,
			Transport: transport,
		},
	}
}

// GetRate sends a single POST and decodes the JSON body.
// Application-level failures described in a well-formed body are returned as-is.
func (p *GondwanaProvider) GetRate(ctx context.Context, upReq UpstreamRequest) (*UpstreamResponse, error) {
	payload, err := json.Marshal(upReq)
	if err != nil {
		return nil, fmt.Errorf("gondwana API payload encoding failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gondwana API request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gondwana API request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gondwana API returned status %d: %s", resp.StatusCode, string(body))
	}

	var body map[string]any
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode gondwana API response: %w", err)
	}
	if body == nil {
		return nil, fmt.Errorf("failed to decode gondwana API response: %w", errEmptyBody)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode gondwana API response: %w", errTrailingData)
	}

	return &UpstreamResponse{Body: body}, nil
}
