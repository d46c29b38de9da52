package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type httpClient struct {
	endpoint   string
	httpClient *http.Client
}

func newHttpClient(endpoint string, hc *http.Client) httpClient {
	if hc == nil {
		hc = &http.Client{Timeout: 0}
	}
	return httpClient{
		endpoint:   endpoint,
		httpClient: hc,
	}
}

// postResponse represents the response from post.
type postResponse struct {
	Body        []byte
	Status      int
	ContentType string
}

// post sends body encoded as JSON to the endpoint.
func (hc *httpClient) post(ctx context.Context, body any) (postResponse, error) {
	res := postResponse{}

	b, err := json.Marshal(body)
	if err != nil {
		return res, fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, hc.endpoint, bytes.NewReader(b),
	)
	if err != nil {
		return res, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	hres, err := hc.httpClient.Do(req)
	if err != nil {
		return res, fmt.Errorf("failed sending POST request: %w", err)
	}
	defer hres.Body.Close()

	bodyb, err := io.ReadAll(hres.Body)
	if err != nil {
		return res, fmt.Errorf("failed reading response body: %w", err)
	}

	res = postResponse{
		Body:        bodyb,
		Status:      hres.StatusCode,
		ContentType: hres.Header.Get("Content-Type"),
	}
	return res, nil
}
