package tenantsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

func queryEscape(s string) string {
	return url.QueryEscape(s)
}

// doJSON performs an unauthenticated JSON request. A nil body sends no
// payload; a nil out discards the response body.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body, out any,
	expectedStatus int,
) error {
	return c.roundTrip(ctx, method, path, "", body, out, expectedStatus)
}

// doAuthJSON performs a JSON request carrying the session's bearer token.
func (s *Session) doAuthJSON(
	ctx context.Context,
	method, path string,
	body, out any,
	expectedStatus int,
) error {
	return s.client.roundTrip(ctx, method, path, s.accessToken, body, out, expectedStatus)
}

func (c *Client) roundTrip(
	ctx context.Context,
	method, path, token string,
	body, out any,
	expectedStatus int,
) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp.StatusCode, bodyBytes)
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// parseErrorResponse turns a non-2xx response into an *APIError. A
// body that is not the service's error shape still yields an APIError
// carrying the raw body as the description.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  statusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  statusCode,
		Code:        ErrorCodeServerError,
		Description: string(body),
	}
}
