package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// issuerClient talks to the issuer server's JSON API.
type issuerClient struct {
	baseURL    string
	httpClient *http.Client
}

func newIssuerClient(serverURL string) *issuerClient {
	return &issuerClient{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetPublicKey fetches the issuer's encoded public key.
func (c *issuerClient) GetPublicKey() ([]byte, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/public-key")
	if err != nil {
		return nil, fmt.Errorf("request to issuer failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("issuer returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Register submits an issuance request and returns the issuer's response
// bytes.
func (c *issuerClient) Register(username, attributes string, request []byte) ([]byte, error) {
	body := map[string]string{
		"username":   username,
		"attributes": attributes,
		"request":    base64.StdEncoding.EncodeToString(request),
	}
	var result struct {
		Response string `json:"response"`
	}
	if err := c.post("/register", body, &result); err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(result.Response)
}

// Verify submits a showing for verification.
func (c *issuerClient) Verify(message, revealed string, signature []byte) (bool, error) {
	body := map[string]string{
		"message":   message,
		"revealed":  revealed,
		"signature": base64.StdEncoding.EncodeToString(signature),
	}
	var result struct {
		Valid bool `json:"valid"`
	}
	if err := c.post("/verify", body, &result); err != nil {
		return false, err
	}
	return result.Valid, nil
}

func (c *issuerClient) post(path string, body, result interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", c.baseURL+path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("issuer returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return json.Unmarshal(respBody, result)
}
