package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// VerifierFunc adapts a function to CredentialVerifier.
type VerifierFunc func(ctx context.Context, userID, secret string) (bool, error)

func (f VerifierFunc) VerifyCredential(ctx context.Context, userID, secret string) (bool, error) {
	return f(ctx, userID, secret)
}

// HTTPVerifier calls the auth collaborator's verification endpoint. The
// collaborator owns credentials and TOTP; we only see a yes/no answer.
type HTTPVerifier struct {
	url    string
	client *http.Client
}

func NewHTTPVerifier(url string) *HTTPVerifier {
	return &HTTPVerifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *HTTPVerifier) VerifyCredential(ctx context.Context, userID, secret string) (bool, error) {
	payload, err := json.Marshal(map[string]string{
		"user_id": userID,
		"secret":  secret,
	})
	if err != nil {
		return false, fmt.Errorf("encoding verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("building verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("calling credential verifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("credential verifier returned status %d", resp.StatusCode)
	}

	var out struct {
		Valid bool `json:"valid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decoding verify response: %w", err)
	}
	return out.Valid, nil
}
