package httpx

import (
	"fmt"
	"net/http"
)

// APIKeyRoundTripper signs every request with a static project key, sent both
// as the `apikey` header and, unless the caller already set one, as a bearer
// token.
type APIKeyRoundTripper struct {
	next   http.RoundTripper
	apiKey string
}

func NewAPIKeyRoundTripper(next http.RoundTripper, apiKey string) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:   next,
		apiKey: apiKey,
	}
}

func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Apikey", rt.apiKey)

	if req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+rt.apiKey)
	}

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
