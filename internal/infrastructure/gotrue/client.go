package gotrue

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"berry_buddy/internal/domain"
	"berry_buddy/internal/domain/entity"
	"berry_buddy/pkg/contextx"
	"berry_buddy/pkg/errcodes"
	"berry_buddy/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	defaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20
)

// Client talks to the REST API of the hosted auth service. Every request is
// signed with the project key the client was built with.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, opts ...httpx.Option) *Client {
	transport := httpx.NewAPIKeyRoundTripper(
		httpx.NewLoggingRoundTripper(http.DefaultTransport, opts...),
		apiKey,
	)

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/auth/v1",
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   defaultTimeout,
		},
	}
}

type otpRequest struct {
	Email      string `json:"email"`
	CreateUser bool   `json:"create_user"`
}

type verifyRequest struct {
	Type  string `json:"type"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type sessionResponse struct {
	AccessToken string             `json:"access_token"`
	User        stdjson.RawMessage `json:"user"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type errorResponse struct {
	Code             any    `json:"code"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// SendOTP mails a one-time code to email.
func (c *Client) SendOTP(ctx context.Context, email string, createUser bool) error {
	if _, err := c.do(ctx, http.MethodPost, "/otp", "", otpRequest{Email: email, CreateUser: createUser}); err != nil {
		return err
	}

	return nil
}

// VerifyOTP exchanges an emailed code for a session. The session is passed on
// as returned; User is its embedded user.
func (c *Client) VerifyOTP(ctx context.Context, email, token string) (entity.AuthResult, error) {
	body, err := c.do(ctx, http.MethodPost, "/verify", "", verifyRequest{Type: "email", Email: email, Token: token})
	if err != nil {
		return entity.AuthResult{}, err
	}

	var resp sessionResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return entity.AuthResult{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	result := entity.AuthResult{User: resp.User}
	if resp.AccessToken != "" {
		result.Session = stdjson.RawMessage(body)
	}

	return result, nil
}

// GetUser resolves an access token to the user it was issued for.
func (c *Client) GetUser(ctx context.Context, accessToken string) (contextx.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/user", accessToken, nil)
	if err != nil {
		return contextx.User{}, err
	}

	var resp userResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return contextx.User{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	if resp.ID == "" {
		return contextx.User{}, domain.NewUnauthorizedError("User not found")
	}

	return contextx.User{ID: contextx.UserID(resp.ID), Email: resp.Email}, nil
}

func (c *Client) do(ctx context.Context, method, path, bearer string, request any) ([]byte, error) {
	payload := io.Reader(http.NoBody)

	if request != nil {
		b, err := json.Marshal(request)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal: %w", err)
		}

		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.AuthServiceError, "Auth service is unreachable")
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apiError(resp.StatusCode, body)
	}

	return body, nil
}

// apiError turns a non-2xx answer into an AppError carrying the service's own
// message.
func apiError(status int, body []byte) error {
	var resp errorResponse
	_ = json.Unmarshal(body, &resp)

	message := lo.CoalesceOrEmpty(resp.Msg, resp.ErrorDescription, resp.Message, resp.Error, http.StatusText(status))

	return domain.WrapError(
		fmt.Errorf("auth service answered %d: %s", status, lo.CoalesceOrEmpty(resp.ErrorCode, resp.Error)),
		errcodes.AuthServiceError,
		message,
	).WithKind(kindOf(status))
}

func kindOf(status int) domain.Kind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.KindInvalidArgument
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.KindUnauthorized
	case http.StatusNotFound:
		return domain.KindNotFound
	case http.StatusTooManyRequests:
		return domain.KindRateLimited
	default:
		return domain.KindInternal
	}
}
