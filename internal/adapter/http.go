package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-tabpfn-client/internal/config"
	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/internal/utils"
	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/go-resty/resty/v2"
)

// Service endpoints.
const (
	pathHealth            = "/health/"
	pathProtected         = "/protected/"
	pathLogin             = "/auth/login/"
	pathRegister          = "/auth/register/"
	pathPasswordPolicy    = "/auth/password_policy/"
	pathEmailVerification = "/auth/email_verification_status/"
	pathGreetingMessages  = "/greeting_messages/"
	pathFit               = "/fit/"
	pathPredict           = "/predict/"
)

// Multipart part names and file names used by fit and predict.
const (
	partXFile       = "x_file"
	partYFile       = "y_file"
	fieldTrainSetID = "train_set_uid"
	fieldTask       = "task"
	fieldConfig     = "config"
	fileNameX       = "x.csv"
	fileNameY       = "y.csv"
)

type httpServiceClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServiceClient constructs an HTTP/REST implementation of [ServiceClient].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL, request
// timeout and retry count, and registers the trace-id and response logging
// middlewares.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServiceClient(adapterCfg config.ClientAdapter, log *logger.Logger) (ServiceClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithTraceID(utils.NewUUIDGenerator())
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetRetryCount(adapterCfg.RetryCount).
		SetHeader("Accept", "application/json")

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("service response")
		return nil
	})

	return &httpServiceClient{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServiceClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServiceClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServiceClient].
func (h *httpServiceClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Health implements [ServiceClient] via GET /health/.
func (h *httpServiceClient) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(pathHealth)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

// CheckToken implements [ServiceClient] via GET /protected/.
func (h *httpServiceClient) CheckToken(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get(pathProtected)
	if err != nil {
		return fmt.Errorf("check token request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServiceClient]. It POSTs the credentials to
// POST /auth/login/ and stores the returned access token.
func (h *httpServiceClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post(pathLogin)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", ErrEmptyAccessToken
	}

	h.SetToken(result.AccessToken)
	return result.AccessToken, nil
}

// Register implements [ServiceClient]. It POSTs the registration payload to
// POST /auth/register/. A non-empty token in the response is stored.
func (h *httpServiceClient) Register(ctx context.Context, reg models.Registration) (models.RegisterResponse, error) {
	var result models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg).
		SetResult(&result).
		Post(pathRegister)
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	if result.Token != "" {
		h.SetToken(result.Token)
	}
	return result, nil
}

// PasswordPolicy implements [ServiceClient] via GET /auth/password_policy/.
func (h *httpServiceClient) PasswordPolicy(ctx context.Context) (models.PasswordPolicy, error) {
	var policy models.PasswordPolicy

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&policy).
		Get(pathPasswordPolicy)
	if err != nil {
		return models.PasswordPolicy{}, fmt.Errorf("password policy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PasswordPolicy{}, err
	}

	return policy, nil
}

// EmailVerificationStatus implements [ServiceClient] via
// GET /auth/email_verification_status/?email=.
func (h *httpServiceClient) EmailVerificationStatus(ctx context.Context, email string) (bool, error) {
	var status models.EmailVerificationStatus

	resp, err := h.authedRequest(ctx).
		SetQueryParam("email", email).
		SetResult(&status).
		Get(pathEmailVerification)
	if err != nil {
		return false, fmt.Errorf("email verification status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return status.IsVerified, nil
}

// GreetingMessages implements [ServiceClient] via GET /greeting_messages/.
func (h *httpServiceClient) GreetingMessages(ctx context.Context) ([]string, error) {
	var messages models.GreetingMessages

	resp, err := h.authedRequest(ctx).
		SetResult(&messages).
		Get(pathGreetingMessages)
	if err != nil {
		return nil, fmt.Errorf("greeting messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messages.Messages, nil
}

// Fit implements [ServiceClient]. It uploads the CSV-encoded X and y as the
// multipart files x_file and y_file to POST /fit/.
func (h *httpServiceClient) Fit(ctx context.Context, upload models.TrainSetUpload) (string, error) {
	body, contentType, err := multipartBody([]formFile{
		{param: partXFile, fileName: fileNameX, data: upload.X},
		{param: partYFile, fileName: fileNameY, data: upload.Y},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("fit request: %w", err)
	}

	var result models.FitResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		SetResult(&result).
		Post(pathFit)
	if err != nil {
		return "", fmt.Errorf("fit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.TrainSetUID == "" {
		return "", fmt.Errorf("fit response: empty %s", fieldTrainSetID)
	}

	return result.TrainSetUID, nil
}

// Predict implements [ServiceClient]. It uploads the CSV-encoded X as the
// multipart file x_file together with the train_set_uid, task and config
// form fields to POST /predict/ and decodes the JSON object response.
func (h *httpServiceClient) Predict(ctx context.Context, req models.PredictRequest) (models.Prediction, error) {
	body, contentType, err := multipartBody(
		[]formFile{{param: partXFile, fileName: fileNameX, data: req.X}},
		[]formField{
			{name: fieldTrainSetID, value: req.TrainSetUID},
			{name: fieldTask, value: string(req.Task)},
			{name: fieldConfig, value: string(req.Config)},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("predict request: %w", err)
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Post(pathPredict)
	if err != nil {
		return nil, fmt.Errorf("predict request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var prediction models.Prediction
	if err = json.Unmarshal(resp.Body(), &prediction); err != nil {
		return nil, fmt.Errorf("decode predict response: %w", err)
	}

	return prediction, nil
}

func (h *httpServiceClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
