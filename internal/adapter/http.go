package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/qa-demo-api/internal/config"
	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/internal/utils"
	"github.com/MKhiriev/qa-demo-api/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs the resty implementation of [APIAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and applies
// cfg.RequestTimeout to every request.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAPIAdapter(cfg config.ClientAdapter, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAPIAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
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

func (h *httpAPIAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func (h *httpAPIAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}

func (h *httpAPIAdapter) Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Username: &creds.Username, Password: &creds.Password}).
		SetResult(&token).
		Post("/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("username", creds.Username).Msg("logged in")

	return token, nil
}

func (h *httpAPIAdapter) Add(ctx context.Context, a, b float64) (models.AddResult, error) {
	var result models.AddResult
	opA, opB := models.Operand(a), models.Operand(b)

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AddRequest{A: &opA, B: &opB}).
		SetResult(&result).
		Post("/math/add")
	if err != nil {
		return models.AddResult{}, fmt.Errorf("add request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AddResult{}, err
	}

	return result, nil
}

func (h *httpAPIAdapter) GetOrder(ctx context.Context, orderID int64) (models.Order, error) {
	var order models.Order

	resp, err := h.authedRequest(ctx).
		SetPathParam("order_id", strconv.FormatInt(orderID, 10)).
		SetResult(&order).
		Get("/orders/{order_id}")
	if err != nil {
		return models.Order{}, fmt.Errorf("get order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Order{}, err
	}

	return order, nil
}

func (h *httpAPIAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpAPIAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
