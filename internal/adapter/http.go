// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the terminal UI drive a vault served by another
// process. It implements the service interfaces on top of the loopback JSON
// API.
package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/go-resty/resty/v2"
)

// HTTPVaultAdapter implements the vault services over HTTP.
type HTTPVaultAdapter struct {
	client  *resty.Client
	timeout time.Duration

	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs a REST client for the vault API listening at
// cfg.RemoteAddress. A bare host:port is treated as http.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPVaultAdapter(cfg config.Client, requestTimeout time.Duration, logger *logger.Logger) (*HTTPVaultAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.RemoteAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid remote address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json")

	return &HTTPVaultAdapter{client: client, timeout: requestTimeout, logger: logger}, nil
}

// NewRemoteServices returns services backed by the API at cfg.RemoteAddress.
func NewRemoteServices(cfg config.Client, requestTimeout time.Duration, logger *logger.Logger) (*service.Services, error) {
	a, err := NewHTTPVaultAdapter(cfg, requestTimeout, logger)
	if err != nil {
		return nil, err
	}

	return &service.Services{
		Notes:       a,
		Session:     a,
		Preferences: a,
		AppInfo:     a,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

func (h *HTTPVaultAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *HTTPVaultAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

// backgroundContext bounds the calls made by methods without a context.
func (h *HTTPVaultAdapter) backgroundContext() (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), h.timeout)
}

func (h *HTTPVaultAdapter) do(req *resty.Request, method, path, op string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", "adapter."+op).Msg("vault api error")
		return err
	}
	return nil
}
