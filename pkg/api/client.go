// Package api implements the HTTP client for the remote firmware catalog
// service (JSON over HTTP, base path fixed per deployment).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/webfraggle/mbdflasher/internal/logger"
	"github.com/webfraggle/mbdflasher/pkg/errors"
)

// Service endpoints, relative to the deployment base URL.
const (
	projectListPath  = "/api/project_list/all/"
	familyListPath   = "/api/firmware_family_list/"
	firmwareListPath = "/api/firmware_list/all/"
	flashVerifyPath  = "/api/flash_verify/"
)

// HTTPClient talks to the firmware catalog service.
type HTTPClient struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

// NewHTTPClient creates a client for the service rooted at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration, userAgent string) *HTTPClient {
	if userAgent == "" {
		userAgent = "mbdflasher/1.0"
	}
	return &HTTPClient{
		baseURL:   baseURL,
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Projects fetches the project list.
func (hc *HTTPClient) Projects(ctx context.Context) ([]ProjectRow, error) {
	raw, err := hc.getList(ctx, projectListPath)
	if err != nil {
		return nil, err
	}
	rows := make([]ProjectRow, 0, len(raw))
	for i, msg := range raw {
		var row ProjectRow
		if err := json.Unmarshal(msg, &row); err != nil {
			logger.Warn("Skipping malformed project row", logger.Fields{"row": i, "error": err.Error()})
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Families fetches the device family list.
func (hc *HTTPClient) Families(ctx context.Context) ([]FamilyRow, error) {
	raw, err := hc.getList(ctx, familyListPath)
	if err != nil {
		return nil, err
	}
	rows := make([]FamilyRow, 0, len(raw))
	for i, msg := range raw {
		var row FamilyRow
		if err := json.Unmarshal(msg, &row); err != nil {
			logger.Warn("Skipping malformed family row", logger.Fields{"row": i, "error": err.Error()})
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Firmware fetches the firmware list.
func (hc *HTTPClient) Firmware(ctx context.Context) ([]FirmwareRow, error) {
	raw, err := hc.getList(ctx, firmwareListPath)
	if err != nil {
		return nil, err
	}
	rows := make([]FirmwareRow, 0, len(raw))
	for i, msg := range raw {
		var row FirmwareRow
		if err := json.Unmarshal(msg, &row); err != nil {
			logger.Warn("Skipping malformed firmware row", logger.Fields{"row": i, "error": err.Error()})
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FlashVerify asks the service to re-confirm a firmware checksum.
func (hc *HTTPClient) FlashVerify(ctx context.Context, verifyReq FlashVerifyRequest) (*FlashVerifyResponse, error) {
	endpoint, err := hc.buildURL(flashVerifyPath)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(verifyReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode verify request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", hc.userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "flash verify request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var verifyResp FlashVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verifyResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode verify response")
	}
	return &verifyResp, nil
}

// getList performs a GET against path and splits the JSON array into raw
// rows so a single malformed record cannot fail the whole request.
func (hc *HTTPClient) getList(ctx context.Context, path string) ([]json.RawMessage, error) {
	endpoint, err := hc.buildURL(path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", hc.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrapf(err, "non-JSON response from %s", path)
	}
	return rows, nil
}

func (hc *HTTPClient) buildURL(path string) (string, error) {
	parsed, err := url.Parse(hc.baseURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid base URL")
	}
	parsed.Path, err = url.JoinPath(parsed.Path, path)
	if err != nil {
		return "", errors.Wrap(err, "failed to build endpoint URL")
	}
	return parsed.String(), nil
}
