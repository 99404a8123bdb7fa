// Package client talks to an iot-edge-sync hub over HTTP on behalf of an
// edge node. All requests carry the edge token and are traced.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/diwise/iot-edge-sync/pkg/types"
)

const edgeTokenHeader = "x-edge-token"

var tracer = otel.Tracer("iot-edge-sync/hub-client")

var ErrUnauthorized = errors.New("hub rejected the edge token")

//go:generate moq -rm -out client_mock.go . HubClient
type HubClient interface {
	SyncDatapoints(ctx context.Context, datapoints []types.Datapoint) (types.SyncDatapointsResponse, error)
	Snapshot(ctx context.Context) (types.Snapshot, error)
	DownloadFirmware(ctx context.Context, templateID, firmwareID string) (io.ReadCloser, error)
}

type hubClient struct {
	url   string
	token string

	httpClient http.Client
}

func New(hubURL, edgeToken string) HubClient {
	return &hubClient{
		url:   hubURL,
		token: edgeToken,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *hubClient) SyncDatapoints(ctx context.Context, datapoints []types.Datapoint) (types.SyncDatapointsResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "sync-datapoints")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(types.SyncDatapointsRequest{Datapoints: datapoints})
	if err != nil {
		return types.SyncDatapointsResponse{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v0/hubsync/datapoints", bytes.NewReader(body))
	if err != nil {
		return types.SyncDatapointsResponse{}, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to post datapoints to hub: %w", err)
		return types.SyncDatapointsResponse{}, err
	}
	defer resp.Body.Close()

	err = statusError(resp.StatusCode)
	if err != nil {
		return types.SyncDatapointsResponse{}, err
	}

	response := types.SyncDatapointsResponse{}

	err = json.NewDecoder(resp.Body).Decode(&response)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal sync response: %w", err)
		return types.SyncDatapointsResponse{}, err
	}

	return response, nil
}

func (c *hubClient) Snapshot(ctx context.Context) (types.Snapshot, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-snapshot")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req, err := c.newRequest(ctx, http.MethodGet, "/api/v0/hubsync/snapshot", nil)
	if err != nil {
		return types.Snapshot{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to retrieve snapshot from hub: %w", err)
		return types.Snapshot{}, err
	}
	defer resp.Body.Close()

	err = statusError(resp.StatusCode)
	if err != nil {
		return types.Snapshot{}, err
	}

	snapshot := types.Snapshot{}

	err = json.NewDecoder(resp.Body).Decode(&snapshot)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal snapshot: %w", err)
		return types.Snapshot{}, err
	}

	return snapshot, nil
}

// DownloadFirmware streams a firmware file from the hub. The caller owns the
// returned reader and must close it.
func (c *hubClient) DownloadFirmware(ctx context.Context, templateID, firmwareID string) (io.ReadCloser, error) {
	var err error
	ctx, span := tracer.Start(ctx, "download-firmware")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path := fmt.Sprintf("/api/v0/hubsync/firmwares/%s/%s", templateID, firmwareID)

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to download firmware from hub: %w", err)
		return nil, err
	}

	err = statusError(resp.StatusCode)
	if err != nil {
		resp.Body.Close()
		return nil, err
	}

	return resp.Body, nil
}

func (c *hubClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Set(edgeTokenHeader, c.token)

	return req, nil
}

func statusError(statusCode int) error {
	switch {
	case statusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case statusCode != http.StatusOK:
		return fmt.Errorf("request failed with status code %d", statusCode)
	}

	return nil
}
