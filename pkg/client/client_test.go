package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/iot-edge-sync/pkg/types"
)

func TestThatSyncDatapointsPostsToTheHub(t *testing.T) {
	is := is.New(t)

	var receivedToken string
	var receivedPath string
	var receivedBody types.SyncDatapointsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedToken = r.Header.Get("x-edge-token")
		receivedPath = r.URL.Path

		is.NoErr(json.NewDecoder(r.Body).Decode(&receivedBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"nextSyncSeconds":10,"acceptedCount":1,"hash":"abc123"}`))
	}))
	defer server.Close()

	c := New(server.URL, "edge-token-1")

	response, err := c.SyncDatapoints(context.Background(), []types.Datapoint{
		{DeviceID: "3b4bbe1e-91e5-446d-a1c3-1d29a92b2be5", SensorTag: "temp", Value: 21.5, TimestampUnixMs: 1700000000000},
	})

	is.NoErr(err)
	is.Equal(receivedToken, "edge-token-1")
	is.Equal(receivedPath, "/api/v0/hubsync/datapoints")
	is.Equal(len(receivedBody.Datapoints), 1)
	is.Equal(response.NextSyncSeconds, 10)
	is.Equal(response.Hash, "abc123")
}

func TestThatARejectedTokenMapsToErrUnauthorized(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := New(server.URL, "stale-token")

	_, err := c.SyncDatapoints(context.Background(), nil)
	is.True(err == ErrUnauthorized)

	_, err = c.Snapshot(context.Background())
	is.True(err == ErrUnauthorized)

	_, err = c.DownloadFirmware(context.Background(), "t-1", "fw-1")
	is.True(err == ErrUnauthorized)
}

func TestThatSnapshotDecodesTheCatalog(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/v0/hubsync/snapshot")
		is.Equal(r.Header.Get("x-edge-token"), "edge-token-1")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"templates":[{"id":"t-1","name":"soil sensor"}],"devices":[{"id":"d-1","name":"field 7"}]}`))
	}))
	defer server.Close()

	c := New(server.URL, "edge-token-1")

	snapshot, err := c.Snapshot(context.Background())

	is.NoErr(err)
	is.Equal(len(snapshot.Templates), 1)
	is.Equal(snapshot.Templates[0].ID, "t-1")
	is.Equal(len(snapshot.Devices), 1)
	is.Equal(snapshot.Devices[0].Name, "field 7")
}

func TestThatDownloadFirmwareStreamsTheBody(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/v0/hubsync/firmwares/t-1/fw-1")

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("firmware bytes"))
	}))
	defer server.Close()

	c := New(server.URL, "edge-token-1")

	body, err := c.DownloadFirmware(context.Background(), "t-1", "fw-1")
	is.NoErr(err)
	defer body.Close()

	contents, err := io.ReadAll(body)
	is.NoErr(err)
	is.Equal(string(contents), "firmware bytes")
}

func TestThatAServerErrorIsReportedAsAnError(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, "edge-token-1")

	_, err := c.Snapshot(context.Background())
	is.True(err != nil)
	is.True(err != ErrUnauthorized)
}
