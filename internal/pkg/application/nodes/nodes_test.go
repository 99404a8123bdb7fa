package nodes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/iot-edge-sync/internal/pkg/application/hubsync"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

func newSyncMock() *hubsync.HubSyncMock {
	return &hubsync.HubSyncMock{
		LastHeartbeatFunc: func(ctx context.Context, edgeNodeID string) (*time.Time, error) {
			return nil, nil
		},
		RequestFullSyncFunc: func(ctx context.Context, edgeNodeID string) error {
			return nil
		},
	}
}

func TestCreateEdgeNode(t *testing.T) {
	is := is.New(t)

	var created types.EdgeNode

	store := &StoreMock{
		CreateEdgeNodeFunc: func(ctx context.Context, node types.EdgeNode) error {
			created = node
			return nil
		},
	}

	registry := New(store, newSyncMock())

	node, err := registry.Create(context.Background(), "  barn  ", 0)
	is.NoErr(err)

	is.Equal(node.Name, "barn")
	is.Equal(node.UpdateRateSeconds, 5)
	is.True(node.ID != "")
	is.True(len(node.Token) == 64)
	is.Equal(node, created)
}

func TestCreateEdgeNodeRejectsEmptyName(t *testing.T) {
	is := is.New(t)

	registry := New(&StoreMock{}, newSyncMock())

	_, err := registry.Create(context.Background(), "   ", 5)
	is.True(errors.Is(err, ErrInvalidName))
}

func TestCreateEdgeNodeMapsTokenCollision(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		CreateEdgeNodeFunc: func(ctx context.Context, node types.EdgeNode) error {
			return storage.ErrAlreadyExist
		},
	}

	registry := New(store, newSyncMock())

	_, err := registry.Create(context.Background(), "barn", 5)
	is.True(errors.Is(err, ErrTokenTaken))
}

func TestGetFillsInLastHeartbeat(t *testing.T) {
	is := is.New(t)

	heartbeat := time.Unix(1700000000, 0).UTC()

	store := &StoreMock{
		GetEdgeNodeByIDFunc: func(ctx context.Context, edgeNodeID string) (types.EdgeNode, error) {
			return types.EdgeNode{ID: edgeNodeID, Name: "barn"}, nil
		},
	}

	sync := newSyncMock()
	sync.LastHeartbeatFunc = func(ctx context.Context, edgeNodeID string) (*time.Time, error) {
		return &heartbeat, nil
	}

	registry := New(store, sync)

	node, err := registry.Get(context.Background(), "node-1")
	is.NoErr(err)
	is.Equal(*node.LastHeartbeat, heartbeat)
}

func TestGetUnknownNodeReturnsNotFound(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		GetEdgeNodeByIDFunc: func(ctx context.Context, edgeNodeID string) (types.EdgeNode, error) {
			return types.EdgeNode{}, storage.ErrNoRows
		},
	}

	registry := New(store, newSyncMock())

	_, err := registry.Get(context.Background(), "nosuchnode")
	is.True(errors.Is(err, ErrNotFound))
}

func TestSyncNowFlagsTheNode(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		GetNodeSettingsFunc: func(ctx context.Context) (types.NodeSettings, error) {
			return types.NodeSettings{Role: types.NodeRoleHub}, nil
		},
		GetEdgeNodeByIDFunc: func(ctx context.Context, edgeNodeID string) (types.EdgeNode, error) {
			return types.EdgeNode{ID: edgeNodeID}, nil
		},
	}

	sync := newSyncMock()

	registry := New(store, sync)

	err := registry.SyncNow(context.Background(), "node-1")
	is.NoErr(err)

	is.Equal(len(sync.RequestFullSyncCalls()), 1)
	is.Equal(sync.RequestFullSyncCalls()[0].EdgeNodeID, "node-1")
}

func TestSyncNowRejectsUnknownNode(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		GetNodeSettingsFunc: func(ctx context.Context) (types.NodeSettings, error) {
			return types.NodeSettings{Role: types.NodeRoleHub}, nil
		},
		GetEdgeNodeByIDFunc: func(ctx context.Context, edgeNodeID string) (types.EdgeNode, error) {
			return types.EdgeNode{}, storage.ErrNoRows
		},
	}

	sync := newSyncMock()

	registry := New(store, sync)

	err := registry.SyncNow(context.Background(), "nosuchnode")
	is.True(errors.Is(err, ErrNotFound))
	is.Equal(len(sync.RequestFullSyncCalls()), 0)
}

func TestSyncNowRejectsNonHubRole(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		GetNodeSettingsFunc: func(ctx context.Context) (types.NodeSettings, error) {
			return types.NodeSettings{Role: types.NodeRoleEdge, HubURL: "http://hub.local", HubToken: "t"}, nil
		},
	}

	sync := newSyncMock()

	registry := New(store, sync)

	err := registry.SyncNow(context.Background(), "node-1")
	is.True(errors.Is(err, ErrNotHub))
	is.Equal(len(sync.RequestFullSyncCalls()), 0)
}

func TestSyncAllFlagsEveryRegisteredNode(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		GetNodeSettingsFunc: func(ctx context.Context) (types.NodeSettings, error) {
			return types.NodeSettings{Role: types.NodeRoleHub}, nil
		},
		GetEdgeNodesFunc: func(ctx context.Context) ([]types.EdgeNode, error) {
			return []types.EdgeNode{{ID: "node-1"}, {ID: "node-2"}}, nil
		},
	}

	sync := newSyncMock()

	registry := New(store, sync)

	err := registry.SyncAll(context.Background())
	is.NoErr(err)

	is.Equal(len(sync.RequestFullSyncCalls()), 2)
}

func TestDeleteReleasesTheNodesHubState(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		DeleteEdgeNodeFunc: func(ctx context.Context, edgeNodeID string) error {
			return nil
		},
	}

	sync := newSyncMock()
	sync.ReleaseEdgeNodeFunc = func(ctx context.Context, edgeNodeID string) error {
		return nil
	}

	registry := New(store, sync)

	err := registry.Delete(context.Background(), "node-1")
	is.NoErr(err)

	is.Equal(len(sync.ReleaseEdgeNodeCalls()), 1)
	is.Equal(sync.ReleaseEdgeNodeCalls()[0].EdgeNodeID, "node-1")
}

func TestDeleteUnknownNodeDoesNotRelease(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		DeleteEdgeNodeFunc: func(ctx context.Context, edgeNodeID string) error {
			return storage.ErrNoRows
		},
	}

	sync := newSyncMock()
	sync.ReleaseEdgeNodeFunc = func(ctx context.Context, edgeNodeID string) error {
		return nil
	}

	registry := New(store, sync)

	err := registry.Delete(context.Background(), "nosuchnode")
	is.True(errors.Is(err, ErrNotFound))
	is.Equal(len(sync.ReleaseEdgeNodeCalls()), 0)
}

func TestSyncStatusRequiresAKnownNode(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		GetEdgeNodeByIDFunc: func(ctx context.Context, edgeNodeID string) (types.EdgeNode, error) {
			if edgeNodeID != "node-1" {
				return types.EdgeNode{}, storage.ErrNoRows
			}
			return types.EdgeNode{ID: edgeNodeID}, nil
		},
	}

	sync := newSyncMock()
	sync.SyncStatusFunc = func(ctx context.Context, edgeNodeID string) (hubsync.SyncStatus, error) {
		return hubsync.SyncStatus{CatalogVersion: 7}, nil
	}

	registry := New(store, sync)

	status, err := registry.SyncStatus(context.Background(), "node-1")
	is.NoErr(err)
	is.Equal(status.CatalogVersion, int64(7))

	_, err = registry.SyncStatus(context.Background(), "nosuchnode")
	is.True(errors.Is(err, ErrNotFound))
}

func TestUpdateSettingsValidatesRole(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		UpdateNodeSettingsFunc: func(ctx context.Context, settings types.NodeSettings) error {
			return nil
		},
	}

	registry := New(store, newSyncMock())
	ctx := context.Background()

	err := registry.UpdateSettings(ctx, types.NodeSettings{Role: "Gateway"})
	is.True(errors.Is(err, ErrInvalidRole))

	err = registry.UpdateSettings(ctx, types.NodeSettings{Role: types.NodeRoleEdge})
	is.True(errors.Is(err, ErrInvalidRole))

	err = registry.UpdateSettings(ctx, types.NodeSettings{
		Role:     types.NodeRoleEdge,
		HubURL:   "http://hub.local",
		HubToken: "token-1",
	})
	is.NoErr(err)

	err = registry.UpdateSettings(ctx, types.NodeSettings{Role: types.NodeRoleHub})
	is.NoErr(err)

	is.Equal(len(store.UpdateNodeSettingsCalls()), 2)
}
