// Package nodes manages edge node registrations and the node role
// settings on behalf of the admin API.
package nodes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/diwise/iot-edge-sync/internal/pkg/application/hubsync"
	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

var ErrNotFound = errors.New("edge node not found")
var ErrInvalidName = errors.New("edge node name must not be empty")
var ErrTokenTaken = errors.New("edge node token is already in use")
var ErrInvalidRole = errors.New("node role must be Hub or Edge")
var ErrNotHub = errors.New("node is not configured as a hub")

const defaultUpdateRateSeconds = 5

//go:generate moq -rm -out registry_mock.go . Registry
type Registry interface {
	Create(ctx context.Context, name string, updateRateSeconds int) (types.EdgeNode, error)
	Update(ctx context.Context, node types.EdgeNode) error
	Delete(ctx context.Context, edgeNodeID string) error
	List(ctx context.Context) ([]types.EdgeNode, error)
	Get(ctx context.Context, edgeNodeID string) (types.EdgeNode, error)
	SyncNow(ctx context.Context, edgeNodeID string) error
	SyncAll(ctx context.Context) error
	SyncStatus(ctx context.Context, edgeNodeID string) (hubsync.SyncStatus, error)

	Settings(ctx context.Context) (types.NodeSettings, error)
	UpdateSettings(ctx context.Context, settings types.NodeSettings) error
}

//go:generate moq -rm -out store_mock.go . Store
type Store interface {
	CreateEdgeNode(ctx context.Context, node types.EdgeNode) error
	UpdateEdgeNode(ctx context.Context, node types.EdgeNode) error
	DeleteEdgeNode(ctx context.Context, edgeNodeID string) error
	GetEdgeNodes(ctx context.Context) ([]types.EdgeNode, error)
	GetEdgeNodeByID(ctx context.Context, edgeNodeID string) (types.EdgeNode, error)
	GetNodeSettings(ctx context.Context) (types.NodeSettings, error)
	UpdateNodeSettings(ctx context.Context, settings types.NodeSettings) error
}

type registry struct {
	store Store
	sync  hubsync.HubSync
}

func New(store Store, sync hubsync.HubSync) Registry {
	return &registry{store: store, sync: sync}
}

func (r *registry) Create(ctx context.Context, name string, updateRateSeconds int) (types.EdgeNode, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.EdgeNode{}, ErrInvalidName
	}

	if updateRateSeconds <= 0 {
		updateRateSeconds = defaultUpdateRateSeconds
	}

	node := types.EdgeNode{
		ID:                uuid.NewString(),
		Name:              name,
		Token:             newToken(),
		UpdateRateSeconds: updateRateSeconds,
	}

	err := r.store.CreateEdgeNode(ctx, node)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExist) {
			return types.EdgeNode{}, ErrTokenTaken
		}
		return types.EdgeNode{}, err
	}

	return node, nil
}

func (r *registry) Update(ctx context.Context, node types.EdgeNode) error {
	if strings.TrimSpace(node.Name) == "" {
		return ErrInvalidName
	}

	err := r.store.UpdateEdgeNode(ctx, node)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrNotFound
	}

	return err
}

func (r *registry) Delete(ctx context.Context, edgeNodeID string) error {
	err := r.store.DeleteEdgeNode(ctx, edgeNodeID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	return r.sync.ReleaseEdgeNode(ctx, edgeNodeID)
}

func (r *registry) List(ctx context.Context) ([]types.EdgeNode, error) {
	nodes, err := r.store.GetEdgeNodes(ctx)
	if err != nil {
		return nil, err
	}

	for i := range nodes {
		nodes[i].LastHeartbeat, _ = r.sync.LastHeartbeat(ctx, nodes[i].ID)
	}

	return nodes, nil
}

func (r *registry) Get(ctx context.Context, edgeNodeID string) (types.EdgeNode, error) {
	node, err := r.store.GetEdgeNodeByID(ctx, edgeNodeID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.EdgeNode{}, ErrNotFound
		}
		return types.EdgeNode{}, err
	}

	node.LastHeartbeat, _ = r.sync.LastHeartbeat(ctx, node.ID)

	return node, nil
}

// SyncStatus reports how far behind the hub catalog an edge node is.
func (r *registry) SyncStatus(ctx context.Context, edgeNodeID string) (hubsync.SyncStatus, error) {
	_, err := r.store.GetEdgeNodeByID(ctx, edgeNodeID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return hubsync.SyncStatus{}, ErrNotFound
		}
		return hubsync.SyncStatus{}, err
	}

	return r.sync.SyncStatus(ctx, edgeNodeID)
}

// SyncNow flags the edge node for a full snapshot reconciliation on its
// next call in. Only a hub has edges calling in, so any other role is
// rejected.
func (r *registry) SyncNow(ctx context.Context, edgeNodeID string) error {
	settings, err := r.store.GetNodeSettings(ctx)
	if err != nil {
		return err
	}

	if settings.Role != types.NodeRoleHub {
		return ErrNotHub
	}

	_, err = r.Get(ctx, edgeNodeID)
	if err != nil {
		return err
	}

	return r.sync.RequestFullSync(ctx, edgeNodeID)
}

// SyncAll flags every registered edge node.
func (r *registry) SyncAll(ctx context.Context) error {
	settings, err := r.store.GetNodeSettings(ctx)
	if err != nil {
		return err
	}

	if settings.Role != types.NodeRoleHub {
		return ErrNotHub
	}

	edgeNodes, err := r.store.GetEdgeNodes(ctx)
	if err != nil {
		return err
	}

	for _, node := range edgeNodes {
		err = r.sync.RequestFullSync(ctx, node.ID)
		if err != nil {
			return fmt.Errorf("could not flag edge node %s: %w", node.ID, err)
		}
	}

	return nil
}

func (r *registry) Settings(ctx context.Context) (types.NodeSettings, error) {
	return r.store.GetNodeSettings(ctx)
}

func (r *registry) UpdateSettings(ctx context.Context, settings types.NodeSettings) error {
	if settings.Role != types.NodeRoleHub && settings.Role != types.NodeRoleEdge {
		return ErrInvalidRole
	}

	if settings.Role == types.NodeRoleEdge && (settings.HubURL == "" || settings.HubToken == "") {
		return fmt.Errorf("%w: edge role requires hub url and token", ErrInvalidRole)
	}

	return r.store.UpdateNodeSettings(ctx, settings)
}

func newToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
