package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/diwise/iot-edge-sync/pkg/types"
)

func (s *Storage) CreateEdgeNode(ctx context.Context, node types.EdgeNode) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO edge_nodes (edge_node_id, name, token, update_rate_seconds)
		VALUES ($1, $2, $3, $4)
	`, node.ID, node.Name, node.Token, node.UpdateRateSeconds)
	if err != nil {
		if strings.Contains(err.Error(), "uniq_edge_nodes_token") {
			return ErrAlreadyExist
		}
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) UpdateEdgeNode(ctx context.Context, node types.EdgeNode) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE edge_nodes
		SET name = $2, token = $3, update_rate_seconds = $4, modified_on = CURRENT_TIMESTAMP
		WHERE edge_node_id = $1
	`, node.ID, node.Name, node.Token, node.UpdateRateSeconds)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeleteEdgeNode(ctx context.Context, edgeNodeID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM edge_nodes WHERE edge_node_id = $1`, edgeNodeID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetEdgeNodes(ctx context.Context) ([]types.EdgeNode, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT edge_node_id, name, token, update_rate_seconds FROM edge_nodes ORDER BY created_on
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nodes := []types.EdgeNode{}
	for rows.Next() {
		var node types.EdgeNode
		err = rows.Scan(&node.ID, &node.Name, &node.Token, &node.UpdateRateSeconds)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return nodes, rows.Err()
}

func (s *Storage) GetEdgeNodeByID(ctx context.Context, edgeNodeID string) (types.EdgeNode, error) {
	return s.getEdgeNode(ctx, `WHERE edge_node_id = $1`, edgeNodeID)
}

func (s *Storage) GetEdgeNodeByToken(ctx context.Context, token string) (types.EdgeNode, error) {
	return s.getEdgeNode(ctx, `WHERE token = $1`, token)
}

func (s *Storage) getEdgeNode(ctx context.Context, where, arg string) (types.EdgeNode, error) {
	var node types.EdgeNode
	err := s.pool.QueryRow(ctx,
		`SELECT edge_node_id, name, token, update_rate_seconds FROM edge_nodes `+where, arg,
	).Scan(&node.ID, &node.Name, &node.Token, &node.UpdateRateSeconds)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.EdgeNode{}, ErrNoRows
		}
		return types.EdgeNode{}, err
	}

	return node, nil
}

func (s *Storage) GetNodeSettings(ctx context.Context) (types.NodeSettings, error) {
	var settings types.NodeSettings
	var hubURL, hubToken *string

	err := s.pool.QueryRow(ctx, `
		SELECT role, hub_url, hub_token, data_sync_seconds FROM node_settings
	`).Scan(&settings.Role, &hubURL, &hubToken, &settings.DataSyncSeconds)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.NodeSettings{Role: types.NodeRoleHub}, nil
		}
		return types.NodeSettings{}, err
	}

	if hubURL != nil {
		settings.HubURL = *hubURL
	}
	if hubToken != nil {
		settings.HubToken = *hubToken
	}

	return settings, nil
}

func (s *Storage) UpdateNodeSettings(ctx context.Context, settings types.NodeSettings) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO node_settings (singleton, role, hub_url, hub_token, data_sync_seconds)
		VALUES (TRUE, $1, $2, $3, $4)
		ON CONFLICT (singleton) DO UPDATE
		SET role = $1, hub_url = $2, hub_token = $3, data_sync_seconds = $4, modified_on = CURRENT_TIMESTAMP
	`, settings.Role, settings.HubURL, settings.HubToken, settings.DataSyncSeconds)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}
