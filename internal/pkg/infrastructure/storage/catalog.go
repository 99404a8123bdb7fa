package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/diwise/iot-edge-sync/pkg/types"
)

func (s *Storage) GetTemplates(ctx context.Context) ([]types.Template, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT t.template_id, t.name, coalesce(u.email, ''), t.device_type, t.is_global,
		       t.enable_map, t.enable_grid, t.grid_row_span, t.grid_col_span, t.synced_from_hub
		FROM device_templates t
		LEFT JOIN users u ON u.user_id = t.owner_id
		ORDER BY t.created_on
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []types.Template{}
	index := map[string]int{}

	for rows.Next() {
		var t types.Template
		err := rows.Scan(&t.ID, &t.Name, &t.OwnerEmail, &t.DeviceType, &t.IsGlobal,
			&t.EnableMap, &t.EnableGrid, &t.GridRowSpan, &t.GridColumnSpan, &t.SyncedFromHub)
		if err != nil {
			return nil, err
		}

		index[t.ID] = len(templates)
		templates = append(templates, t)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	err = s.loadTemplateChildren(ctx, templates, index)
	if err != nil {
		return nil, err
	}

	return templates, nil
}

func (s *Storage) loadTemplateChildren(ctx context.Context, templates []types.Template, index map[string]int) error {
	rows, err := s.pool.Query(ctx, `
		SELECT sensor_id, template_id, tag, name, unit, accuracy_decimals, sensor_order, sensor_group
		FROM sensors ORDER BY sensor_order
	`)
	if err != nil {
		return err
	}

	for rows.Next() {
		var sensor types.Sensor
		var templateID string
		err = rows.Scan(&sensor.ID, &templateID, &sensor.Tag, &sensor.Name, &sensor.Unit,
			&sensor.AccuracyDecimals, &sensor.Order, &sensor.Group)
		if err != nil {
			rows.Close()
			return err
		}
		if i, ok := index[templateID]; ok {
			templates[i].Sensors = append(templates[i].Sensors, sensor)
		}
	}
	rows.Close()

	rows, err = s.pool.Query(ctx, `SELECT command_id, template_id, display_name, name, params FROM commands`)
	if err != nil {
		return err
	}

	for rows.Next() {
		var command types.Command
		var templateID string
		var params []byte
		err = rows.Scan(&command.ID, &templateID, &command.DisplayName, &command.Name, &params)
		if err != nil {
			rows.Close()
			return err
		}
		err = json.Unmarshal(params, &command.Params)
		if err != nil {
			rows.Close()
			return fmt.Errorf("command %s has malformed params: %w", command.ID, err)
		}
		if i, ok := index[templateID]; ok {
			templates[i].Commands = append(templates[i].Commands, command)
		}
	}
	rows.Close()

	// position pairs instead of pointers, since appending to a template's
	// recipe slice may move it to a new backing array
	type recipePos struct{ template, recipe int }
	recipeIndex := map[string]recipePos{}

	rows, err = s.pool.Query(ctx, `SELECT recipe_id, template_id, name FROM recipes`)
	if err != nil {
		return err
	}

	for rows.Next() {
		var recipe types.Recipe
		var templateID string
		err = rows.Scan(&recipe.ID, &templateID, &recipe.Name)
		if err != nil {
			rows.Close()
			return err
		}
		if i, ok := index[templateID]; ok {
			templates[i].Recipes = append(templates[i].Recipes, recipe)
			recipeIndex[recipe.ID] = recipePos{template: i, recipe: len(templates[i].Recipes) - 1}
		}
	}
	rows.Close()

	rows, err = s.pool.Query(ctx, `
		SELECT step_id, recipe_id, command_id, subrecipe_id, cycles, step_order
		FROM recipe_steps ORDER BY step_order
	`)
	if err != nil {
		return err
	}

	for rows.Next() {
		var step types.RecipeStep
		var recipeID string
		err = rows.Scan(&step.ID, &recipeID, &step.CommandID, &step.SubrecipeID, &step.Cycles, &step.Order)
		if err != nil {
			rows.Close()
			return err
		}
		if pos, ok := recipeIndex[recipeID]; ok {
			recipe := &templates[pos.template].Recipes[pos.recipe]
			recipe.Steps = append(recipe.Steps, step)
		}
	}
	rows.Close()

	rows, err = s.pool.Query(ctx, `
		SELECT control_id, template_id, name, color, control_type, recipe_id, recipe_on_id,
		       recipe_off_id, sensor_id, cycles, is_infinite, control_order
		FROM controls ORDER BY control_order
	`)
	if err != nil {
		return err
	}

	for rows.Next() {
		var control types.Control
		var templateID string
		err = rows.Scan(&control.ID, &templateID, &control.Name, &control.Color, &control.Type,
			&control.RecipeID, &control.RecipeOnID, &control.RecipeOffID, &control.SensorID,
			&control.Cycles, &control.IsInfinite, &control.Order)
		if err != nil {
			rows.Close()
			return err
		}
		if i, ok := index[templateID]; ok {
			templates[i].Controls = append(templates[i].Controls, control)
		}
	}
	rows.Close()

	rows, err = s.pool.Query(ctx, `
		SELECT firmware_id, template_id, version_number, is_active, original_file_name, stored_file_name
		FROM firmwares
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var firmware types.Firmware
		var templateID string
		err = rows.Scan(&firmware.ID, &templateID, &firmware.VersionNumber, &firmware.IsActive,
			&firmware.OriginalFileName, &firmware.StoredFileName)
		if err != nil {
			return err
		}
		if i, ok := index[templateID]; ok {
			templates[i].Firmwares = append(templates[i].Firmwares, firmware)
		}
	}

	return rows.Err()
}

// UpsertSyncedTemplate overwrites the template row in full and replaces all
// child collections wholesale. Returns true when the template was created.
func (s *Storage) UpsertSyncedTemplate(ctx context.Context, t types.Template, ownerID string) (bool, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM device_templates WHERE template_id = $1)`, t.ID).Scan(&exists)
	if err != nil {
		return false, err
	}

	args := pgx.NamedArgs{
		"template_id": t.ID,
		"owner_id":    ownerID,
		"name":        t.Name,
		"device_type": t.DeviceType,
		"is_global":   t.IsGlobal,
		"enable_map":  t.EnableMap,
		"enable_grid": t.EnableGrid,
		"grid_row":    t.GridRowSpan,
		"grid_col":    t.GridColumnSpan,
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO device_templates (template_id, owner_id, name, device_type, is_global, enable_map, enable_grid, grid_row_span, grid_col_span, synced_from_hub)
		VALUES (@template_id, @owner_id, @name, @device_type, @is_global, @enable_map, @enable_grid, @grid_row, @grid_col, TRUE)
		ON CONFLICT (template_id) DO UPDATE
		SET owner_id = @owner_id, name = @name, device_type = @device_type, is_global = @is_global,
		    enable_map = @enable_map, enable_grid = @enable_grid, grid_row_span = @grid_row,
		    grid_col_span = @grid_col, synced_from_hub = TRUE, updated_on = CURRENT_TIMESTAMP
	`, args)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	err = replaceTemplateChildren(ctx, tx, t)
	if err != nil {
		return false, err
	}

	return !exists, tx.Commit(ctx)
}

func replaceTemplateChildren(ctx context.Context, tx pgx.Tx, t types.Template) error {
	for _, table := range []string{"controls", "commands", "recipes", "sensors", "firmwares"} {
		_, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE template_id = $1`, table), t.ID)
		if err != nil {
			return err
		}
	}

	for _, sensor := range t.Sensors {
		_, err := tx.Exec(ctx, `
			INSERT INTO sensors (sensor_id, template_id, tag, name, unit, accuracy_decimals, sensor_order, sensor_group)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, sensor.ID, t.ID, sensor.Tag, sensor.Name, sensor.Unit, sensor.AccuracyDecimals, sensor.Order, sensor.Group)
		if err != nil {
			return err
		}
	}

	for _, command := range t.Commands {
		params, _ := json.Marshal(command.Params)
		_, err := tx.Exec(ctx, `
			INSERT INTO commands (command_id, template_id, display_name, name, params)
			VALUES ($1, $2, $3, $4, $5)
		`, command.ID, t.ID, command.DisplayName, command.Name, string(params))
		if err != nil {
			return err
		}
	}

	for _, recipe := range t.Recipes {
		_, err := tx.Exec(ctx, `INSERT INTO recipes (recipe_id, template_id, name) VALUES ($1, $2, $3)`,
			recipe.ID, t.ID, recipe.Name)
		if err != nil {
			return err
		}
	}

	// steps after all recipes so sub recipe references resolve
	for _, recipe := range t.Recipes {
		for _, step := range recipe.Steps {
			_, err := tx.Exec(ctx, `
				INSERT INTO recipe_steps (step_id, recipe_id, command_id, subrecipe_id, cycles, step_order)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, step.ID, recipe.ID, step.CommandID, step.SubrecipeID, step.Cycles, step.Order)
			if err != nil {
				return err
			}
		}
	}

	for _, control := range t.Controls {
		_, err := tx.Exec(ctx, `
			INSERT INTO controls (control_id, template_id, name, color, control_type, recipe_id, recipe_on_id, recipe_off_id, sensor_id, cycles, is_infinite, control_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, control.ID, t.ID, control.Name, control.Color, control.Type, control.RecipeID,
			control.RecipeOnID, control.RecipeOffID, control.SensorID, control.Cycles, control.IsInfinite, control.Order)
		if err != nil {
			return err
		}
	}

	for _, firmware := range t.Firmwares {
		_, err := tx.Exec(ctx, `
			INSERT INTO firmwares (firmware_id, template_id, version_number, is_active, original_file_name, stored_file_name)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, firmware.ID, t.ID, firmware.VersionNumber, firmware.IsActive, firmware.OriginalFileName, firmware.StoredFileName)
		if err != nil {
			return err
		}
	}

	return nil
}

// DeleteStaleSyncedTemplates removes templates flagged synced_from_hub whose
// id is not in keep. Children cascade. Returns the number of removed
// templates and the stored file names of the firmware binaries that
// belonged to them.
func (s *Storage) DeleteStaleSyncedTemplates(ctx context.Context, keep []string) (int, []string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT f.stored_file_name
		FROM firmwares f
		JOIN device_templates t ON t.template_id = f.template_id
		WHERE t.synced_from_hub AND NOT (t.template_id = ANY($1))
	`, keep)
	if err != nil {
		return 0, nil, err
	}

	storedFiles := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return 0, nil, err
		}
		storedFiles = append(storedFiles, name)
	}
	rows.Close()

	tag, err := s.pool.Exec(ctx, `
		DELETE FROM device_templates WHERE synced_from_hub AND NOT (template_id = ANY($1))
	`, keep)
	if err != nil {
		return 0, nil, err
	}

	return int(tag.RowsAffected()), storedFiles, nil
}

func (s *Storage) GetTemplateFirmware(ctx context.Context, templateID, firmwareID string) (types.Firmware, error) {
	var firmware types.Firmware
	err := s.pool.QueryRow(ctx, `
		SELECT firmware_id, version_number, is_active, original_file_name, stored_file_name
		FROM firmwares WHERE firmware_id = $1 AND template_id = $2
	`, firmwareID, templateID).Scan(&firmware.ID, &firmware.VersionNumber, &firmware.IsActive,
		&firmware.OriginalFileName, &firmware.StoredFileName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Firmware{}, ErrNoRows
		}
		return types.Firmware{}, err
	}

	return firmware, nil
}

func (s *Storage) GetDevices(ctx context.Context, includeEdgeSourced bool) ([]types.Device, error) {
	query := `
		SELECT d.device_id, d.name, coalesce(u.email, ''), d.mac, d.access_token, d.protocol,
		       d.retention_days, d.sample_rate_seconds, d.firmware_version, d.template_id,
		       d.synced_from_hub, d.synced_from_edge, d.synced_from_edge_node_id
		FROM devices d
		LEFT JOIN users u ON u.user_id = d.owner_id
	`
	if !includeEdgeSourced {
		query += ` WHERE NOT d.synced_from_edge`
	}
	query += ` ORDER BY d.created_on`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	devices := []types.Device{}
	for rows.Next() {
		var d types.Device
		err = rows.Scan(&d.ID, &d.Name, &d.OwnerEmail, &d.Mac, &d.AccessToken, &d.Protocol,
			&d.DataPointRetentionDays, &d.SampleRateSeconds, &d.CurrentFirmwareVersion, &d.TemplateID,
			&d.SyncedFromHub, &d.SyncedFromEdge, &d.SyncedFromEdgeNodeID)
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}

	return devices, rows.Err()
}

func (s *Storage) UpsertSyncedDevice(ctx context.Context, d types.Device, ownerID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM devices WHERE device_id = $1)`, d.ID).Scan(&exists)
	if err != nil {
		return false, err
	}

	args := pgx.NamedArgs{
		"device_id":        d.ID,
		"owner_id":         ownerID,
		"template_id":      d.TemplateID,
		"name":             d.Name,
		"mac":              d.Mac,
		"access_token":     d.AccessToken,
		"protocol":         d.Protocol,
		"retention_days":   d.DataPointRetentionDays,
		"sample_rate":      d.SampleRateSeconds,
		"firmware_version": d.CurrentFirmwareVersion,
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO devices (device_id, owner_id, template_id, name, mac, access_token, protocol, retention_days, sample_rate_seconds, firmware_version, synced_from_hub)
		VALUES (@device_id, @owner_id, @template_id, @name, @mac, @access_token, @protocol, @retention_days, @sample_rate, @firmware_version, TRUE)
		ON CONFLICT (device_id) DO UPDATE
		SET owner_id = @owner_id, template_id = @template_id, name = @name, mac = @mac,
		    access_token = @access_token, protocol = @protocol, retention_days = @retention_days,
		    sample_rate_seconds = @sample_rate, firmware_version = @firmware_version,
		    synced_from_hub = TRUE, updated_on = CURRENT_TIMESTAMP
	`, args)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return !exists, nil
}

func (s *Storage) DeleteStaleSyncedDevices(ctx context.Context, keep []string) (int, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM devices WHERE synced_from_hub AND NOT (device_id = ANY($1))
	`, keep)
	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

func (s *Storage) ExistingDeviceIDs(ctx context.Context, candidates []string) (map[string]struct{}, error) {
	return s.deviceIDSet(ctx, `SELECT device_id FROM devices WHERE device_id = ANY($1)`, candidates)
}

func (s *Storage) SyncedFromHubDeviceIDs(ctx context.Context, candidates []string) (map[string]struct{}, error) {
	return s.deviceIDSet(ctx, `SELECT device_id FROM devices WHERE synced_from_hub AND device_id = ANY($1)`, candidates)
}

func (s *Storage) deviceIDSet(ctx context.Context, query string, candidates []string) (map[string]struct{}, error) {
	ids := map[string]struct{}{}
	if len(candidates) == 0 {
		return ids, nil
	}

	rows, err := s.pool.Query(ctx, query, candidates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}

	return ids, rows.Err()
}

// MarkDevicesSyncedFromEdge binds devices to the edge node that first
// reported telemetry for them. A device already bound to another edge node
// keeps its binding. The ids of devices that were newly bound are returned.
func (s *Storage) MarkDevicesSyncedFromEdge(ctx context.Context, deviceIDs []string, edgeNodeID string) ([]string, error) {
	if len(deviceIDs) == 0 {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx, `
		UPDATE devices SET synced_from_edge = TRUE, synced_from_edge_node_id = $2, updated_on = CURRENT_TIMESTAMP
		WHERE device_id = ANY($1) AND NOT synced_from_edge
		RETURNING device_id
	`, deviceIDs, edgeNodeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	marked := make([]string, 0, len(deviceIDs))

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		marked = append(marked, id)
	}

	return marked, rows.Err()
}

// DeleteEdgeSourcedDevices removes the devices bound to a deregistered edge
// node and returns their ids so remaining edges can be told about the loss.
func (s *Storage) DeleteEdgeSourcedDevices(ctx context.Context, edgeNodeID string) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		DELETE FROM devices WHERE synced_from_edge AND synced_from_edge_node_id = $1
		RETURNING device_id
	`, edgeNodeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deleted := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		deleted = append(deleted, id)
	}

	return deleted, rows.Err()
}

func (s *Storage) CreateUser(ctx context.Context, user types.User) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO users (user_id, email) VALUES ($1, $2)`, user.ID, user.Email)
	return err
}

// UsersByEmail returns a lookup of lowercased email to user id, used for
// owner resolution during reconciliation.
func (s *Storage) UsersByEmail(ctx context.Context) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT user_id, email FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := map[string]string{}
	for rows.Next() {
		var id, email string
		if err := rows.Scan(&id, &email); err != nil {
			return nil, err
		}
		users[strings.ToLower(strings.TrimSpace(email))] = id
	}

	return users, rows.Err()
}
