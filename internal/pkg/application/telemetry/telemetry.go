// Package telemetry defines how sensor readings are encoded as flat string
// keyed records on the durable stream, and the rabbitmq ingress that local
// producers publish to.
package telemetry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/diwise/iot-edge-sync/pkg/types"
)

var ErrMalformed = errors.New("malformed telemetry entry")

// Fields flattens a datapoint to the stream record layout.
func Fields(dp types.Datapoint, timestamp time.Time) map[string]string {
	fields := map[string]string{
		"device_id":  dp.DeviceID,
		"sensor_tag": dp.SensorTag,
		"value":      strconv.FormatFloat(dp.Value, 'g', -1, 64),
		"timestamp":  strconv.FormatInt(timestamp.UnixMilli(), 10),
	}

	if dp.Latitude != nil {
		fields["latitude"] = strconv.FormatFloat(*dp.Latitude, 'g', -1, 64)
	}
	if dp.Longitude != nil {
		fields["longitude"] = strconv.FormatFloat(*dp.Longitude, 'g', -1, 64)
	}
	if dp.GridX != nil {
		fields["grid_x"] = strconv.Itoa(*dp.GridX)
	}
	if dp.GridY != nil {
		fields["grid_y"] = strconv.Itoa(*dp.GridY)
	}

	return fields
}

// Parse rebuilds a datapoint from a stream record. A missing or unparseable
// timestamp falls back to now, everything else malformed is an error.
func Parse(fields map[string]string) (types.Datapoint, error) {
	var dp types.Datapoint

	rawDeviceID, ok := fields["device_id"]
	if !ok {
		return dp, fmt.Errorf("%w: no device id", ErrMalformed)
	}

	deviceID, err := uuid.Parse(rawDeviceID)
	if err != nil {
		return dp, fmt.Errorf("%w: %s is not a valid device id", ErrMalformed, rawDeviceID)
	}
	dp.DeviceID = deviceID.String()

	dp.SensorTag = fields["sensor_tag"]
	if dp.SensorTag == "" {
		return dp, fmt.Errorf("%w: no sensor tag", ErrMalformed)
	}

	dp.Value, err = strconv.ParseFloat(fields["value"], 64)
	if err != nil || math.IsNaN(dp.Value) || math.IsInf(dp.Value, 0) {
		return dp, fmt.Errorf("%w: value %q is not a finite number", ErrMalformed, fields["value"])
	}

	ts, err := strconv.ParseInt(fields["timestamp"], 10, 64)
	if err != nil {
		ts = time.Now().UTC().UnixMilli()
	}
	dp.TimestampUnixMs = ts

	if raw, ok := fields["latitude"]; ok {
		if lat, err := strconv.ParseFloat(raw, 64); err == nil {
			dp.Latitude = &lat
		}
	}
	if raw, ok := fields["longitude"]; ok {
		if lon, err := strconv.ParseFloat(raw, 64); err == nil {
			dp.Longitude = &lon
		}
	}
	if raw, ok := fields["grid_x"]; ok {
		if x, err := strconv.Atoi(raw); err == nil {
			dp.GridX = &x
		}
	}
	if raw, ok := fields["grid_y"]; ok {
		if y, err := strconv.Atoi(raw); err == nil {
			dp.GridY = &y
		}
	}

	return dp, nil
}
