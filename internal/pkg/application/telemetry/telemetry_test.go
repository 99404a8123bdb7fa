package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/iot-edge-sync/pkg/types"
)

const deviceID = "f4b1a421-2f14-4d11-b419-6ec309b5ae77"

func TestFieldsAndParseRoundTrip(t *testing.T) {
	is := is.New(t)

	lat := 57.7
	lon := 11.97
	gridX := 3
	gridY := 4

	dp := types.Datapoint{
		DeviceID:  deviceID,
		SensorTag: "temperature",
		Value:     21.5,
		Latitude:  &lat,
		Longitude: &lon,
		GridX:     &gridX,
		GridY:     &gridY,
	}

	timestamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	parsed, err := Parse(Fields(dp, timestamp))
	is.NoErr(err)

	is.Equal(parsed.DeviceID, dp.DeviceID)
	is.Equal(parsed.SensorTag, dp.SensorTag)
	is.Equal(parsed.Value, dp.Value)
	is.Equal(parsed.TimestampUnixMs, timestamp.UnixMilli())
	is.Equal(*parsed.Latitude, lat)
	is.Equal(*parsed.Longitude, lon)
	is.Equal(*parsed.GridX, gridX)
	is.Equal(*parsed.GridY, gridY)
}

func TestParseRejectsMissingDeviceID(t *testing.T) {
	is := is.New(t)

	_, err := Parse(map[string]string{
		"sensor_tag": "temperature",
		"value":      "21.5",
	})
	is.True(errors.Is(err, ErrMalformed))
}

func TestParseRejectsNonUUIDDeviceID(t *testing.T) {
	is := is.New(t)

	_, err := Parse(map[string]string{
		"device_id":  "not-a-uuid",
		"sensor_tag": "temperature",
		"value":      "21.5",
	})
	is.True(errors.Is(err, ErrMalformed))
}

func TestParseRejectsEmptySensorTag(t *testing.T) {
	is := is.New(t)

	_, err := Parse(map[string]string{
		"device_id": deviceID,
		"value":     "21.5",
	})
	is.True(errors.Is(err, ErrMalformed))
}

func TestParseRejectsNonFiniteValues(t *testing.T) {
	is := is.New(t)

	for _, value := range []string{"NaN", "+Inf", "-Inf", "banana"} {
		_, err := Parse(map[string]string{
			"device_id":  deviceID,
			"sensor_tag": "temperature",
			"value":      value,
		})
		is.True(errors.Is(err, ErrMalformed))
	}
}

func TestParseFallsBackToNowOnBadTimestamp(t *testing.T) {
	is := is.New(t)

	before := time.Now().UTC().UnixMilli()

	dp, err := Parse(map[string]string{
		"device_id":  deviceID,
		"sensor_tag": "temperature",
		"value":      "21.5",
		"timestamp":  "garbage",
	})
	is.NoErr(err)
	is.True(dp.TimestampUnixMs >= before)
}

func TestParseIgnoresUnparseableLocation(t *testing.T) {
	is := is.New(t)

	dp, err := Parse(map[string]string{
		"device_id":  deviceID,
		"sensor_tag": "temperature",
		"value":      "21.5",
		"timestamp":  "1709294400000",
		"latitude":   "north",
		"grid_x":     "left",
	})
	is.NoErr(err)
	is.Equal(dp.Latitude, nil)
	is.Equal(dp.GridX, nil)
}
