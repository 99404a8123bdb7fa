package webevents

import (
	"encoding/json"
	"time"

	gosse "github.com/alexandrevicenzi/go-sse"
)

type WebEvents interface {
	Server() *gosse.Server
	Shutdown()
	Publish(event string, data any) error
	PublishLastDatapoint(dp SensorLastDatapoint) error
}

// SensorLastDatapoint is pushed to subscribed clients whenever the hub
// accepts a reading, mirroring the last value cache.
type SensorLastDatapoint struct {
	DeviceID  string    `json:"deviceId"`
	SensorTag string    `json:"sensorTag"`
	Value     float64   `json:"value"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	GridX     *int      `json:"gridX,omitempty"`
	GridY     *int      `json:"gridY,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type webEvents struct {
	s *gosse.Server
}

func New() WebEvents {
	return &webEvents{
		s: gosse.NewServer(&gosse.Options{}),
	}
}

func (we *webEvents) Server() *gosse.Server {
	return we.s
}

func (we *webEvents) Shutdown() {
	we.s.Shutdown()
}

func (we *webEvents) Publish(event string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	message := gosse.NewMessage("", string(b), event)
	we.s.SendMessage("", message)

	return nil
}

func (we *webEvents) PublishLastDatapoint(dp SensorLastDatapoint) error {
	return we.Publish("sensor.lastDatapoint", dp)
}
