package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"

	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/stream"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

// DatapointTopic is the routing key local producers publish readings on.
const DatapointTopic = "device.datapoint"

// DatapointReceivedHandler appends readings published on the device.datapoint
// topic to the local durable stream, where the relay and the other consumer
// groups pick them up.
func DatapointReceivedHandler(q stream.Queue) messaging.TopicMessageHandler {
	return func(ctx context.Context, msg messaging.IncomingTopicMessage, logger *slog.Logger) {
		var dp types.Datapoint

		err := json.Unmarshal(msg.Body(), &dp)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to unmarshal message from %s", msg.TopicName()), "err", err.Error())
			return
		}

		timestamp := time.Now().UTC()
		if dp.TimestampUnixMs > 0 {
			timestamp = time.UnixMilli(dp.TimestampUnixMs).UTC()
		}

		_, err = q.Add(ctx, stream.DatapointStream, Fields(dp, timestamp))
		if err != nil {
			logger.Error("could not append datapoint to stream", "err", err.Error())
			return
		}

		logger.Debug(fmt.Sprintf("%s handled", msg.TopicName()))
	}
}
