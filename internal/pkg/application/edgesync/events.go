package edgesync

import (
	"context"
	"encoding/json"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// SyncCompleted is published after every successful reconciliation so other
// services on the local broker can react to catalog changes.
type SyncCompleted struct {
	TemplatesCreated int `json:"templatesCreated"`
	TemplatesUpdated int `json:"templatesUpdated"`
	TemplatesDeleted int `json:"templatesDeleted"`
	DevicesCreated   int `json:"devicesCreated"`
	DevicesUpdated   int `json:"devicesUpdated"`
	DevicesDeleted   int `json:"devicesDeleted"`

	AppliedHash string    `json:"appliedHash,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

func (s *SyncCompleted) ContentType() string {
	return "application/json"
}
func (s *SyncCompleted) TopicName() string {
	return "edgesync.syncCompleted"
}
func (s *SyncCompleted) Body() []byte {
	b, _ := json.Marshal(s)
	return b
}

func (s *service) publishSummary(ctx context.Context, summary Summary) {
	log := logging.GetFromContext(ctx)

	message := &SyncCompleted{
		TemplatesCreated: summary.TemplatesCreated,
		TemplatesUpdated: summary.TemplatesUpdated,
		TemplatesDeleted: summary.TemplatesDeleted,
		DevicesCreated:   summary.DevicesCreated,
		DevicesUpdated:   summary.DevicesUpdated,
		DevicesDeleted:   summary.DevicesDeleted,
		AppliedHash:      summary.AppliedHash,
		CompletedAt:      time.Now().UTC(),
	}

	if s.messenger != nil {
		err := s.messenger.PublishOnTopic(ctx, message)
		if err != nil {
			log.Error("could not publish sync summary on topic", "err", err.Error())
		}
	}

	if s.sender != nil {
		err := s.sender.Send(ctx, message.TopicName(), summary)
		if err != nil {
			log.Error("could not notify sync subscribers", "err", err.Error())
		}
	}
}
