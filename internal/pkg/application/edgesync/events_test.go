package edgesync

import (
	"context"
	"testing"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

type senderFunc func(ctx context.Context, eventType string, data any) error

func (f senderFunc) Send(ctx context.Context, eventType string, data any) error {
	return f(ctx, eventType, data)
}

func TestPublishSummaryPublishesOnTopicAndNotifiesSubscribers(t *testing.T) {
	is := is.New(t)

	var published messaging.TopicMessage

	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			published = message
			return nil
		},
	}

	notified := ""
	sender := senderFunc(func(ctx context.Context, eventType string, data any) error {
		notified = eventType
		return nil
	})

	svc := New(newReconcilerStoreMock(), newRelayQueueMock(nil), newEdgeKVMock(), newFileStoreMock(), messenger, sender).(*service)

	svc.publishSummary(context.Background(), Summary{TemplatesCreated: 2, AppliedHash: "abc123"})

	is.Equal(len(messenger.PublishOnTopicCalls()), 1)
	is.Equal(published.TopicName(), "edgesync.syncCompleted")
	is.Equal(published.ContentType(), "application/json")
	is.Equal(notified, "edgesync.syncCompleted")
}

func TestPublishSummaryToleratesMissingMessenger(t *testing.T) {
	svc := New(newReconcilerStoreMock(), newRelayQueueMock(nil), newEdgeKVMock(), newFileStoreMock(), nil, nil).(*service)

	// must not panic
	svc.publishSummary(context.Background(), Summary{})
}
