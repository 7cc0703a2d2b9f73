package service

import (
	"context"
	"encoding/json"

	"letter-drafting-be/internal/dto"
	"letter-drafting-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the preview-refresh worker: every saved draft is
// re-hydrated in the background so the preview endpoint serves from
// cache.
type consumerService struct {
	pubSub           *gochannel.GoChannel
	topicName        string
	hydrationService IHydrationService
	log              logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hydrationService IHydrationService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:           pubSub,
		topicName:        topicName,
		hydrationService: hydrationService,
		log:              log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.DraftSavedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal draft-saved message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.log.Info("consumer", "refreshing preview", map[string]interface{}{
		"draft_id": payload.DraftId.String(),
	})

	if err := cs.hydrationService.RefreshPreview(ctx, payload.DraftId); err != nil {
		cs.log.Error("consumer", "preview refresh failed", map[string]interface{}{
			"draft_id": payload.DraftId.String(),
			"error":    err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
