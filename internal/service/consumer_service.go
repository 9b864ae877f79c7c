package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"noor-counseling-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	TrendSnapshot() map[string]int
}

// consumerService is the mood trend worker: it tallies completed runs per
// emotion label so operators can see what users have been going through
// without reading any chat content.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string

	mu     sync.Mutex
	trends map[string]int
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		trends:    make(map[string]int),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.PublishChatCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal chat completed message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.mu.Lock()
	cs.trends[payload.Emotion]++
	count := cs.trends[payload.Emotion]
	cs.mu.Unlock()

	log.Printf("[INFO] Mood trend: %s seen %d times (run %s, %dms)",
		payload.Emotion, count, payload.RunId, payload.LatencyMs)
	msg.Ack()
}

// TrendSnapshot returns a copy of the per-emotion tallies.
func (cs *consumerService) TrendSnapshot() map[string]int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	out := make(map[string]int, len(cs.trends))
	for k, v := range cs.trends {
		out[k] = v
	}
	return out
}
