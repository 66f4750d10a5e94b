package messaging

import (
	"encoding/json"

	"benerin-admin-service/src/internal/model"
	kafka "benerin-admin-service/src/pkg/kafka/confluent"
	"benerin-admin-service/src/pkg/log"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

type Producer[T model.Event] struct {
	Producer kafka.Producer
	Topic    string
	Log      log.Log
}

func (p *Producer[T]) GetTopic() *string {
	return &p.Topic
}

// Send publishes the event keyed by its aggregate id so status updates
// for one payout land on the same partition in order. A disabled
// producer drops the event silently.
func (p *Producer[T]) Send(event T) error {
	if p.Producer == nil {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("messaging-producer", "failed to marshal event", "Send", err.Error())
		return err
	}

	message := &k.Message{
		TopicPartition: k.TopicPartition{Topic: &p.Topic, Partition: k.PartitionAny},
		Key:            []byte(event.GetId()),
		Value:          value,
	}

	if err := p.Producer.Publish(message); err != nil {
		p.Log.Error("messaging-producer", "failed to publish event", "Send", err.Error())
		return err
	}

	return nil
}
