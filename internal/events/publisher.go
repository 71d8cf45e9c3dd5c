package events

import (
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/baeksh/quickreserve/pkg/kafka"
)

// Publisher emits reservation lifecycle events. Publishing is best-effort:
// callers log failures and never surface them.
type Publisher interface {
	Publish(event kafka.ReservationEvent) error
}

func NewPublisher(producer sarama.SyncProducer) Publisher {
	return &publisherImpl{producer: producer}
}

type publisherImpl struct {
	producer sarama.SyncProducer
}

func (p *publisherImpl) Publish(event kafka.ReservationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: kafka.ReservationTopic, Value: sarama.StringEncoder(data)}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}
