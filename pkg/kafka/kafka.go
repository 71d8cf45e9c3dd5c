package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

const (
	ReservationTopic = "reservation-events"
)

type EventType string

const (
	EventCreated   EventType = "CREATED"
	EventCancelled EventType = "CANCELLED"
	EventApproved  EventType = "APPROVED"
	EventRejected  EventType = "REJECTED"
	EventVisited   EventType = "VISITED"
	EventExpired   EventType = "EXPIRED"
)

type ReservationEvent struct {
	Timestamp      time.Time `json:"timestamp"`
	EventType      EventType `json:"eventType"`
	ReservationID  int64     `json:"reservationId"`
	Username       string    `json:"username"`
	RestaurantName string    `json:"restaurantName"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
