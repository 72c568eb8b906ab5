package broker

//go:generate go run go.uber.org/mock/mockgen -source=./broker.go -destination=./mocks/broker_mock.go -package=mocks

import (
	"context"
	"visitorpass/config"
	"visitorpass/infras/kafka"
	"visitorpass/infras/rabbitmq"

	"github.com/rs/zerolog/log"
)

const (
	KindKafka    = "kafka"
	KindRabbitMQ = "rabbitmq"
	KindNone     = "none"

	headerEventID   = "event_id"
	headerEventType = "event_type"
)

// Event is a domain event ready to leave the service.
type Event struct {
	ID          string
	Type        string
	AggregateID string
	Payload     []byte
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// New selects the broker configured in EVENTS_BROKER. The returned cleanup closes the connection.
func New(cfg *config.Config) (Publisher, func()) {
	switch cfg.Events.Broker {
	case KindKafka:
		client := kafka.New(cfg)

		return &kafkaPublisher{client: client, topic: cfg.Events.Kafka.Topic}, func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close kafka client")
			}
		}
	case KindRabbitMQ:
		publisher, err := rabbitmq.New(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
		}

		return &rabbitPublisher{publisher: publisher}, func() {
			if err := publisher.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close rabbitmq publisher")
			}
		}
	default:
		log.Warn().Str("broker", cfg.Events.Broker).Msg("No event broker configured, events are only logged")

		return &logPublisher{}, func() {}
	}
}

func headers(event Event) map[string]string {
	return map[string]string{
		headerEventID:   event.ID,
		headerEventType: event.Type,
	}
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	return p.client.SendMessages(ctx, p.topic, kafka.Message{ //nolint:wrapcheck
		Key:     event.AggregateID,
		Value:   event.Payload,
		Headers: headers(event),
	})
}

type rabbitPublisher struct {
	publisher rabbitmq.Publisher
}

func (p *rabbitPublisher) Publish(ctx context.Context, event Event) error {
	return p.publisher.Publish(ctx, event.Type, headers(event), event.Payload) //nolint:wrapcheck
}

type logPublisher struct{}

func (p *logPublisher) Publish(_ context.Context, event Event) error {
	log.Info().Str("eventID", event.ID).Str("eventType", event.Type).RawJSON("payload", event.Payload).Msg("event published")

	return nil
}
