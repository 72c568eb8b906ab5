package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"visitorpass/config"
	"visitorpass/shared/constant"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const exchangeKind = "topic"

type Publisher interface {
	Publish(ctx context.Context, routingKey string, headers map[string]string, body []byte) error
	Close() error
}

type publisherImpl struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// New dials the broker and declares a durable topic exchange.
func New(config *config.Config) (Publisher, error) {
	rabbitConfig := config.Events.RabbitMQ

	conn, err := amqp.Dial(rabbitConfig.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(rabbitConfig.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info().Str("exchange", rabbitConfig.Exchange).Msg("RabbitMQ publisher initialized")

	return &publisherImpl{conn: conn, ch: ch, exchange: rabbitConfig.Exchange}, nil
}

// Publish sends a persistent JSON message. amqp channels are not safe for concurrent publishing.
func (p *publisherImpl) Publish(ctx context.Context, routingKey string, headers map[string]string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	table := amqp.Table{}
	for key, value := range headers {
		table[key] = value
	}

	err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Headers:      table,
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("routingKey", routingKey).Msg("Failed to publish message to RabbitMQ.")

		return fmt.Errorf("publish to rabbitmq: %w", err)
	}

	return nil
}

func (p *publisherImpl) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}

	if p.conn != nil {
		return p.conn.Close() //nolint:wrapcheck
	}

	return nil
}
