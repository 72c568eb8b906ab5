package kafka

import (
	"context"
	"fmt"
	"net"
	"visitorpass/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key     string
	Value   []byte
	Headers map[string]string
}

func (m *Message) ToKafkaMessage() kafkaGo.Message {
	headers := make([]kafkaGo.Header, 0, len(m.Headers))
	for key, value := range m.Headers {
		headers = append(headers, kafkaGo.Header{Key: key, Value: []byte(value)})
	}

	return kafkaGo.Message{
		Key:     []byte(m.Key),
		Value:   m.Value,
		Headers: headers,
	}
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type kafkaClientImpl struct {
	config    *config.Config
	transport *kafkaGo.Transport
	address   net.Addr
	writer    *kafkaGo.Writer
}

func New(config *config.Config) Client {
	kafkaConfig := config.Events.Kafka

	transport := &kafkaGo.Transport{}
	if kafkaConfig.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: kafkaConfig.SASL.Username,
			Password: kafkaConfig.SASL.Password,
		}
	}

	address := kafkaGo.TCP(kafkaConfig.Brokers...)

	log.Info().Strs("brokers", kafkaConfig.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config:    config,
		transport: transport,
		address:   address,
		writer: &kafkaGo.Writer{
			Addr:                   address,
			Transport:              transport,
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafkaGo.RequireAll,
			Balancer:               &kafkaGo.Hash{},
		},
	}
}

// SendMessages writes synchronously so callers only mark messages as delivered after the broker acknowledged them.
func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg := message.ToKafkaMessage()
		msg.Topic = topic

		msgs = append(msgs, msg)
	}

	err = k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Info().Str("topic", topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}
