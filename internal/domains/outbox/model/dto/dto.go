package dto

import (
	"encoding/json"
	"visitorpass/internal/domains/outbox/model"
	gModel "visitorpass/shared/model"
	"visitorpass/shared/timezone"

	"github.com/google/uuid"
)

// Message is a domain event as raised by a business operation.
type Message struct {
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       any
}

func (m Message) ToModel(user string) (model.Event, error) {
	payload, err := json.Marshal(m.Payload)
	if err != nil {
		return model.Event{}, err //nolint:wrapcheck
	}

	return model.Event{
		ID:            uuid.NewString(),
		AggregateType: m.AggregateType,
		AggregateID:   m.AggregateID,
		EventType:     m.EventType,
		Payload:       payload,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}, nil
}
